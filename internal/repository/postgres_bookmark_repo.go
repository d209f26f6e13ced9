package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shaunak67/knownest-final/internal/model"
)

// PostgresBookmarkRepo はPostgreSQLを使用したブックマークリポジトリ。
type PostgresBookmarkRepo struct {
	db *sql.DB
}

// NewPostgresBookmarkRepo はPostgresBookmarkRepoを生成する。
func NewPostgresBookmarkRepo(db *sql.DB) *PostgresBookmarkRepo {
	return &PostgresBookmarkRepo{db: db}
}

// FindByUserAndTopic は(user_id, topic_id)でブックマークを検索する。見つからない場合はnilを返す。
func (r *PostgresBookmarkRepo) FindByUserAndTopic(ctx context.Context, userID, topicID string) (*model.Bookmark, error) {
	bookmark := &model.Bookmark{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, topic_id, created_at
		 FROM bookmarks
		 WHERE user_id = $1 AND topic_id = $2`,
		userID, topicID,
	).Scan(&bookmark.ID, &bookmark.UserID, &bookmark.TopicID, &bookmark.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find bookmark: %w", err)
	}

	return bookmark, nil
}

// Create はブックマークを作成する。
// ON CONFLICT DO NOTHINGにより、同時重複リクエストでも(user_id, topic_id)
// につき1件という不変条件が正確に保たれる。
func (r *PostgresBookmarkRepo) Create(ctx context.Context, bookmark *model.Bookmark) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bookmarks (id, user_id, topic_id, created_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, topic_id) DO NOTHING`,
		bookmark.ID, bookmark.UserID, bookmark.TopicID, bookmark.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bookmark: %w", err)
	}
	return nil
}

// ListByUserID はユーザーの全ブックマークを返す。
func (r *PostgresBookmarkRepo) ListByUserID(ctx context.Context, userID string) ([]*model.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, topic_id, created_at
		 FROM bookmarks
		 WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []*model.Bookmark
	for rows.Next() {
		bookmark := &model.Bookmark{}
		if err := rows.Scan(&bookmark.ID, &bookmark.UserID, &bookmark.TopicID, &bookmark.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, bookmark)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookmarks: %w", err)
	}

	return bookmarks, nil
}

// DeleteByUserAndTopic は(user_id, topic_id)に一致するブックマークを削除する。
// 一致する行が無くてもエラーにしない（削除は冪等）。
func (r *PostgresBookmarkRepo) DeleteByUserAndTopic(ctx context.Context, userID, topicID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND topic_id = $2`,
		userID, topicID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	return nil
}

// compile-time interface check
var _ BookmarkRepository = (*PostgresBookmarkRepo)(nil)
