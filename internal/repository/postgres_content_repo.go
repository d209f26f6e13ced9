package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/shaunak67/knownest-final/internal/model"
)

// PostgresContentRepo はPostgreSQLを使用したカテゴリ・トピックリポジトリ。
type PostgresContentRepo struct {
	db *sql.DB
}

// NewPostgresContentRepo はPostgresContentRepoを生成する。
func NewPostgresContentRepo(db *sql.DB) *PostgresContentRepo {
	return &PostgresContentRepo{db: db}
}

// ListCategories は全カテゴリをtopic_count付きで返す。
// topic_countは保存値ではなく、読み取り時にサブクエリで算出する。
func (r *PostgresContentRepo) ListCategories(ctx context.Context) ([]*model.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.name, c.slug, c.description, c.icon, c.image_url,
		        (SELECT count(*) FROM topics t WHERE t.category_slug = c.slug) AS topic_count
		 FROM categories c`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*model.Category
	for rows.Next() {
		category := &model.Category{}
		if err := rows.Scan(
			&category.ID, &category.Name, &category.Slug,
			&category.Description, &category.Icon, &category.ImageURL,
			&category.TopicCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// FindCategoryBySlug は指定slugのカテゴリを取得する。見つからない場合はnilを返す。
func (r *PostgresContentRepo) FindCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	category := &model.Category{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, slug, description, icon, image_url
		 FROM categories
		 WHERE slug = $1`,
		slug,
	).Scan(
		&category.ID, &category.Name, &category.Slug,
		&category.Description, &category.Icon, &category.ImageURL,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category by slug: %w", err)
	}

	return category, nil
}

// ListTopicsByCategorySlug は指定カテゴリのトピックを最大limit件返す。
func (r *PostgresContentRepo) ListTopicsByCategorySlug(ctx context.Context, slug string, limit int) ([]*model.Topic, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, category_slug, title, description, content, icon, tags
		 FROM topics
		 WHERE category_slug = $1
		 LIMIT $2`,
		slug, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics by category: %w", err)
	}
	defer rows.Close()

	return scanTopics(rows)
}

// FindTopicByID は指定IDのトピックを取得する。見つからない場合はnilを返す。
func (r *PostgresContentRepo) FindTopicByID(ctx context.Context, id string) (*model.Topic, error) {
	topic := &model.Topic{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, category_slug, title, description, content, icon, tags
		 FROM topics
		 WHERE id = $1`,
		id,
	).Scan(
		&topic.ID, &topic.CategorySlug, &topic.Title,
		&topic.Description, &topic.Content, &topic.Icon,
		pq.Array(&topic.Tags),
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find topic by ID: %w", err)
	}

	return topic, nil
}

// SearchTopics はtitle/description/content/tagsに対する大文字小文字無視の部分一致検索を行う。
// クエリ中のILIKEメタ文字はエスケープし、素の部分文字列として扱う。
func (r *PostgresContentRepo) SearchTopics(ctx context.Context, query string, limit int) ([]*model.Topic, error) {
	pattern := "%" + escapeLikePattern(query) + "%"

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, category_slug, title, description, content, icon, tags
		 FROM topics
		 WHERE title ILIKE $1
		    OR description ILIKE $1
		    OR content ILIKE $1
		    OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE $1)
		 LIMIT $2`,
		pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search topics: %w", err)
	}
	defer rows.Close()

	return scanTopics(rows)
}

// CountCategories はカテゴリの総数を返す。
func (r *PostgresContentRepo) CountCategories(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM categories`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

// scanTopics は結果セットからトピックのスライスを構築する。
func scanTopics(rows *sql.Rows) ([]*model.Topic, error) {
	var topics []*model.Topic
	for rows.Next() {
		topic := &model.Topic{}
		if err := rows.Scan(
			&topic.ID, &topic.CategorySlug, &topic.Title,
			&topic.Description, &topic.Content, &topic.Icon,
			pq.Array(&topic.Tags),
		); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate topics: %w", err)
	}
	return topics, nil
}

// escapeLikePattern はILIKEパターンのメタ文字（% _ \）をエスケープする。
func escapeLikePattern(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}

// compile-time interface check
var _ ContentRepository = (*PostgresContentRepo)(nil)
