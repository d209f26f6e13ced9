// Package seed は初期カタログデータの投入を提供する。
// カテゴリが1件でも存在する場合は何もしない（再実行安全）。
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/lib/pq"
)

// Seeder は初期データ投入を行う。
type Seeder struct {
	db *sql.DB
}

// NewSeeder はSeederを生成する。
func NewSeeder(db *sql.DB) *Seeder {
	return &Seeder{db: db}
}

// Run はカタログが空の場合に限り、固定のカテゴリ・トピック一式を
// 単一トランザクションで投入する。既にデータがある場合は何もしない。
func (s *Seeder) Run(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("カテゴリ件数の取得に失敗しました: %w", err)
	}
	if count > 0 {
		slog.Info("catalog already seeded", slog.Int("categories", count))
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("トランザクションの開始に失敗しました: %w", err)
	}
	defer tx.Rollback()

	for _, c := range seedCategories {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO categories (id, name, slug, description, icon, image_url)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, c.ID, c.Name, c.Slug, c.Description, c.Icon, c.ImageURL)
		if err != nil {
			return fmt.Errorf("カテゴリの投入に失敗しました (%s): %w", c.ID, err)
		}
	}

	for _, t := range seedTopics {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO topics (id, category_slug, title, description, content, icon, tags)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, t.ID, t.CategorySlug, t.Title, t.Description, t.Content, t.Icon, pq.Array(t.Tags))
		if err != nil {
			return fmt.Errorf("トピックの投入に失敗しました (%s): %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("トランザクションのコミットに失敗しました: %w", err)
	}

	slog.Info("catalog seeded",
		slog.Int("categories", len(seedCategories)),
		slog.Int("topics", len(seedTopics)),
	)
	return nil
}
