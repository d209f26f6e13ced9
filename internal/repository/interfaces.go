// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/shaunak67/knownest-final/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByEmail は指定メールアドレスのユーザーを取得する。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// Create はユーザーを作成する。
	Create(ctx context.Context, user *model.User) error

	// UpdateProfile は指定メールアドレスのユーザーのName/Pictureを上書きする。
	// 最終ログイン優先（last-login-wins）のセマンティクスで、以前の値は保持しない。
	UpdateProfile(ctx context.Context, email, name, picture string) error
}

// SessionRepository はセッションデータの永続化インターフェース。
type SessionRepository interface {
	// Create はセッションを作成する。
	Create(ctx context.Context, session *model.Session) error

	// FindByToken は指定トークンのセッションを取得する。
	// 見つからない場合および期限切れの場合はnilを返す。
	FindByToken(ctx context.Context, token string) (*model.Session, error)

	// DeleteByToken は指定トークンに一致する全セッションを削除する。
	// 一致する行が無くてもエラーにしない。
	DeleteByToken(ctx context.Context, token string) error
}

// BookmarkRepository はブックマークデータの永続化インターフェース。
type BookmarkRepository interface {
	// FindByUserAndTopic は(user_id, topic_id)でブックマークを検索する。見つからない場合はnilを返す。
	FindByUserAndTopic(ctx context.Context, userID, topicID string) (*model.Bookmark, error)

	// Create はブックマークを作成する。(user_id, topic_id)が既存の場合は何もしない。
	// 一意インデックスにより同時重複リクエストでも1件しか作られない。
	Create(ctx context.Context, bookmark *model.Bookmark) error

	// ListByUserID はユーザーの全ブックマークを返す。順序はストレージの返却順。
	ListByUserID(ctx context.Context, userID string) ([]*model.Bookmark, error)

	// DeleteByUserAndTopic は(user_id, topic_id)に一致するブックマークを削除する。
	// 一致する行が無くてもエラーにしない。
	DeleteByUserAndTopic(ctx context.Context, userID, topicID string) error
}

// ContentRepository はカテゴリ・トピックの読み取りインターフェース。
// コンテンツはシーディング後は読み取り専用として扱う。
type ContentRepository interface {
	// ListCategories は全カテゴリをtopic_count付きで返す。
	ListCategories(ctx context.Context) ([]*model.Category, error)

	// FindCategoryBySlug は指定slugのカテゴリを取得する。見つからない場合はnilを返す。
	FindCategoryBySlug(ctx context.Context, slug string) (*model.Category, error)

	// ListTopicsByCategorySlug は指定カテゴリのトピックを最大limit件返す。
	ListTopicsByCategorySlug(ctx context.Context, slug string, limit int) ([]*model.Topic, error)

	// FindTopicByID は指定IDのトピックを取得する。見つからない場合はnilを返す。
	FindTopicByID(ctx context.Context, id string) (*model.Topic, error)

	// SearchTopics はtitle/description/content/tagsに対する大文字小文字無視の
	// 部分一致検索を行い、最大limit件返す。順序は保証しない。
	SearchTopics(ctx context.Context, query string, limit int) ([]*model.Topic, error)

	// CountCategories はカテゴリの総数を返す。シーディング要否の判定に使用する。
	CountCategories(ctx context.Context) (int, error)
}
