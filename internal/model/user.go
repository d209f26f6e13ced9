// Package model はドメインモデルを定義する。
package model

import "time"

// User はサービス利用ユーザーを表す。
// 初回の認証交換成功時に作成され、以降のログインでName/Pictureが上書きされる。
type User struct {
	ID        string
	Email     string
	Name      string
	Picture   string
	CreatedAt time.Time
}

// Session はユーザーのログインセッションを表す。
// Tokenは外部の認証交換で発行される不透明なbearerクレデンシャル。
// 1ユーザーが複数の同時セッションを持つことを許容する。
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}
