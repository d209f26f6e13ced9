// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// Messageはそのままレスポンスの detail フィールドとして返却される。
// Categoryはログ集計用の原因カテゴリ。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ（ユーザー向け）
	Category string // カテゴリ: auth, validation, content, upstream, system
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	ErrCodeUnauthenticated      = "UNAUTHENTICATED"
	ErrCodeCategoryNotFound     = "CATEGORY_NOT_FOUND"
	ErrCodeTopicNotFound        = "TOPIC_NOT_FOUND"
	ErrCodeInvalidRequest       = "INVALID_REQUEST"
	ErrCodeUpstreamUnavailable  = "UPSTREAM_UNAVAILABLE"
)

// NewAuthenticationFailedError は認証交換が拒否された場合のエラーを生成する。
func NewAuthenticationFailedError() *APIError {
	return &APIError{
		Code:     ErrCodeAuthenticationFailed,
		Message:  "Invalid session",
		Category: "auth",
	}
}

// NewUnauthenticatedError は認証が必要なルートで有効なセッションが無い場合のエラーを生成する。
// Messageは全ての保護ルートで同一の固定文字列でなければならない。
func NewUnauthenticatedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthenticated,
		Message:  "Not authenticated",
		Category: "auth",
	}
}

// NewCategoryNotFoundError はカテゴリ未検出エラーを生成する。
func NewCategoryNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeCategoryNotFound,
		Message:  "Category not found",
		Category: "content",
	}
}

// NewTopicNotFoundError はトピック未検出エラーを生成する。
func NewTopicNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeTopicNotFound,
		Message:  "Topic not found",
		Category: "content",
	}
}

// NewInvalidRequestError はリクエスト不正エラーを生成する。
func NewInvalidRequestError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  reason,
		Category: "validation",
	}
}

// NewUpstreamUnavailableError は外部サービス呼び出し失敗のエラーを生成する。
// 動画検索では呼び出し元が空リストに吸収するため、ユーザーに届くことはない。
func NewUpstreamUnavailableError(detail string) *APIError {
	return &APIError{
		Code:     ErrCodeUpstreamUnavailable,
		Message:  detail,
		Category: "upstream",
	}
}
