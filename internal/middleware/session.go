// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shaunak67/knownest-final/internal/model"
)

// SessionCookieName はセッショントークンを保持するCookie名。
const SessionCookieName = "session_token"

const bearerPrefix = "Bearer "

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// userContextKey はリクエストコンテキストに認証済みユーザーを格納するためのキー。
var userContextKey = contextKey("user")

// SessionResolver はトークンから認証済みユーザーを解決するインターフェース。
// auth.Serviceの部分集合として定義する。
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*model.User, error)
}

// AuthFailureRecorder は認証失敗メトリクスの記録に必要なインターフェース。
type AuthFailureRecorder interface {
	RecordAuthFailure()
}

// NewRequireAuthMiddleware はリクエストからセッショントークンを抽出・検証し、
// 認証済みユーザーをリクエストコンテキストに注入するミドルウェアを返す。
// トークンはsession_token Cookieを優先し、なければAuthorization: Bearerを見る。
// トークン欠落・無効・期限切れはいずれも同一の401レスポンスになる。
// recorderはnil可。
func NewRequireAuthMiddleware(resolver SessionResolver, recorder AuthFailureRecorder) func(next http.Handler) http.Handler {
	recordFailure := func() {
		if recorder != nil {
			recorder.RecordAuthFailure()
		}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractSessionToken(r)
			if token == "" {
				recordFailure()
				writeUnauthenticated(w)
				return
			}

			user, err := resolver.ResolveSession(r.Context(), token)
			if err != nil {
				slog.Error("failed to resolve session",
					slog.String("error", err.Error()),
				)
				recordFailure()
				writeUnauthenticated(w)
				return
			}
			if user == nil {
				recordFailure()
				writeUnauthenticated(w)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractSessionToken はリクエストからセッショントークンを取り出す。
// Cookieを優先し、なければAuthorizationヘッダーのBearerトークンを返す。
// どちらもない場合は空文字を返す。
func ExtractSessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}
	return ""
}

// writeUnauthenticated は未認証リクエストへの401レスポンスを書き込む。
// 欠落・無効・期限切れを呼び出し側が区別できないよう、本文は常に同一にする。
func writeUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprint(w, `{"detail":"Not authenticated"}`)
}

// UserFromContext はリクエストコンテキストから認証済みユーザーを取得する。
// 認証ミドルウェアを通過したリクエストでのみ有効。
func UserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(userContextKey).(*model.User)
	if !ok || user == nil {
		return nil, fmt.Errorf("user not found in context")
	}
	return user, nil
}

// ContextWithUser はコンテキストに認証済みユーザーを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}
