package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/shaunak67/knownest-final/internal/auth"
	"github.com/shaunak67/knownest-final/internal/middleware"
	"github.com/shaunak67/knownest-final/internal/model"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	EstablishSession(ctx context.Context, externalSessionID string) (*model.User, string, error)
	EndSession(ctx context.Context, token string) error
}

// AuthHandlerConfig は認証ハンドラーの設定。
type AuthHandlerConfig struct {
	CookieDomain string
}

// AuthHandler はセッション確立・破棄関連のHTTPハンドラー。
type AuthHandler struct {
	service AuthServiceInterface
	config  AuthHandlerConfig
}

// NewAuthHandler はAuthHandlerを生成する。
func NewAuthHandler(service AuthServiceInterface, config AuthHandlerConfig) *AuthHandler {
	return &AuthHandler{
		service: service,
		config:  config,
	}
}

// sessionRequest はセッション確立リクエストのボディ。
type sessionRequest struct {
	SessionID string `json:"session_id"`
}

// userResponse はユーザー情報のレスポンス。
type userResponse struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Picture   string `json:"picture"`
	CreatedAt string `json:"created_at"`
}

// sessionResponse はセッション確立成功時のレスポンス。
// クライアントがCookie非対応でも使えるよう、トークンをボディでも返す。
type sessionResponse struct {
	userResponse
	SessionToken string `json:"session_token"`
}

// messageResponse は操作成功メッセージのレスポンス。
type messageResponse struct {
	Message string `json:"message"`
}

// toUserResponse はmodel.UserからAPIレスポンスに変換する。
func toUserResponse(user *model.User) userResponse {
	return userResponse{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Picture:   user.Picture,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// CreateSession は外部発行のセッションIDを交換し、ログインセッションを確立する。
// POST /auth/session
func (h *AuthHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidRequestError("session_id is required"))
		return
	}

	user, token, err := h.service.EstablishSession(r.Context(), req.SessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// セッションCookieを設定。クロスサイトのフロントエンドから送信できるよう
	// SameSite=None + Secureにする。
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.config.CookieDomain,
		MaxAge:   int(auth.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	writeJSON(w, http.StatusOK, sessionResponse{
		userResponse: toUserResponse(user),
		SessionToken: token,
	})
}

// Me は認証済みユーザー自身の情報を返す。
// GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthenticatedError())
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Logout はセッションを破棄する。トークンが無い・無効・既に削除済みの
// いずれの場合も200を返す（冪等）。
// POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.ExtractSessionToken(r)
	if token != "" {
		if err := h.service.EndSession(r.Context(), token); err != nil {
			slog.Error("failed to end session", slog.String("error", err.Error()))
			// 削除に失敗してもCookieはクリアする
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.config.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out"})
}
