package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shaunak67/knownest-final/internal/middleware"
	"github.com/shaunak67/knownest-final/internal/model"
)

// BookmarkServiceInterface はブックマークハンドラーが必要とするサービスインターフェース。
type BookmarkServiceInterface interface {
	Add(ctx context.Context, userID, topicID string) (*model.Bookmark, error)
	Remove(ctx context.Context, userID, topicID string) error
	List(ctx context.Context, userID string) ([]*model.BookmarkWithTopic, error)
}

// BookmarkHandler はブックマーク管理のHTTPハンドラー。
type BookmarkHandler struct {
	service BookmarkServiceInterface
}

// NewBookmarkHandler はBookmarkHandlerを生成する。
func NewBookmarkHandler(service BookmarkServiceInterface) *BookmarkHandler {
	return &BookmarkHandler{service: service}
}

// bookmarkRequest はブックマーク作成リクエストのボディ。
type bookmarkRequest struct {
	TopicID string `json:"topic_id"`
}

// bookmarkResponse はブックマークのレスポンス。
// Topicは一覧取得時のみ埋められ、参照先トピックが消えている場合はnullになる。
type bookmarkResponse struct {
	BookmarkID string         `json:"bookmark_id"`
	UserID     string         `json:"user_id"`
	TopicID    string         `json:"topic_id"`
	CreatedAt  string         `json:"created_at"`
	Topic      *topicResponse `json:"topic,omitempty"`
}

// bookmarkListResponse はブックマーク一覧のレスポンス。
type bookmarkListResponse struct {
	Bookmarks []bookmarkResponse `json:"bookmarks"`
}

// toBookmarkResponse はmodel.BookmarkからAPIレスポンスに変換する。
func toBookmarkResponse(b *model.Bookmark) bookmarkResponse {
	return bookmarkResponse{
		BookmarkID: b.ID,
		UserID:     b.UserID,
		TopicID:    b.TopicID,
		CreatedAt:  b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// AddBookmark はトピックをブックマークする。既存の場合は既存レコードを返す（冪等）。
// POST /bookmarks
func (h *BookmarkHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthenticatedError())
		return
	}

	var req bookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TopicID == "" {
		writeAPIErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidRequestError("topic_id is required"))
		return
	}

	bookmark, err := h.service.Add(r.Context(), user.ID, req.TopicID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookmarkResponse(bookmark))
}

// RemoveBookmark はトピックのブックマークを削除する。存在しなくても成功を返す（冪等）。
// DELETE /bookmarks/{topic_id}
func (h *BookmarkHandler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthenticatedError())
		return
	}

	topicID := chi.URLParam(r, "topic_id")
	if err := h.service.Remove(r.Context(), user.ID, topicID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Bookmark removed"})
}

// ListBookmarks は認証済みユーザーの全ブックマークをトピック付きで返す。
// GET /bookmarks
func (h *BookmarkHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewUnauthenticatedError())
		return
	}

	bookmarks, err := h.service.List(r.Context(), user.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	result := make([]bookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		resp := toBookmarkResponse(&b.Bookmark)
		if b.Topic != nil {
			topic := toTopicResponse(b.Topic)
			resp.Topic = &topic
		}
		result = append(result, resp)
	}

	writeJSON(w, http.StatusOK, bookmarkListResponse{Bookmarks: result})
}
