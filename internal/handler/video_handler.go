package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shaunak67/knownest-final/internal/model"
)

// videoSearchMaxResults は動画検索エンドポイントの取得件数。
const videoSearchMaxResults = 10

// VideoSearchInterface は動画検索ハンドラーが必要とするインターフェース。
type VideoSearchInterface interface {
	Search(ctx context.Context, query string, maxResults int) ([]model.Video, error)
}

// VideoHandler は外部動画検索のHTTPハンドラー。
type VideoHandler struct {
	searcher VideoSearchInterface
}

// NewVideoHandler はVideoHandlerを生成する。
func NewVideoHandler(searcher VideoSearchInterface) *VideoHandler {
	return &VideoHandler{searcher: searcher}
}

// videoListResponse は動画検索のレスポンス。
type videoListResponse struct {
	Videos []videoResponse `json:"videos"`
}

// SearchVideos はクエリに一致する動画を返す。外部呼び出しの失敗は
// 空リストに吸収し、このエンドポイントがエラーを返すことはない。
// GET /videos/search?q=xxx
func (h *VideoHandler) SearchVideos(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	videos := []model.Video{}
	if query != "" {
		found, err := h.searcher.Search(r.Context(), query, videoSearchMaxResults)
		if err != nil {
			slog.Error("video search failed", slog.String("error", err.Error()))
		} else if found != nil {
			videos = found
		}
	}

	writeJSON(w, http.StatusOK, videoListResponse{Videos: toVideoResponses(videos)})
}
