package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shaunak67/knownest-final/internal/content"
	"github.com/shaunak67/knownest-final/internal/model"
)

// ContentServiceInterface はコンテンツハンドラーが必要とするサービスインターフェース。
type ContentServiceInterface interface {
	ListCategories(ctx context.Context) ([]*model.Category, error)
	GetCategory(ctx context.Context, slug string) (*content.CategoryDetail, error)
	GetTopic(ctx context.Context, id string) (*content.TopicDetail, error)
	Search(ctx context.Context, query string) ([]*model.Topic, error)
}

// ContentHandler はカテゴリ・トピック閲覧のHTTPハンドラー。
type ContentHandler struct {
	service ContentServiceInterface
}

// NewContentHandler はContentHandlerを生成する。
func NewContentHandler(service ContentServiceInterface) *ContentHandler {
	return &ContentHandler{service: service}
}

// --- レスポンス型 ---

// categoryResponse はカテゴリのレスポンス。
type categoryResponse struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	ImageURL    string `json:"image_url"`
	TopicCount  int    `json:"topic_count"`
}

// topicResponse はトピックのレスポンス。
type topicResponse struct {
	TopicID      string   `json:"topic_id"`
	CategorySlug string   `json:"category_slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Content      string   `json:"content"`
	Icon         string   `json:"icon"`
	Tags         []string `json:"tags"`
}

// videoResponse は外部動画検索結果のレスポンス。
type videoResponse struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channel_title"`
}

// categoryDetailResponse はカテゴリ詳細のレスポンス。
type categoryDetailResponse struct {
	Category categoryResponse `json:"category"`
	Topics   []topicResponse  `json:"topics"`
}

// topicDetailResponse はトピック詳細のレスポンス。
type topicDetailResponse struct {
	Topic  topicResponse   `json:"topic"`
	Videos []videoResponse `json:"videos"`
}

// searchResponse はトピック検索のレスポンス。
type searchResponse struct {
	Results []topicResponse `json:"results"`
}

// toCategoryResponse はmodel.CategoryからAPIレスポンスに変換する。
func toCategoryResponse(c *model.Category) categoryResponse {
	return categoryResponse{
		CategoryID:  c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Icon:        c.Icon,
		ImageURL:    c.ImageURL,
		TopicCount:  c.TopicCount,
	}
}

// toTopicResponse はmodel.TopicからAPIレスポンスに変換する。
func toTopicResponse(t *model.Topic) topicResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return topicResponse{
		TopicID:      t.ID,
		CategorySlug: t.CategorySlug,
		Title:        t.Title,
		Description:  t.Description,
		Content:      t.Content,
		Icon:         t.Icon,
		Tags:         tags,
	}
}

// toTopicResponses はトピックのスライスを変換する。常に非nilを返す。
func toTopicResponses(topics []*model.Topic) []topicResponse {
	result := make([]topicResponse, 0, len(topics))
	for _, t := range topics {
		result = append(result, toTopicResponse(t))
	}
	return result
}

// toVideoResponses は動画のスライスを変換する。常に非nilを返す。
func toVideoResponses(videos []model.Video) []videoResponse {
	result := make([]videoResponse, 0, len(videos))
	for _, v := range videos {
		result = append(result, videoResponse{
			VideoID:      v.ID,
			Title:        v.Title,
			Description:  v.Description,
			Thumbnail:    v.Thumbnail,
			ChannelTitle: v.ChannelTitle,
		})
	}
	return result
}

// ListCategories は全カテゴリをtopic_count付きで返す。
// GET /categories
func (h *ContentHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	result := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, toCategoryResponse(c))
	}
	writeJSON(w, http.StatusOK, result)
}

// GetCategory はカテゴリと所属トピック一覧を返す。
// GET /categories/{slug}
func (h *ContentHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	detail, err := h.service.GetCategory(r.Context(), slug)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, categoryDetailResponse{
		Category: toCategoryResponse(detail.Category),
		Topics:   toTopicResponses(detail.Topics),
	})
}

// GetTopic はトピック詳細と関連動画を返す。
// GET /topics/{id}
func (h *ContentHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := h.service.GetTopic(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, topicDetailResponse{
		Topic:  toTopicResponse(detail.Topic),
		Videos: toVideoResponses(detail.Videos),
	})
}

// Search はクエリに一致するトピックを返す。
// GET /search?q=xxx
func (h *ContentHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results, err := h.service.Search(r.Context(), query)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Results: toTopicResponses(results)})
}
