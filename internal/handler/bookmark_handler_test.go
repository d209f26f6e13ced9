package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/shaunak67/knownest-final/internal/middleware"
	"github.com/shaunak67/knownest-final/internal/model"
)

type mockBookmarkService struct {
	addFn    func(ctx context.Context, userID, topicID string) (*model.Bookmark, error)
	removeFn func(ctx context.Context, userID, topicID string) error
	listFn   func(ctx context.Context, userID string) ([]*model.BookmarkWithTopic, error)
}

func (m *mockBookmarkService) Add(ctx context.Context, userID, topicID string) (*model.Bookmark, error) {
	if m.addFn != nil {
		return m.addFn(ctx, userID, topicID)
	}
	return nil, nil
}

func (m *mockBookmarkService) Remove(ctx context.Context, userID, topicID string) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, userID, topicID)
	}
	return nil
}

func (m *mockBookmarkService) List(ctx context.Context, userID string) ([]*model.BookmarkWithTopic, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

var _ BookmarkServiceInterface = (*mockBookmarkService)(nil)

// authedRequest は認証済みユーザーをコンテキストに載せたリクエストを作る。
func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(middleware.ContextWithUser(req.Context(), &model.User{ID: "user_1"}))
}

func TestAddBookmark_ReturnsBookmark(t *testing.T) {
	service := &mockBookmarkService{
		addFn: func(ctx context.Context, userID, topicID string) (*model.Bookmark, error) {
			if userID != "user_1" || topicID != "t_cpr" {
				t.Errorf("args = %q/%q, want user_1/t_cpr", userID, topicID)
			}
			return &model.Bookmark{ID: "bm_new000000001", UserID: userID, TopicID: topicID}, nil
		},
	}

	h := NewBookmarkHandler(service)
	rec := httptest.NewRecorder()

	h.AddBookmark(rec, authedRequest(http.MethodPost, "/bookmarks", `{"topic_id": "t_cpr"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["bookmark_id"] != "bm_new000000001" {
		t.Errorf("bookmark_id = %v, want bm_new000000001", body["bookmark_id"])
	}
	if body["topic_id"] != "t_cpr" {
		t.Errorf("topic_id = %v, want t_cpr", body["topic_id"])
	}
}

func TestAddBookmark_EmptyTopicID_Returns400(t *testing.T) {
	service := &mockBookmarkService{
		addFn: func(ctx context.Context, userID, topicID string) (*model.Bookmark, error) {
			t.Fatal("Add should not be called with empty topic_id")
			return nil, nil
		},
	}

	h := NewBookmarkHandler(service)

	for name, body := range map[string]string{
		"empty topic_id": `{"topic_id": ""}`,
		"missing field":  `{}`,
		"invalid json":   `{`,
	} {
		rec := httptest.NewRecorder()
		h.AddBookmark(rec, authedRequest(http.MethodPost, "/bookmarks", body))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", name, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestAddBookmark_NoUserInContext_Returns401(t *testing.T) {
	h := NewBookmarkHandler(&mockBookmarkService{})
	req := httptest.NewRequest(http.MethodPost, "/bookmarks", strings.NewReader(`{"topic_id": "t_cpr"}`))
	rec := httptest.NewRecorder()

	h.AddBookmark(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if !strings.Contains(rec.Body.String(), `"detail":"Not authenticated"`) {
		t.Errorf("body = %q, want Not authenticated detail", rec.Body.String())
	}
}

func TestRemoveBookmark_ReturnsRemovedMessage(t *testing.T) {
	var removedTopic string
	service := &mockBookmarkService{
		removeFn: func(ctx context.Context, userID, topicID string) error {
			removedTopic = topicID
			return nil
		},
	}

	h := NewBookmarkHandler(service)

	r := chi.NewRouter()
	r.Delete("/bookmarks/{topic_id}", h.RemoveBookmark)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authedRequest(http.MethodDelete, "/bookmarks/t_cpr", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if removedTopic != "t_cpr" {
		t.Errorf("removed topic = %q, want t_cpr", removedTopic)
	}
	if !strings.Contains(rec.Body.String(), `"message":"Bookmark removed"`) {
		t.Errorf("body = %q, want Bookmark removed message", rec.Body.String())
	}
}

func TestListBookmarks_ReturnsBookmarksWithTopics(t *testing.T) {
	service := &mockBookmarkService{
		listFn: func(ctx context.Context, userID string) ([]*model.BookmarkWithTopic, error) {
			return []*model.BookmarkWithTopic{
				{
					Bookmark: model.Bookmark{ID: "bm_1", UserID: userID, TopicID: "t_cpr"},
					Topic:    &model.Topic{ID: "t_cpr", Title: "CPR", CategorySlug: "first-aid"},
				},
				{
					Bookmark: model.Bookmark{ID: "bm_2", UserID: userID, TopicID: "t_gone"},
					Topic:    nil, // 参照先トピックが消えている
				},
			}, nil
		},
	}

	h := NewBookmarkHandler(service)
	rec := httptest.NewRecorder()

	h.ListBookmarks(rec, authedRequest(http.MethodGet, "/bookmarks", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Bookmarks []map[string]any `json:"bookmarks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(body.Bookmarks) != 2 {
		t.Fatalf("len(bookmarks) = %d, want 2", len(body.Bookmarks))
	}

	first := body.Bookmarks[0]
	topic, ok := first["topic"].(map[string]any)
	if !ok {
		t.Fatalf("first bookmark topic = %v, want object", first["topic"])
	}
	if topic["topic_id"] != "t_cpr" {
		t.Errorf("topic_id = %v, want t_cpr", topic["topic_id"])
	}

	// 消えたトピックはtopicキーごと落ちる
	if _, ok := body.Bookmarks[1]["topic"]; ok {
		t.Error("dangling bookmark should omit topic")
	}
}

func TestListBookmarks_Empty_ReturnsEmptyArray(t *testing.T) {
	service := &mockBookmarkService{
		listFn: func(ctx context.Context, userID string) ([]*model.BookmarkWithTopic, error) {
			return []*model.BookmarkWithTopic{}, nil
		},
	}

	h := NewBookmarkHandler(service)
	rec := httptest.NewRecorder()

	h.ListBookmarks(rec, authedRequest(http.MethodGet, "/bookmarks", ""))

	if !strings.Contains(rec.Body.String(), `"bookmarks":[]`) {
		t.Errorf("body = %q, want empty bookmarks array (not null)", rec.Body.String())
	}
}
