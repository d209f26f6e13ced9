package content

import (
	"context"
	"errors"
	"testing"

	"github.com/shaunak67/knownest-final/internal/model"
	"github.com/shaunak67/knownest-final/internal/repository"
)

// --- モック定義 ---

type mockContentRepo struct {
	listCategoriesFn           func(ctx context.Context) ([]*model.Category, error)
	findCategoryBySlugFn       func(ctx context.Context, slug string) (*model.Category, error)
	listTopicsByCategorySlugFn func(ctx context.Context, slug string, limit int) ([]*model.Topic, error)
	findTopicByIDFn            func(ctx context.Context, id string) (*model.Topic, error)
	searchTopicsFn             func(ctx context.Context, query string, limit int) ([]*model.Topic, error)
}

func (m *mockContentRepo) ListCategories(ctx context.Context) ([]*model.Category, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(ctx)
	}
	return nil, nil
}

func (m *mockContentRepo) FindCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	if m.findCategoryBySlugFn != nil {
		return m.findCategoryBySlugFn(ctx, slug)
	}
	return nil, nil
}

func (m *mockContentRepo) ListTopicsByCategorySlug(ctx context.Context, slug string, limit int) ([]*model.Topic, error) {
	if m.listTopicsByCategorySlugFn != nil {
		return m.listTopicsByCategorySlugFn(ctx, slug, limit)
	}
	return nil, nil
}

func (m *mockContentRepo) FindTopicByID(ctx context.Context, id string) (*model.Topic, error) {
	if m.findTopicByIDFn != nil {
		return m.findTopicByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockContentRepo) SearchTopics(ctx context.Context, query string, limit int) ([]*model.Topic, error) {
	if m.searchTopicsFn != nil {
		return m.searchTopicsFn(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockContentRepo) CountCategories(_ context.Context) (int, error) {
	return 0, nil
}

type mockVideoSearcher struct {
	searchFn func(ctx context.Context, query string, maxResults int) ([]model.Video, error)
}

func (m *mockVideoSearcher) Search(ctx context.Context, query string, maxResults int) ([]model.Video, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, maxResults)
	}
	return []model.Video{}, nil
}

// --- compile-time interface checks ---
var _ repository.ContentRepository = (*mockContentRepo)(nil)
var _ VideoSearcher = (*mockVideoSearcher)(nil)

// --- テスト ---

func TestGetCategory_UnknownSlug_ReturnsNotFound(t *testing.T) {
	repo := &mockContentRepo{
		findCategoryBySlugFn: func(ctx context.Context, slug string) (*model.Category, error) {
			return nil, nil
		},
	}

	svc := NewService(repo, &mockVideoSearcher{})

	_, err := svc.GetCategory(context.Background(), "not-a-real-slug")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeCategoryNotFound {
		t.Errorf("error code = %q, want %q", apiErr.Code, model.ErrCodeCategoryNotFound)
	}
}

func TestGetCategory_TopicCountMatchesTopics(t *testing.T) {
	repo := &mockContentRepo{
		findCategoryBySlugFn: func(ctx context.Context, slug string) (*model.Category, error) {
			return &model.Category{ID: "cat_first_aid", Slug: slug, TopicCount: 999}, nil
		},
		listTopicsByCategorySlugFn: func(ctx context.Context, slug string, limit int) ([]*model.Topic, error) {
			if limit != maxTopicsPerCategory {
				t.Errorf("limit = %d, want %d", limit, maxTopicsPerCategory)
			}
			return []*model.Topic{
				{ID: "t_cpr", CategorySlug: slug},
				{ID: "t_burns", CategorySlug: slug},
			}, nil
		},
	}

	svc := NewService(repo, &mockVideoSearcher{})

	detail, err := svc.GetCategory(context.Background(), "first-aid")
	if err != nil {
		t.Fatalf("GetCategory() error = %v", err)
	}

	// topic_countは返却するトピック数と一致する
	if detail.Category.TopicCount != len(detail.Topics) {
		t.Errorf("topic count = %d, want %d", detail.Category.TopicCount, len(detail.Topics))
	}
	if detail.Category.TopicCount != 2 {
		t.Errorf("topic count = %d, want 2", detail.Category.TopicCount)
	}
}

func TestGetTopic_UnknownID_ReturnsNotFound(t *testing.T) {
	repo := &mockContentRepo{
		findTopicByIDFn: func(ctx context.Context, id string) (*model.Topic, error) {
			return nil, nil
		},
	}

	svc := NewService(repo, &mockVideoSearcher{})

	_, err := svc.GetTopic(context.Background(), "t_missing")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeTopicNotFound {
		t.Errorf("error code = %q, want %q", apiErr.Code, model.ErrCodeTopicNotFound)
	}
}

func TestGetTopic_BuildsTutorialGuideQuery(t *testing.T) {
	var gotQuery string
	var gotMax int

	repo := &mockContentRepo{
		findTopicByIDFn: func(ctx context.Context, id string) (*model.Topic, error) {
			return &model.Topic{ID: id, Title: "CPR - Cardiopulmonary Resuscitation"}, nil
		},
	}
	searcher := &mockVideoSearcher{
		searchFn: func(ctx context.Context, query string, maxResults int) ([]model.Video, error) {
			gotQuery = query
			gotMax = maxResults
			return []model.Video{{ID: "vid1"}}, nil
		},
	}

	svc := NewService(repo, searcher)

	detail, err := svc.GetTopic(context.Background(), "t_cpr")
	if err != nil {
		t.Fatalf("GetTopic() error = %v", err)
	}

	want := "CPR - Cardiopulmonary Resuscitation tutorial guide"
	if gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
	if gotMax != topicVideoCount {
		t.Errorf("maxResults = %d, want %d", gotMax, topicVideoCount)
	}
	if len(detail.Videos) != 1 {
		t.Errorf("len(videos) = %d, want 1", len(detail.Videos))
	}
}

// 動画検索の失敗はトピック取得を失敗させず、空リストになること。
func TestGetTopic_VideoSearchFailure_SwallowedAsEmptyList(t *testing.T) {
	repo := &mockContentRepo{
		findTopicByIDFn: func(ctx context.Context, id string) (*model.Topic, error) {
			return &model.Topic{ID: id, Title: "Burns Treatment", CategorySlug: "first-aid"}, nil
		},
	}
	searcher := &mockVideoSearcher{
		searchFn: func(ctx context.Context, query string, maxResults int) ([]model.Video, error) {
			return nil, errors.New("quota exceeded")
		},
	}

	svc := NewService(repo, searcher)

	detail, err := svc.GetTopic(context.Background(), "t_burns")
	if err != nil {
		t.Fatalf("GetTopic() error = %v", err)
	}
	if detail.Topic.ID != "t_burns" {
		t.Errorf("topic ID = %q, want t_burns", detail.Topic.ID)
	}
	if detail.Videos == nil {
		t.Fatal("videos should be empty slice, not nil")
	}
	if len(detail.Videos) != 0 {
		t.Errorf("len(videos) = %d, want 0", len(detail.Videos))
	}
}

func TestGetTopic_NilSearcher_EmptyVideos(t *testing.T) {
	repo := &mockContentRepo{
		findTopicByIDFn: func(ctx context.Context, id string) (*model.Topic, error) {
			return &model.Topic{ID: id}, nil
		},
	}

	svc := NewService(repo, nil)

	detail, err := svc.GetTopic(context.Background(), "t_cpr")
	if err != nil {
		t.Fatalf("GetTopic() error = %v", err)
	}
	if len(detail.Videos) != 0 {
		t.Errorf("len(videos) = %d, want 0", len(detail.Videos))
	}
}

func TestSearch_ShortQuery_ReturnsEmptyWithoutStorageCall(t *testing.T) {
	repo := &mockContentRepo{
		searchTopicsFn: func(ctx context.Context, query string, limit int) ([]*model.Topic, error) {
			t.Fatal("SearchTopics should not be called for short query")
			return nil, nil
		},
	}

	svc := NewService(repo, &mockVideoSearcher{})

	// "é"（2バイト）や"あ"（3バイト）はバイト数では2文字以上に見えるが、
	// 文字数では1文字なので短いクエリとして扱う
	for _, q := range []string{"", "a", "é", "あ"} {
		results, err := svc.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("Search(%q) error = %v", q, err)
		}
		if results == nil {
			t.Fatalf("Search(%q) = nil, want empty slice", q)
		}
		if len(results) != 0 {
			t.Errorf("Search(%q) returned %d results, want 0", q, len(results))
		}
	}
}

func TestSearch_TwoMultibyteCharacters_ReachesStorage(t *testing.T) {
	called := false
	repo := &mockContentRepo{
		searchTopicsFn: func(ctx context.Context, query string, limit int) ([]*model.Topic, error) {
			called = true
			return []*model.Topic{}, nil
		},
	}

	svc := NewService(repo, &mockVideoSearcher{})

	if _, err := svc.Search(context.Background(), "応急"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if !called {
		t.Error("2文字のマルチバイトクエリでSearchTopicsが呼ばれなかった")
	}
}

func TestSearch_PassesCapToRepository(t *testing.T) {
	repo := &mockContentRepo{
		searchTopicsFn: func(ctx context.Context, query string, limit int) ([]*model.Topic, error) {
			if limit != maxSearchResults {
				t.Errorf("limit = %d, want %d", limit, maxSearchResults)
			}
			return []*model.Topic{{ID: "t_cpr"}}, nil
		},
	}

	svc := NewService(repo, &mockVideoSearcher{})

	results, err := svc.Search(context.Background(), "cpr")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Errorf("len(results) = %d, want 1", len(results))
	}
}
