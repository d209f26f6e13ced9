// Package content はカテゴリ・トピックの読み取りと検索のドメインロジックを提供する。
package content

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/shaunak67/knownest-final/internal/model"
	"github.com/shaunak67/knownest-final/internal/repository"
)

const (
	// maxTopicsPerCategory はカテゴリ詳細で返すトピックの上限。
	maxTopicsPerCategory = 100

	// maxSearchResults は検索結果の上限。
	maxSearchResults = 50

	// minQueryLength は検索クエリの最低文字数。これ未満は空の結果を返す。
	minQueryLength = 2

	// topicVideoCount はトピック詳細に添付する動画の件数。
	topicVideoCount = 5
)

// VideoSearcher はトピック詳細に添付する動画検索のインターフェース。
type VideoSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]model.Video, error)
}

// CategoryDetail はカテゴリと所属トピックを結合した読み取り用構造体。
type CategoryDetail struct {
	Category *model.Category
	Topics   []*model.Topic
}

// TopicDetail はトピックとベストエフォートで取得した動画を結合した読み取り用構造体。
type TopicDetail struct {
	Topic  *model.Topic
	Videos []model.Video
}

// Service はコンテンツ読み取りのサービス層。
type Service struct {
	contentRepo   repository.ContentRepository
	videoSearcher VideoSearcher
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(contentRepo repository.ContentRepository, videoSearcher VideoSearcher) *Service {
	return &Service{
		contentRepo:   contentRepo,
		videoSearcher: videoSearcher,
	}
}

// ListCategories は全カテゴリをtopic_count付きで返す。
func (s *Service) ListCategories(ctx context.Context) ([]*model.Category, error) {
	categories, err := s.contentRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("カテゴリ一覧の取得に失敗しました: %w", err)
	}
	return categories, nil
}

// GetCategory は指定slugのカテゴリと所属トピックを返す。
// topic_countは返却するトピック数と一致させる。
// カテゴリが存在しない場合はCATEGORY_NOT_FOUNDを返す。
func (s *Service) GetCategory(ctx context.Context, slug string) (*CategoryDetail, error) {
	category, err := s.contentRepo.FindCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("カテゴリの取得に失敗しました: %w", err)
	}
	if category == nil {
		return nil, model.NewCategoryNotFoundError()
	}

	topics, err := s.contentRepo.ListTopicsByCategorySlug(ctx, slug, maxTopicsPerCategory)
	if err != nil {
		return nil, fmt.Errorf("トピック一覧の取得に失敗しました: %w", err)
	}

	category.TopicCount = len(topics)

	return &CategoryDetail{
		Category: category,
		Topics:   topics,
	}, nil
}

// GetTopic は指定IDのトピックと関連動画を返す。
// 動画はベストエフォートで取得し、外部呼び出しの失敗（クォータ・認証
// エラー含む）はログに記録して空リストに吸収する。トピック取得自体は
// 動画の失敗で失敗しない。
func (s *Service) GetTopic(ctx context.Context, id string) (*TopicDetail, error) {
	topic, err := s.contentRepo.FindTopicByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("トピックの取得に失敗しました: %w", err)
	}
	if topic == nil {
		return nil, model.NewTopicNotFoundError()
	}

	videos := []model.Video{}
	if s.videoSearcher != nil {
		query := topic.Title + " tutorial guide"
		found, err := s.videoSearcher.Search(ctx, query, topicVideoCount)
		if err != nil {
			slog.Error("video lookup failed",
				slog.String("topic_id", topic.ID),
				slog.String("error", err.Error()),
			)
		} else if found != nil {
			videos = found
		}
	}

	return &TopicDetail{
		Topic:  topic,
		Videos: videos,
	}, nil
}

// Search はクエリに一致するトピックを最大50件返す。
// クエリが空または2文字未満の場合はストレージに触れず空の結果を返す（エラーにしない）。
// 文字数はrune単位で数え、マルチバイト文字1文字は1文字として扱う。
func (s *Service) Search(ctx context.Context, query string) ([]*model.Topic, error) {
	if utf8.RuneCountInString(query) < minQueryLength {
		return []*model.Topic{}, nil
	}

	topics, err := s.contentRepo.SearchTopics(ctx, query, maxSearchResults)
	if err != nil {
		return nil, fmt.Errorf("トピック検索に失敗しました: %w", err)
	}
	if topics == nil {
		topics = []*model.Topic{}
	}
	return topics, nil
}
