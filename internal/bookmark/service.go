// Package bookmark はユーザーごとのブックマーク管理のドメインロジックを提供する。
package bookmark

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shaunak67/knownest-final/internal/model"
	"github.com/shaunak67/knownest-final/internal/repository"
)

// Service はブックマーク操作のサービス層。
type Service struct {
	bookmarkRepo repository.BookmarkRepository
	contentRepo  repository.ContentRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(bookmarkRepo repository.BookmarkRepository, contentRepo repository.ContentRepository) *Service {
	return &Service{
		bookmarkRepo: bookmarkRepo,
		contentRepo:  contentRepo,
	}
}

// Add はユーザーのブックマークを作成する。既に同じトピックのブックマークが
// 存在する場合はエラーにせず既存レコードをそのまま返す（冪等）。
// 同時リクエストはbookmarksの一意制約とON CONFLICTで単一行に収束し、
// どちらのリクエストも正規の行を再読み込みして返す。topic_idの実在は
// 検証しない。
func (s *Service) Add(ctx context.Context, userID, topicID string) (*model.Bookmark, error) {
	existing, err := s.bookmarkRepo.FindByUserAndTopic(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("ブックマークの照会に失敗しました: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	bookmark := &model.Bookmark{
		ID:        newBookmarkID(),
		UserID:    userID,
		TopicID:   topicID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.bookmarkRepo.Create(ctx, bookmark); err != nil {
		return nil, fmt.Errorf("ブックマークの作成に失敗しました: %w", err)
	}

	// 競合時は別リクエストの行が勝つため、正規の行を読み直す。
	created, err := s.bookmarkRepo.FindByUserAndTopic(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("ブックマークの再読込に失敗しました: %w", err)
	}
	if created == nil {
		return bookmark, nil
	}
	return created, nil
}

// Remove はユーザーの指定トピックのブックマークを削除する。
// 該当レコードが存在しない場合も成功として扱う（冪等）。
func (s *Service) Remove(ctx context.Context, userID, topicID string) error {
	if err := s.bookmarkRepo.DeleteByUserAndTopic(ctx, userID, topicID); err != nil {
		return fmt.Errorf("ブックマークの削除に失敗しました: %w", err)
	}
	return nil
}

// List はユーザーの全ブックマークをトピック情報付きで返す。
// 参照先トピックが存在しない場合はTopicをnilのまま返し、一覧全体は失敗させない。
func (s *Service) List(ctx context.Context, userID string) ([]*model.BookmarkWithTopic, error) {
	bookmarks, err := s.bookmarkRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ブックマーク一覧の取得に失敗しました: %w", err)
	}

	result := make([]*model.BookmarkWithTopic, 0, len(bookmarks))
	for _, b := range bookmarks {
		topic, err := s.contentRepo.FindTopicByID(ctx, b.TopicID)
		if err != nil {
			return nil, fmt.Errorf("ブックマーク先トピックの取得に失敗しました: %w", err)
		}
		if topic == nil {
			slog.Warn("bookmark references missing topic",
				slog.String("bookmark_id", b.ID),
				slog.String("topic_id", b.TopicID),
			)
		}
		result = append(result, &model.BookmarkWithTopic{
			Bookmark: *b,
			Topic:    topic,
		})
	}
	return result, nil
}

// newBookmarkID はbm_プレフィックス付きの短いブックマークIDを生成する。
func newBookmarkID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "bm_" + hex[:12]
}
