// Package auth は認証交換フローとセッション管理を提供する。
package auth

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

// SessionTTL はセッションの有効期間。固定値で、設定では変更できない。
const SessionTTL = 7 * 24 * time.Hour

// FailureRecorder は認証失敗メトリクスの記録に必要なインターフェース。
type FailureRecorder interface {
	RecordAuthFailure()
}

// Service は認証に関するビジネスロジックを提供する。
// セッションは署名付きトークンではなくストア参照型のbearerトークンで、
// 失効は行削除だけで済む。リクエストごとのストア参照コストは
// 低QPSのコンテンツサービスでは妥当なトレードオフ。
type Service struct {
	exchanger   IdentityExchanger
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	recorder    FailureRecorder // nil可
}

// NewService はServiceを生成する。
func NewService(
	exchanger IdentityExchanger,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	recorder FailureRecorder,
) *Service {
	return &Service{
		exchanger:   exchanger,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		recorder:    recorder,
	}
}

// EstablishSession は外部の不透明セッションIDを検証済みの身元に交換し、
// セッションを発行する。
// 未登録メールアドレスの場合はユーザーを新規作成し、登録済みの場合は
// Name/Pictureを上書きする（last-login-wins）。
// 交換が拒否された場合はAUTHENTICATION_FAILEDを返す。
func (s *Service) EstablishSession(ctx context.Context, externalSessionID string) (*model.User, string, error) {
	identity, err := s.exchanger.Exchange(ctx, externalSessionID)
	if err != nil {
		if s.recorder != nil {
			s.recorder.RecordAuthFailure()
		}
		slog.Warn("identity exchange rejected", slog.String("error", err.Error()))
		return nil, "", model.NewAuthenticationFailedError()
	}

	user, err := s.upsertUser(ctx, identity)
	if err != nil {
		return nil, "", err
	}

	session := &model.Session{
		Token:     identity.SessionToken,
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(SessionTTL),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to save session: %w", err)
	}

	slog.Info("session established",
		slog.String("user_id", user.ID),
	)

	return user, identity.SessionToken, nil
}

// ResolveSession はトークンから現在のユーザーを解決する。
// トークンが空、セッションが存在しない、期限切れ、参照先ユーザーが
// 欠落している場合はいずれも(nil, nil)を返す。
// 「未認証」はエラーではなく、述語的な参照として扱う。
func (s *Service) ResolveSession(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	// 孤立セッション（ユーザー行が無い）も未認証として扱う
	if user == nil {
		return nil, nil
	}

	return user, nil
}

// EndSession は提示されたトークンに一致する全セッションを削除する。
// 有効なセッションが無い状態でのログアウトも成功として扱う。
func (s *Service) EndSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	slog.Info("session ended")
	return nil
}

// upsertUser はメールアドレスでユーザーを検索し、無ければ作成、
// あればプロフィールを上書きして返す。
func (s *Service) upsertUser(ctx context.Context, identity *IdentityData) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, identity.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	if existing != nil {
		if err := s.userRepo.UpdateProfile(ctx, identity.Email, identity.Name, identity.Picture); err != nil {
			return nil, fmt.Errorf("failed to update user profile: %w", err)
		}
		existing.Name = identity.Name
		existing.Picture = identity.Picture
		return existing, nil
	}

	user := &model.User{
		ID:        newUserID(),
		Email:     identity.Email,
		Name:      identity.Name,
		Picture:   identity.Picture,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("new user created",
		slog.String("user_id", user.ID),
	)

	return user, nil
}

// newUserID は "user_" プレフィックス付きの12桁hexのユーザーIDを生成する。
func newUserID() string {
	return "user_" + shortHex()
}

// shortHex はUUID v4のhex表現の先頭12文字を返す。
func shortHex() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
