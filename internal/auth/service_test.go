package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shaunak67/knownest-final/internal/model"
	"github.com/shaunak67/knownest-final/internal/repository"
)

// --- モック定義 ---

type mockExchanger struct {
	exchangeFn func(ctx context.Context, sessionID string) (*IdentityData, error)
}

func (m *mockExchanger) Exchange(ctx context.Context, sessionID string) (*IdentityData, error) {
	if m.exchangeFn != nil {
		return m.exchangeFn(ctx, sessionID)
	}
	return nil, nil
}

type mockUserRepo struct {
	findByIDFn      func(ctx context.Context, id string) (*model.User, error)
	findByEmailFn   func(ctx context.Context, email string) (*model.User, error)
	createFn        func(ctx context.Context, user *model.User) error
	updateProfileFn func(ctx context.Context, email, name, picture string) error
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, email, name, picture string) error {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, email, name, picture)
	}
	return nil
}

type mockSessionRepo struct {
	createFn        func(ctx context.Context, session *model.Session) error
	findByTokenFn   func(ctx context.Context, token string) (*model.Session, error)
	deleteByTokenFn func(ctx context.Context, token string) error
}

func (m *mockSessionRepo) Create(ctx context.Context, session *model.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionRepo) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	if m.findByTokenFn != nil {
		return m.findByTokenFn(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepo) DeleteByToken(ctx context.Context, token string) error {
	if m.deleteByTokenFn != nil {
		return m.deleteByTokenFn(ctx, token)
	}
	return nil
}

// --- compile-time interface checks ---
var _ IdentityExchanger = (*mockExchanger)(nil)
var _ repository.UserRepository = (*mockUserRepo)(nil)
var _ repository.SessionRepository = (*mockSessionRepo)(nil)

// --- テスト ---

func TestEstablishSession_NewUser_CreatesUserAndSession(t *testing.T) {
	ctx := context.Background()

	var createdUser *model.User
	var createdSession *model.Session

	exchanger := &mockExchanger{
		exchangeFn: func(ctx context.Context, sessionID string) (*IdentityData, error) {
			return &IdentityData{
				Email:        "test@example.com",
				Name:         "Test User",
				Picture:      "https://example.com/p.png",
				SessionToken: "tok_abc123",
			}, nil
		},
	}

	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, user *model.User) error {
			createdUser = user
			return nil
		},
	}

	sessionRepo := &mockSessionRepo{
		createFn: func(ctx context.Context, session *model.Session) error {
			createdSession = session
			return nil
		},
	}

	svc := NewService(exchanger, userRepo, sessionRepo, nil)

	user, token, err := svc.EstablishSession(ctx, "ext-session-1")
	if err != nil {
		t.Fatalf("EstablishSession() error = %v", err)
	}

	if token != "tok_abc123" {
		t.Errorf("token = %q, want %q", token, "tok_abc123")
	}

	// ユーザーが作成されること
	if createdUser == nil {
		t.Fatal("expected user to be created")
	}
	if createdUser.Email != "test@example.com" {
		t.Errorf("user email = %q, want %q", createdUser.Email, "test@example.com")
	}
	if !strings.HasPrefix(createdUser.ID, "user_") {
		t.Errorf("user ID = %q, want user_ prefix", createdUser.ID)
	}
	if len(createdUser.ID) != len("user_")+12 {
		t.Errorf("user ID = %q, want 12 hex chars after prefix", createdUser.ID)
	}
	if user.ID != createdUser.ID {
		t.Errorf("returned user ID = %q, want %q", user.ID, createdUser.ID)
	}

	// セッションが7日の有効期間で作成されること
	if createdSession == nil {
		t.Fatal("expected session to be created")
	}
	if createdSession.Token != "tok_abc123" {
		t.Errorf("session token = %q, want %q", createdSession.Token, "tok_abc123")
	}
	if createdSession.UserID != createdUser.ID {
		t.Errorf("session userID = %q, want %q", createdSession.UserID, createdUser.ID)
	}
	wantExpiry := time.Now().UTC().Add(SessionTTL)
	if createdSession.ExpiresAt.Before(wantExpiry.Add(-time.Minute)) ||
		createdSession.ExpiresAt.After(wantExpiry.Add(time.Minute)) {
		t.Errorf("session expiresAt = %v, want around %v", createdSession.ExpiresAt, wantExpiry)
	}
}

func TestEstablishSession_ExistingUser_UpdatesProfileKeepsID(t *testing.T) {
	ctx := context.Background()

	var updatedName, updatedPicture string

	exchanger := &mockExchanger{
		exchangeFn: func(ctx context.Context, sessionID string) (*IdentityData, error) {
			return &IdentityData{
				Email:        "known@example.com",
				Name:         "New Name",
				Picture:      "https://example.com/new.png",
				SessionToken: "tok_xyz",
			}, nil
		},
	}

	userRepo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				ID:      "user_aaaabbbbcccc",
				Email:   "known@example.com",
				Name:    "Old Name",
				Picture: "https://example.com/old.png",
			}, nil
		},
		updateProfileFn: func(ctx context.Context, email, name, picture string) error {
			updatedName = name
			updatedPicture = picture
			return nil
		},
		createFn: func(ctx context.Context, user *model.User) error {
			t.Fatal("Create should not be called for existing user")
			return nil
		},
	}

	svc := NewService(exchanger, userRepo, &mockSessionRepo{}, nil)

	user, _, err := svc.EstablishSession(ctx, "ext-session-2")
	if err != nil {
		t.Fatalf("EstablishSession() error = %v", err)
	}

	// 既存IDが維持されること
	if user.ID != "user_aaaabbbbcccc" {
		t.Errorf("user ID = %q, want %q", user.ID, "user_aaaabbbbcccc")
	}
	// last-login-winsでプロフィールが上書きされること
	if updatedName != "New Name" {
		t.Errorf("updated name = %q, want %q", updatedName, "New Name")
	}
	if updatedPicture != "https://example.com/new.png" {
		t.Errorf("updated picture = %q, want %q", updatedPicture, "https://example.com/new.png")
	}
	if user.Name != "New Name" {
		t.Errorf("returned user name = %q, want %q", user.Name, "New Name")
	}
}

func TestEstablishSession_ExchangeRejected_ReturnsAuthenticationFailed(t *testing.T) {
	exchanger := &mockExchanger{
		exchangeFn: func(ctx context.Context, sessionID string) (*IdentityData, error) {
			return nil, errors.New("exchange returned status 401")
		},
	}

	svc := NewService(exchanger, &mockUserRepo{}, &mockSessionRepo{}, nil)

	_, _, err := svc.EstablishSession(context.Background(), "bad-session")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeAuthenticationFailed {
		t.Errorf("error code = %q, want %q", apiErr.Code, model.ErrCodeAuthenticationFailed)
	}
	if apiErr.Message != "Invalid session" {
		t.Errorf("error message = %q, want %q", apiErr.Message, "Invalid session")
	}
}

func TestResolveSession_ValidToken_ReturnsUser(t *testing.T) {
	sessionRepo := &mockSessionRepo{
		findByTokenFn: func(ctx context.Context, token string) (*model.Session, error) {
			return &model.Session{
				Token:     token,
				UserID:    "user_123456789abc",
				ExpiresAt: time.Now().UTC().Add(time.Hour),
			}, nil
		},
	}
	userRepo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*model.User, error) {
			return &model.User{ID: id, Email: "u@example.com"}, nil
		},
	}

	svc := NewService(&mockExchanger{}, userRepo, sessionRepo, nil)

	user, err := svc.ResolveSession(context.Background(), "tok_valid")
	if err != nil {
		t.Fatalf("ResolveSession() error = %v", err)
	}
	if user == nil {
		t.Fatal("expected non-nil user")
	}
	if user.ID != "user_123456789abc" {
		t.Errorf("user ID = %q, want %q", user.ID, "user_123456789abc")
	}
}

func TestResolveSession_EmptyToken_ReturnsNilWithoutLookup(t *testing.T) {
	sessionRepo := &mockSessionRepo{
		findByTokenFn: func(ctx context.Context, token string) (*model.Session, error) {
			t.Fatal("FindByToken should not be called for empty token")
			return nil, nil
		},
	}

	svc := NewService(&mockExchanger{}, &mockUserRepo{}, sessionRepo, nil)

	user, err := svc.ResolveSession(context.Background(), "")
	if err != nil {
		t.Fatalf("ResolveSession() error = %v", err)
	}
	if user != nil {
		t.Errorf("expected nil user, got %+v", user)
	}
}

func TestResolveSession_UnknownToken_ReturnsNil(t *testing.T) {
	sessionRepo := &mockSessionRepo{
		findByTokenFn: func(ctx context.Context, token string) (*model.Session, error) {
			return nil, nil
		},
	}

	svc := NewService(&mockExchanger{}, &mockUserRepo{}, sessionRepo, nil)

	user, err := svc.ResolveSession(context.Background(), "tok_unknown")
	if err != nil {
		t.Fatalf("ResolveSession() error = %v", err)
	}
	if user != nil {
		t.Errorf("expected nil user, got %+v", user)
	}
}

func TestResolveSession_OrphanedSession_ReturnsNil(t *testing.T) {
	sessionRepo := &mockSessionRepo{
		findByTokenFn: func(ctx context.Context, token string) (*model.Session, error) {
			return &model.Session{Token: token, UserID: "user_gone"}, nil
		},
	}
	userRepo := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*model.User, error) {
			return nil, nil
		},
	}

	svc := NewService(&mockExchanger{}, userRepo, sessionRepo, nil)

	user, err := svc.ResolveSession(context.Background(), "tok_orphan")
	if err != nil {
		t.Fatalf("ResolveSession() error = %v", err)
	}
	if user != nil {
		t.Errorf("expected nil user for orphaned session, got %+v", user)
	}
}

func TestEndSession_DeletesMatchingSessions(t *testing.T) {
	var deletedToken string
	sessionRepo := &mockSessionRepo{
		deleteByTokenFn: func(ctx context.Context, token string) error {
			deletedToken = token
			return nil
		},
	}

	svc := NewService(&mockExchanger{}, &mockUserRepo{}, sessionRepo, nil)

	if err := svc.EndSession(context.Background(), "tok_bye"); err != nil {
		t.Fatalf("EndSession() error = %v", err)
	}
	if deletedToken != "tok_bye" {
		t.Errorf("deleted token = %q, want %q", deletedToken, "tok_bye")
	}
}

func TestEndSession_EmptyToken_NoOp(t *testing.T) {
	sessionRepo := &mockSessionRepo{
		deleteByTokenFn: func(ctx context.Context, token string) error {
			t.Fatal("DeleteByToken should not be called for empty token")
			return nil
		},
	}

	svc := NewService(&mockExchanger{}, &mockUserRepo{}, sessionRepo, nil)

	if err := svc.EndSession(context.Background(), ""); err != nil {
		t.Fatalf("EndSession() error = %v", err)
	}
}

func TestNewUserID_Format(t *testing.T) {
	id := newUserID()
	if !strings.HasPrefix(id, "user_") {
		t.Errorf("id = %q, want user_ prefix", id)
	}
	suffix := strings.TrimPrefix(id, "user_")
	if len(suffix) != 12 {
		t.Errorf("suffix length = %d, want 12", len(suffix))
	}
	for _, r := range suffix {
		if !strings.ContainsRune("0123456789abcdef", r) {
			t.Errorf("suffix contains non-hex rune %q", r)
		}
	}
}
