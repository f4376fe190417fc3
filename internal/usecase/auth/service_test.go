package auth

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"techconnect/internal/domain/account"
	"techconnect/internal/infrastructure/memory"
	"techconnect/internal/pkg/jwt"
	"techconnect/internal/session"
)

type mapStorage struct {
	items map[string][]byte
}

func (m *mapStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, ok := m.items[key]
	return raw, ok, nil
}

func (m *mapStorage) Set(_ context.Context, key string, value []byte) error {
	m.items[key] = value
	return nil
}

func (m *mapStorage) Delete(_ context.Context, key string) error {
	delete(m.items, key)
	return nil
}

func newTestService(t *testing.T) (*Service, *memory.AccountRepository, jwt.Service) {
	t.Helper()

	repo := memory.NewAccountRepository(nil)
	logger := log.New(os.Stderr, "", 0)
	sessions := session.NewStore(repo, &mapStorage{items: map[string][]byte{}}, logger)
	tokens := jwt.NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	return NewService(sessions, repo, tokens), repo, tokens
}

func TestRegister_IssuesTokenPair(t *testing.T) {
	svc, _, tokens := newTestService(t)

	a, access, refresh, err := svc.Register(context.Background(), RegisterInput{
		Email:  "dev@exemplo.com",
		Secret: "secret1",
		Kind:   "professional",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.SecretHash != "" {
		t.Fatalf("secret hash must not leave the usecase")
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens to be issued")
	}

	claims, err := tokens.ValidateToken(access)
	if err != nil {
		t.Fatalf("access token does not validate: %v", err)
	}
	if claims.AccountID != a.ID || claims.AccountKind != account.KindProfessional {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegister_MissingKind(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, _, err := svc.Register(context.Background(), RegisterInput{
		Email:  "dev@exemplo.com",
		Secret: "secret1",
	})
	if !errors.Is(err, ErrMissingAccountKind) {
		t.Fatalf("expected ErrMissingAccountKind, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	in := RegisterInput{Email: "dev@exemplo.com", Secret: "secret1", Kind: "company"}
	if _, _, _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, _, err := svc.Register(ctx, in)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
	if repo.Len() != 1 {
		t.Fatalf("duplicate signup must not grow the registry")
	}
}

func TestLogin_WrongCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, _, _, err := svc.Register(ctx, RegisterInput{Email: "dev@exemplo.com", Secret: "secret1", Kind: "professional"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, _, err := svc.Login(ctx, LoginInput{Email: "dev@exemplo.com", Secret: "nope"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_Succeeds(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, _, _, err := svc.Register(ctx, RegisterInput{Email: "dev@exemplo.com", Secret: "secret1", Kind: "professional"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, access, refresh, err := svc.Login(ctx, LoginInput{Email: "dev@exemplo.com", Secret: "secret1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID != created.ID || access == "" || refresh == "" {
		t.Fatalf("unexpected login result")
	}
}

func TestRefresh_ReissuesFromRefreshToken(t *testing.T) {
	svc, _, tokens := newTestService(t)
	ctx := context.Background()

	a, _, refresh, err := svc.Register(ctx, RegisterInput{Email: "dev@exemplo.com", Secret: "secret1", Kind: "company"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	access, newRefresh, err := svc.Refresh(ctx, refresh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := tokens.ValidateToken(access)
	if err != nil {
		t.Fatalf("reissued access token does not validate: %v", err)
	}
	if claims.AccountID != a.ID {
		t.Fatalf("expected the same account in the reissued token")
	}
	if newRefresh == "" {
		t.Fatalf("expected a new refresh token")
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, access, _, err := svc.Register(ctx, RegisterInput{Email: "dev@exemplo.com", Secret: "secret1", Kind: "company"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := svc.Refresh(ctx, access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRefresh_UnknownAccount(t *testing.T) {
	svc, _, tokens := newTestService(t)

	refresh, err := tokens.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := svc.Refresh(context.Background(), refresh); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, _, _, err := svc.Register(ctx, RegisterInput{Email: "dev@exemplo.com", Secret: "secret1", Kind: "professional"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("repeated logout should be a no-op, got %v", err)
	}
}
