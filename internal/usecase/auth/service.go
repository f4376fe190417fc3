package auth

import (
	"context"
	"errors"

	"techconnect/internal/domain/account"
	"techconnect/internal/pkg/jwt"
	"techconnect/internal/session"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrMissingAccountKind     = errors.New("missing account kind")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email  string
	Secret string
	Kind   string
}

type LoginInput struct {
	Email  string
	Secret string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (account.Account, string, string, error)
	Login(ctx context.Context, in LoginInput) (account.Account, string, string, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

// Service fronts the session store for the HTTP layer: it parses the
// requested account kind, delegates credential work to the store and
// issues the token pair for subsequent requests.
type Service struct {
	sessions *session.Store
	accounts account.Repository
	tokens   jwt.Service
}

func NewService(sessions *session.Store, accounts account.Repository, tokens jwt.Service) *Service {
	return &Service{sessions: sessions, accounts: accounts, tokens: tokens}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (account.Account, string, string, error) {
	kind, ok := account.ParseKind(in.Kind)
	if !ok {
		return account.Account{}, "", "", ErrMissingAccountKind
	}

	a, err := s.sessions.SignUp(ctx, in.Email, in.Secret, kind)
	if err != nil {
		return account.Account{}, "", "", mapSessionError(err)
	}

	access, refresh, err := s.issueTokens(a)
	if err != nil {
		return account.Account{}, "", "", ErrInternal
	}
	return sanitize(a), access, refresh, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (account.Account, string, string, error) {
	a, err := s.sessions.SignIn(ctx, in.Email, in.Secret)
	if err != nil {
		return account.Account{}, "", "", mapSessionError(err)
	}

	access, refresh, err := s.issueTokens(a)
	if err != nil {
		return account.Account{}, "", "", ErrInternal
	}
	return sanitize(a), access, refresh, nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.SignOut(ctx); err != nil {
		return ErrInternal
	}
	return nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !s.tokens.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	a, err := s.accounts.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", ErrInternal
	}

	return s.issueTokens(a)
}

func (s *Service) issueTokens(a account.Account) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(a)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := s.tokens.GenerateRefreshToken(a.ID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func mapSessionError(err error) error {
	switch {
	case errors.Is(err, session.ErrEmailAlreadyRegistered):
		return ErrEmailAlreadyRegistered
	case errors.Is(err, session.ErrInvalidCredentials):
		return ErrInvalidCredentials
	case errors.Is(err, session.ErrInvalidInput):
		return ErrInvalidInput
	default:
		return ErrInternal
	}
}

func sanitize(a account.Account) account.Account {
	a.SecretHash = ""
	return a
}
