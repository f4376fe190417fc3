package handler

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v3"

	"techconnect/internal/delivery/http/dto"
	"techconnect/internal/delivery/http/middleware"
	"techconnect/internal/domain/account"
	"techconnect/internal/pkg/response"
	"techconnect/internal/session"
	ucauth "techconnect/internal/usecase/auth"
)

type AuthHandler struct {
	uc       ucauth.AuthUsecase
	accounts account.Repository
}

type registerRequest struct {
	Email         string `json:"email"`
	Secret        string `json:"secret"`
	ConfirmSecret string `json:"confirm_secret"`
	Kind          string `json:"kind"`
}

type loginRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

func NewAuthHandler(uc ucauth.AuthUsecase, accounts account.Repository) *AuthHandler {
	return &AuthHandler{uc: uc, accounts: accounts}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router, authMw *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Post("/refresh", h.Refresh)
	r.Get("/session", h.Session, authMw.Middleware())
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	// Form-level checks stay here; they never reach the session store.
	if utf8.RuneCountInString(strings.TrimSpace(req.Secret)) < session.MinSecretLength {
		return middleware.NewAppError(fiber.StatusBadRequest, "Secret must be at least 6 characters", nil, nil)
	}
	if len(req.Secret) > session.MaxSecretLength {
		return middleware.NewAppError(fiber.StatusBadRequest, "Secret is too long", nil, nil)
	}
	if req.Secret != req.ConfirmSecret {
		return middleware.NewAppError(fiber.StatusBadRequest, "Secrets do not match", nil, nil)
	}
	if strings.TrimSpace(req.Kind) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Account kind is required", nil, nil)
	}

	acc, access, refresh, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Email:  req.Email,
		Secret: req.Secret,
		Kind:   req.Kind,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	data := map[string]any{
		"account":       dto.NewAccountResponse(acc),
		"access_token":  access,
		"refresh_token": refresh,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	acc, access, refresh, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Secret: req.Secret})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	data := map[string]any{
		"account":       dto.NewAccountResponse(acc),
		"access_token":  access,
		"refresh_token": refresh,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if err := h.uc.Logout(c.Context()); err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	tok, ok := bearerFromAuthorizationHeader(c.Get("Authorization"))
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	access, refresh, err := h.uc.Refresh(c.Context(), tok)
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	data := map[string]any{
		"access_token":  access,
		"refresh_token": refresh,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

// Session returns the authenticated viewer's account, re-validated
// against the live registry.
func (h *AuthHandler) Session(c fiber.Ctx) error {
	viewer := viewerFromCtx(c, h.accounts)
	if viewer == nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAccountResponse(*viewer))
}

func bearerFromAuthorizationHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	if tok == "" {
		return "", false
	}
	return tok, true
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered, sign in instead", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Wrong credentials", nil, err)
	case errors.Is(err, ucauth.ErrMissingAccountKind):
		return middleware.NewAppError(fiber.StatusBadRequest, "Account kind is required", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, ucauth.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
	case errors.Is(err, ucauth.ErrInvalidRefreshToken):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
