package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"techconnect/internal/pkg/jwt"
)

const CtxClaimsKey = "auth_claims"

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware rejects requests without a valid access token.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, err := m.claimsFromRequest(c)
		if err != nil {
			return err
		}
		c.Locals(CtxClaimsKey, claims)
		return c.Next()
	}
}

// OptionalMiddleware resolves the viewer when a valid access token is
// present and lets the request through anonymously otherwise. Listing
// and detail pages are public; only contact disclosure depends on who is
// asking, and the visibility gate handles a nil viewer.
func (m *AuthMiddleware) OptionalMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if ok {
			claims, err := m.jwt.ValidateToken(token)
			if err == nil && claims.TokenType == jwt.TokenTypeAccess {
				c.Locals(CtxClaimsKey, claims)
			}
		}
		return c.Next()
	}
}

func (m *AuthMiddleware) claimsFromRequest(c fiber.Ctx) (jwt.Claims, error) {
	token, ok := bearerTokenFromHeader(c.Get("Authorization"))
	if !ok {
		return jwt.Claims{}, NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	claims, err := m.jwt.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return jwt.Claims{}, NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
		}
		return jwt.Claims{}, NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
	}
	if claims.TokenType != jwt.TokenTypeAccess || m.jwt.IsRefreshToken(claims) {
		return jwt.Claims{}, NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
	}
	return claims, nil
}

// ClaimsFromCtx returns the claims stored by the auth middleware, if any.
func ClaimsFromCtx(c fiber.Ctx) (jwt.Claims, bool) {
	claims, ok := c.Locals(CtxClaimsKey).(jwt.Claims)
	return claims, ok
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
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

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
