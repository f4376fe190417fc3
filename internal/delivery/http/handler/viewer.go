package handler

import (
	"github.com/gofiber/fiber/v3"

	"techconnect/internal/delivery/http/middleware"
	"techconnect/internal/domain/account"
)

// viewerFromCtx resolves the current viewer from the auth claims, looked
// up against the live registry. A missing token, an invalid one, or a
// stale account all yield a nil (anonymous) viewer.
func viewerFromCtx(c fiber.Ctx, accounts account.Repository) *account.Account {
	claims, ok := middleware.ClaimsFromCtx(c)
	if !ok {
		return nil
	}
	a, err := accounts.FindByID(c.Context(), claims.AccountID)
	if err != nil {
		return nil
	}
	return &a
}
