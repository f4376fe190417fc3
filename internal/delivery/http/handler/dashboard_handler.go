package handler

import (
	"github.com/gofiber/fiber/v3"

	"techconnect/internal/delivery/http/dto"
	"techconnect/internal/delivery/http/middleware"
	"techconnect/internal/domain/account"
	"techconnect/internal/pkg/response"
	"techconnect/internal/usecase"
)

type DashboardHandler struct {
	uc       usecase.DashboardUsecase
	accounts account.Repository
}

func NewDashboardHandler(uc usecase.DashboardUsecase, accounts account.Repository) *DashboardHandler {
	return &DashboardHandler{uc: uc, accounts: accounts}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Overview)
}

func (h *DashboardHandler) Overview(c fiber.Ctx) error {
	viewer := viewerFromCtx(c, h.accounts)
	if viewer == nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	overview, err := h.uc.Overview(c.Context(), *viewer)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDashboardResponse(overview))
}
