package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"techconnect/internal/delivery/http/dto"
	"techconnect/internal/delivery/http/middleware"
	"techconnect/internal/domain"
	"techconnect/internal/domain/account"
	"techconnect/internal/domain/profile"
	"techconnect/internal/pkg/response"
	"techconnect/internal/search"
	"techconnect/internal/usecase"
)

type ProfessionalsHandler struct {
	uc       usecase.ProfessionalUsecase
	accounts account.Repository
}

func NewProfessionalsHandler(uc usecase.ProfessionalUsecase, accounts account.Repository) *ProfessionalsHandler {
	return &ProfessionalsHandler{uc: uc, accounts: accounts}
}

func (h *ProfessionalsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/filters", h.FilterOptions)
	r.Get("/:id", h.Detail)
}

func (h *ProfessionalsHandler) List(c fiber.Ctx) error {
	criteria, err := profileCriteriaFromQuery(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListProfessionals(c.Context(), criteria)
	if err != nil {
		return mapSearchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfessionalListResponse(items))
}

func (h *ProfessionalsHandler) Detail(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Professional not found", notFoundData("/professionals"), err)
	}

	viewer := viewerFromCtx(c, h.accounts)
	view, err := h.uc.GetProfessional(c.Context(), id, viewer)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Professional not found", notFoundData("/professionals"), err)
		}
		return mapSearchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfessionalDetailResponse(view))
}

func (h *ProfessionalsHandler) FilterOptions(c fiber.Ctx) error {
	opts, err := h.uc.FilterOptions(c.Context())
	if err != nil {
		return mapSearchUsecaseError(err)
	}

	out := dto.ProfessionalFilterOptionsResponse{
		Skills:         opts.Skills,
		Levels:         enumStrings(opts.Levels),
		Availabilities: enumStrings(opts.Availabilities),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func profileCriteriaFromQuery(c fiber.Ctx) (search.ProfileCriteria, error) {
	criteria := search.ProfileCriteria{
		Text:   c.Query("q"),
		Skills: parseSkillsQuery(c.Query("skills")),
	}

	level, ok := domain.ParseLevel(c.Query("level"))
	if !ok {
		return search.ProfileCriteria{}, middleware.NewAppError(fiber.StatusBadRequest, "Unknown level", nil, nil)
	}
	criteria.Level = level

	availability, ok := profile.ParseAvailability(c.Query("availability"))
	if !ok {
		return search.ProfileCriteria{}, middleware.NewAppError(fiber.StatusBadRequest, "Unknown availability", nil, nil)
	}
	criteria.Availability = availability

	return criteria, nil
}
