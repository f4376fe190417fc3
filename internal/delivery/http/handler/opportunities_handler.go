package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"techconnect/internal/delivery/http/dto"
	"techconnect/internal/delivery/http/middleware"
	"techconnect/internal/domain"
	"techconnect/internal/domain/account"
	"techconnect/internal/domain/listing"
	"techconnect/internal/pkg/response"
	"techconnect/internal/search"
	"techconnect/internal/usecase"
)

type OpportunitiesHandler struct {
	uc       usecase.OpportunityUsecase
	accounts account.Repository
}

func NewOpportunitiesHandler(uc usecase.OpportunityUsecase, accounts account.Repository) *OpportunitiesHandler {
	return &OpportunitiesHandler{uc: uc, accounts: accounts}
}

func (h *OpportunitiesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/filters", h.FilterOptions)
	r.Get("/:id", h.Detail)
}

func (h *OpportunitiesHandler) List(c fiber.Ctx) error {
	criteria, err := listingCriteriaFromQuery(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListOpportunities(c.Context(), criteria)
	if err != nil {
		return mapSearchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewOpportunityListResponse(items))
}

func (h *OpportunitiesHandler) Detail(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Opportunity not found", notFoundData("/opportunities"), err)
	}

	viewer := viewerFromCtx(c, h.accounts)
	view, err := h.uc.GetOpportunity(c.Context(), id, viewer)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Opportunity not found", notFoundData("/opportunities"), err)
		}
		return mapSearchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewOpportunityDetailResponse(view))
}

func (h *OpportunitiesHandler) FilterOptions(c fiber.Ctx) error {
	opts, err := h.uc.FilterOptions(c.Context())
	if err != nil {
		return mapSearchUsecaseError(err)
	}

	out := dto.OpportunityFilterOptionsResponse{
		Skills:        opts.Skills,
		Levels:        enumStrings(opts.Levels),
		ContractKinds: enumStrings(opts.ContractKinds),
		WorkModes:     enumStrings(opts.WorkModes),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func listingCriteriaFromQuery(c fiber.Ctx) (search.ListingCriteria, error) {
	criteria := search.ListingCriteria{
		Text:   c.Query("q"),
		Skills: parseSkillsQuery(c.Query("skills")),
	}

	level, ok := domain.ParseLevel(c.Query("level"))
	if !ok {
		return search.ListingCriteria{}, middleware.NewAppError(fiber.StatusBadRequest, "Unknown level", nil, nil)
	}
	criteria.Level = level

	contract, ok := listing.ParseContractKind(c.Query("contract_kind"))
	if !ok {
		return search.ListingCriteria{}, middleware.NewAppError(fiber.StatusBadRequest, "Unknown contract kind", nil, nil)
	}
	criteria.ContractKind = contract

	workMode, ok := listing.ParseWorkMode(c.Query("work_mode"))
	if !ok {
		return search.ListingCriteria{}, middleware.NewAppError(fiber.StatusBadRequest, "Unknown work mode", nil, nil)
	}
	criteria.WorkMode = workMode

	return criteria, nil
}

func parseSkillsQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// notFoundData gives the client a navigation affordance back to the
// listing page, mirroring the original "not found" state.
func notFoundData(backPath string) map[string]any {
	return map[string]any{"back": backPath}
}

func enumStrings[T ~string](in []T) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		out = append(out, string(v))
	}
	return out
}

func mapSearchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
