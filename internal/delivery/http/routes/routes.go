package routes

import (
	"github.com/gofiber/fiber/v3"

	"techconnect/internal/delivery/http/handler"
	"techconnect/internal/delivery/http/middleware"
	"techconnect/internal/domain/account"
	"techconnect/internal/pkg/jwt"
	"techconnect/internal/usecase"
	ucauth "techconnect/internal/usecase/auth"
)

func Register(
	f *fiber.App,
	accounts account.Repository,
	jwtSvc jwt.Service,
	authUC ucauth.AuthUsecase,
	professionalUC usecase.ProfessionalUsecase,
	opportunityUC usecase.OpportunityUsecase,
	dashboardUC usecase.DashboardUsecase,
) {
	if f == nil {
		return
	}

	healthHandler := handler.NewHealthHandler()
	f.Get("/health", healthHandler.Health)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	authHandler := handler.NewAuthHandler(authUC, accounts)
	professionalsHandler := handler.NewProfessionalsHandler(professionalUC, accounts)
	opportunitiesHandler := handler.NewOpportunitiesHandler(opportunityUC, accounts)
	dashboardHandler := handler.NewDashboardHandler(dashboardUC, accounts)

	v1 := f.Group("/api/v1")

	authHandler.RegisterRoutes(v1.Group("/auth"), authMw)

	// Listing and detail pages are public; the optional middleware only
	// identifies the viewer so the visibility gate can do its job.
	professionalsHandler.RegisterRoutes(v1.Group("/professionals", authMw.OptionalMiddleware()))
	opportunitiesHandler.RegisterRoutes(v1.Group("/opportunities", authMw.OptionalMiddleware()))

	dashboardHandler.RegisterRoutes(v1.Group("/dashboard", authMw.Middleware()))
}
