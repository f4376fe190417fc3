package app

import (
	"context"
	"log"
	"os"
	"time"

	"techconnect/internal/config"
	"techconnect/internal/database"
	dbpostgres "techconnect/internal/database/postgres"
	"techconnect/internal/domain/account"
	"techconnect/internal/domain/listing"
	"techconnect/internal/domain/profile"
	"techconnect/internal/infrastructure/cache"
	"techconnect/internal/infrastructure/localstore"
	"techconnect/internal/infrastructure/memory"
	pgrepo "techconnect/internal/infrastructure/persistence/postgres"
	"techconnect/internal/pkg/jwt"
	"techconnect/internal/seed"
	"techconnect/internal/session"
	"techconnect/internal/usecase"
	ucauth "techconnect/internal/usecase/auth"
)

// Container wires every dependency once at startup. The account registry
// is Postgres-backed when a database is configured and an in-memory
// seeded registry otherwise; profiles and listings are always the
// compiled-in collections of the mock-data design.
type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB

	Accounts account.Repository
	Profiles profile.Repository
	Listings listing.Repository

	Sessions *session.Store
	JWT      jwt.Service

	AuthUC         ucauth.AuthUsecase
	ProfessionalUC usecase.ProfessionalUsecase
	OpportunityUC  usecase.OpportunityUsecase
	DashboardUC    usecase.DashboardUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	now := time.Now().UTC()

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Profiles: memory.NewProfileRepository(seed.Profiles()),
		Listings: memory.NewListingRepository(seed.Listings(now)),
	}

	if cfg.Database.Configured() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		c.DB = db

		repo := pgrepo.NewAccountRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		c.Accounts = repo
		logger.Printf("[App] account registry: postgres (%s)", cfg.Database.Host)
	} else {
		accounts, err := seed.Accounts(now)
		if err != nil {
			return nil, err
		}
		c.Accounts = memory.NewAccountRepository(accounts)
		logger.Printf("[App] account registry: in-memory seed (%d accounts)", len(accounts))
	}

	storage := localstore.NewFileStorage(cfg.Session.FilePath)
	c.Sessions = session.NewStore(c.Accounts, storage, logger)

	c.JWT = jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	searchCache := cache.NewRedis(logger)

	c.AuthUC = ucauth.NewService(c.Sessions, c.Accounts, c.JWT)
	c.ProfessionalUC = usecase.NewProfessionalUsecase(c.Profiles, searchCache, logger)
	c.OpportunityUC = usecase.NewOpportunityUsecase(c.Listings, searchCache, logger)
	c.DashboardUC = usecase.NewDashboardUsecase(c.Profiles, c.Listings)

	return c, nil
}

// RestoreSession reinstates the previously persisted session, if any.
func (c *Container) RestoreSession(ctx context.Context) {
	a, restored, err := c.Sessions.Restore(ctx)
	if err != nil {
		c.Logger.Printf("[Session] restore failed: %v", err)
		return
	}
	if restored {
		c.Logger.Printf("[Session] restored session for %s (%s)", a.Email, a.Kind)
	}
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
