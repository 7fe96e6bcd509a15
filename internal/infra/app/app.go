package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/micahgtan/to-do-list/internal/core/port"
	"github.com/micahgtan/to-do-list/internal/infra/config"
	"github.com/micahgtan/to-do-list/internal/infra/database"
	"github.com/micahgtan/to-do-list/internal/infra/logger"
	"github.com/micahgtan/to-do-list/internal/infra/security"
	postgresrepo "github.com/micahgtan/to-do-list/internal/repository/postgres"
	"github.com/micahgtan/to-do-list/internal/transport/http/handlers"
	"github.com/micahgtan/to-do-list/internal/transport/http/middleware"
	"github.com/micahgtan/to-do-list/internal/transport/http/routes"
	"github.com/micahgtan/to-do-list/internal/usecase"
	"github.com/micahgtan/to-do-list/internal/validation"
)

// Features groups the feature operations and store ports both transports
// share.
type Features struct {
	CreateAccount *usecase.CreateAccount
	UpdateAccount *usecase.UpdateAccount
	DeleteAccount *usecase.DeleteAccount
	CreateDuty    *usecase.CreateDuty
	UpdateDuty    *usecase.UpdateDuty
	DeleteDuty    *usecase.DeleteDuty
	CreateSession *usecase.CreateSession

	Accounts port.AccountRepository
	Duties   port.DutyRepository
}

// NewFeatures wires the feature operations with their dependencies by
// explicit constructor injection.
func NewFeatures(cfg *config.AppConfig, pool *pgxpool.Pool) Features {
	accounts := postgresrepo.NewAccountRepository(pool)
	duties := postgresrepo.NewDutyRepository(pool)

	schema := validation.New()
	hasher := security.NewBcryptHasher(cfg.Bcrypt.Cost)
	signer := security.NewJWTSigner(cfg.JWT.Secret)
	ids := security.NewUUIDGenerator()

	return Features{
		CreateAccount: usecase.NewCreateAccount(schema, accounts, hasher, ids),
		UpdateAccount: usecase.NewUpdateAccount(schema, accounts, hasher),
		DeleteAccount: usecase.NewDeleteAccount(schema, accounts),
		CreateDuty:    usecase.NewCreateDuty(schema, accounts, duties, ids),
		UpdateDuty:    usecase.NewUpdateDuty(schema, accounts, duties),
		DeleteDuty:    usecase.NewDeleteDuty(schema, accounts, duties),
		CreateSession: usecase.NewCreateSession(schema, accounts, signer, hasher, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL),

		Accounts: accounts,
		Duties:   duties,
	}
}

// Application owns the HTTP server lifecycle.
type Application struct {
	cfg    *config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	pool   *pgxpool.Pool
}

// New constructs the application: logger, database, migrations, features,
// and routes.
func New(ctx context.Context, cfg *config.AppConfig) (*Application, error) {
	log, err := logger.New(cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	pool, err := database.NewPostgresPool(ctx, cfg.Postgres, log)
	if err != nil {
		return nil, fmt.Errorf("init postgres: %w", err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	features := NewFeatures(cfg, pool)

	metrics, err := middleware.NewHTTPMetrics(nil)
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	engine := routes.Register(routes.Dependencies{
		Config:   cfg,
		Logger:   log,
		Metrics:  metrics,
		Accounts: handlers.NewAccountHandler(features.CreateAccount, features.UpdateAccount, features.DeleteAccount, features.Accounts),
		Duties:   handlers.NewDutyHandler(features.CreateDuty, features.UpdateDuty, features.DeleteDuty, features.Duties),
		Sessions: handlers.NewSessionHandler(features.CreateSession),
		Health:   handlers.NewHealthHandler(cfg.App.Greeting),
	})

	return &Application{
		cfg:    cfg,
		engine: engine,
		logger: log,
		pool:   pool,
	}, nil
}

// Run starts the HTTP server and blocks until the context is cancelled or
// the server fails.
func (a *Application) Run(ctx context.Context) error {
	defer a.pool.Close()

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.cfg.App.Host, a.cfg.App.Port),
		Handler:           a.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	a.logger.Info("starting API",
		zap.String("env", a.cfg.App.Env),
		zap.String("address", srv.Addr),
	)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- fmt.Errorf("run server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		return nil
	case err := <-serverErrCh:
		return err
	}
}
