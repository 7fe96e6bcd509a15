package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/micahgtan/to-do-list/internal/infra/config"
	"github.com/micahgtan/to-do-list/internal/transport/http/handlers"
	"github.com/micahgtan/to-do-list/internal/transport/http/middleware"
)

// Dependencies encapsulates the objects required to register routes.
type Dependencies struct {
	Config   *config.AppConfig
	Logger   *zap.Logger
	Metrics  *middleware.HTTPMetrics
	Accounts *handlers.AccountHandler
	Duties   *handlers.DutyHandler
	Sessions *handlers.SessionHandler
	Health   *handlers.HealthHandler
}

// Register configures the Gin engine with routes and middleware.
func Register(deps Dependencies) *gin.Engine {
	if deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Logger))
	r.Use(deps.Metrics.Handler())

	r.POST("/accounts", deps.Accounts.Create)
	r.GET("/accounts", deps.Accounts.List)
	r.PUT("/accounts/:id", deps.Accounts.Update)
	r.DELETE("/accounts/:id", deps.Accounts.Delete)

	r.POST("/duties", deps.Duties.Create)
	r.GET("/duties", deps.Duties.List)
	r.PUT("/duties/:id", deps.Duties.Update)
	r.DELETE("/duties/:id", deps.Duties.Delete)

	r.POST("/session", deps.Sessions.Create)

	r.GET("/", deps.Health.Greet)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
