package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/config"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/interfaces/http/middleware"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/interfaces/http/routes"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	return &Router{Container: NewContainer(ctx, db, cfg, log)}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log.Named("http")))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/version", r.hdlrs.healthHandler.Version)

	routes.SetupProcurementRoutes(r.engine, &routes.ProcurementRouteConfig{
		Handler:     r.hdlrs.procurementHandler,
		RateLimiter: r.rateLimiter,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
