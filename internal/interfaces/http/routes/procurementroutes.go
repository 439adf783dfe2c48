package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/interfaces/http/handlers/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/interfaces/http/middleware"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/constants"
)

// ProcurementRouteConfig holds dependencies for additional section routes.
type ProcurementRouteConfig struct {
	Handler     *procurement.Handler
	RateLimiter *middleware.RateLimiter
}

// SetupProcurementRoutes configures additional section routes.
func SetupProcurementRoutes(engine *gin.Engine, cfg *ProcurementRouteConfig) {
	v1 := engine.Group(constants.APIVersionPrefix)

	sections := v1.Group("/additional-sections")
	{
		sections.GET("/variant", cfg.Handler.GetVariant)
		sections.GET("/resolve", cfg.Handler.ResolveSection)
		sections.GET("/revision-editable", cfg.Handler.RevisionEditable)
		sections.POST("/end-period", cfg.Handler.ComputeEndPeriod)
		sections.POST("/validate", cfg.Handler.ValidateSection)
	}

	v1.GET("/billing-types", cfg.Handler.ListBillingTypes)

	purchaseRequests := v1.Group("/purchase-requests/:id/additional-section")
	{
		purchaseRequests.GET("", cfg.Handler.GetSection)

		writes := purchaseRequests.Group("")
		if cfg.RateLimiter != nil {
			writes.Use(cfg.RateLimiter.Limit())
		}
		writes.PUT("", cfg.Handler.SaveSection)
		writes.POST("/approve", cfg.Handler.ApproveSection)
		writes.POST("/revise", cfg.Handler.ReviseSection)
	}
}
