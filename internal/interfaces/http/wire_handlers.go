package http

import (
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/interfaces/http/handlers"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/interfaces/http/handlers/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

type allHandlers struct {
	healthHandler      *handlers.HealthHandler
	procurementHandler *procurement.Handler
}

func newHandlers(c *Container, log logger.Interface) *allHandlers {
	ucs := c.ucs
	return &allHandlers{
		healthHandler: handlers.NewHealthHandler(c.db, c.redis),
		procurementHandler: procurement.NewHandler(
			ucs.resolver,
			ucs.resolveSection,
			ucs.computeEndPeriod,
			ucs.validateSection,
			ucs.listBillingTypes,
			ucs.getSection,
			ucs.saveSection,
			ucs.approveSection,
			ucs.returnForRevision,
			log.Named("procurement_handler"),
		),
	}
}
