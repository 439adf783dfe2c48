package http

import (
	"gorm.io/gorm"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/cache"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/catalogapi"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/config"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/repository"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

// repositories holds the repositories and catalogs used by the use cases.
// Catalog reads go through the Redis read-through cache.
type repositories struct {
	sectionRepo  procurement.AdditionalSectionRepository
	typeCatalog  procurement.TypeCatalog
	billingTypes procurement.BillingTypeCatalog
}

func newRepositories(db *gorm.DB, catalogCache cache.CatalogCache, cfg *config.Config, log logger.Interface) *repositories {
	var typeSource procurement.TypeCatalog
	if cfg.Catalog.UsesRemote() {
		log.Infow("purchase types served by remote catalog", "base_url", cfg.Catalog.RemoteBaseURL)
		typeSource = catalogapi.NewClient(cfg.Catalog.RemoteBaseURL, cfg.Catalog.RemoteTimeout(), log)
	} else {
		typeSource = repository.NewPurchaseTypeCatalogRepository(db, log)
	}

	return &repositories{
		sectionRepo:  repository.NewAdditionalSectionRepository(db, log),
		typeCatalog:  cache.NewCachedTypeCatalog(typeSource, catalogCache, log),
		billingTypes: cache.NewCachedBillingTypeCatalog(repository.NewBillingTypeCatalogRepository(db, log), catalogCache, log),
	}
}
