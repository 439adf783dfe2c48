package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/persistence/mappers"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/persistence/models"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/db"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

type BillingTypeCatalogRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
	logger logger.Interface
}

func NewBillingTypeCatalogRepository(db *gorm.DB, logger logger.Interface) *BillingTypeCatalogRepository {
	return &BillingTypeCatalogRepository{
		db:     db,
		mapper: mappers.NewCatalogMapper(),
		logger: logger,
	}
}

func (r *BillingTypeCatalogRepository) Get(ctx context.Context, id int) (*procurement.BillingType, error) {
	if id <= 0 {
		return nil, fmt.Errorf("billing type %d: %w", id, procurement.ErrNotFound)
	}

	var model models.BillingTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("billing type %d: %w", id, procurement.ErrNotFound)
		}
		r.logger.Errorw("failed to query billing type", "billing_type_id", id, "error", err)
		return nil, fmt.Errorf("failed to query billing type: %w", err)
	}

	return r.mapper.BillingTypeToDomain(&model)
}

// List returns billing types in display order.
func (r *BillingTypeCatalogRepository) List(ctx context.Context) ([]*procurement.BillingType, error) {
	var rows []models.BillingTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("sort_order ASC, id ASC").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list billing types", "error", err)
		return nil, fmt.Errorf("failed to list billing types: %w", err)
	}

	return r.mapper.BillingTypesToDomain(rows)
}
