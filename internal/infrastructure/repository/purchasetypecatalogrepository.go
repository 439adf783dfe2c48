package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/persistence/mappers"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/persistence/models"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/db"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/utils"
)

// PurchaseTypeCatalogRepository resolves purchase type tokens against the
// local catalog tables.
type PurchaseTypeCatalogRepository struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
	logger logger.Interface
}

func NewPurchaseTypeCatalogRepository(db *gorm.DB, logger logger.Interface) *PurchaseTypeCatalogRepository {
	return &PurchaseTypeCatalogRepository{
		db:     db,
		mapper: mappers.NewCatalogMapper(),
		logger: logger,
	}
}

func (r *PurchaseTypeCatalogRepository) ResolveType(ctx context.Context, token string) (*procurement.PurchaseTypeRef, error) {
	var model models.PurchaseTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.PurchaseTypeModel{})
	if id, ok := parseID(token); ok {
		query = query.Where("id = ?", id)
	} else {
		query = query.Where("label_key = ?", utils.FoldKey(token))
	}

	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("purchase type %q: %w", token, procurement.ErrNotFound)
		}
		r.logger.Errorw("failed to query purchase type", "token", token, "error", err)
		return nil, fmt.Errorf("failed to query purchase type: %w", err)
	}

	return r.mapper.PurchaseTypeToDomain(&model)
}

func (r *PurchaseTypeCatalogRepository) ResolveSubType(ctx context.Context, typeID int, token string) (*procurement.PurchaseSubTypeRef, error) {
	var model models.PurchaseSubTypeModel
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.PurchaseSubTypeModel{}).Where("purchase_type_id = ?", typeID)
	if id, ok := parseID(token); ok {
		query = query.Where("sub_type_id = ?", id)
	} else {
		query = query.Where("label_key = ?", utils.FoldKey(token))
	}

	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("purchase sub-type %q of type %d: %w", token, typeID, procurement.ErrNotFound)
		}
		r.logger.Errorw("failed to query purchase sub-type", "type_id", typeID, "token", token, "error", err)
		return nil, fmt.Errorf("failed to query purchase sub-type: %w", err)
	}

	return r.mapper.PurchaseSubTypeToDomain(&model)
}

// parseID reports whether token is a positive numeric identifier.
func parseID(token string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(token), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
