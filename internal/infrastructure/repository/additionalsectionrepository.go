package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/persistence/mappers"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/persistence/models"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/biztime"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/db"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

type AdditionalSectionRepository struct {
	db     *gorm.DB
	mapper mappers.AdditionalSectionMapper
	logger logger.Interface
}

func NewAdditionalSectionRepository(db *gorm.DB, logger logger.Interface) *AdditionalSectionRepository {
	return &AdditionalSectionRepository{
		db:     db,
		mapper: mappers.NewAdditionalSectionMapper(),
		logger: logger,
	}
}

func (r *AdditionalSectionRepository) Create(ctx context.Context, section *procurement.AdditionalSection) error {
	model := r.mapper.ToModel(section)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create additional section: %w", err)
	}

	if err := section.SetID(model.ID); err != nil {
		return err
	}
	section.MarkPersisted()
	return nil
}

// GetByPurchaseRequestID loads a section and re-derives its end period. A
// stored value that disagrees with the derivation is logged and replaced in
// the returned aggregate.
func (r *AdditionalSectionRepository) GetByPurchaseRequestID(ctx context.Context, purchaseRequestID string) (*procurement.AdditionalSection, error) {
	var model models.AdditionalSectionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("purchase_request_id = ?", purchaseRequestID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("additional section for %s: %w", purchaseRequestID, procurement.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get additional section: %w", err)
	}

	section, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	stored := section.EndPeriod()
	if section.Reconcile() {
		r.logger.Warnw("stored end period differs from derived value",
			"purchase_request_id", purchaseRequestID,
			"stored", formatOptionalDate(stored),
			"derived", formatOptionalDate(section.EndPeriod()),
		)
	}

	return section, nil
}

// Update writes every column so that cleared fields become NULL. The row must
// still carry the version the section was loaded with.
func (r *AdditionalSectionRepository) Update(ctx context.Context, section *procurement.AdditionalSection) error {
	model := r.mapper.ToModel(section)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.AdditionalSectionModel{}).
		Where("id = ? AND version = ?", model.ID, section.PersistedVersion()).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update additional section: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.AdditionalSectionModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check additional section: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("additional section %d: %w", model.ID, procurement.ErrNotFound)
		}
		r.logger.Warnw("stale additional section update rejected",
			"id", model.ID,
			"expected_version", section.PersistedVersion(),
		)
		return fmt.Errorf("additional section %d: %w", model.ID, procurement.ErrVersionConflict)
	}

	section.MarkPersisted()
	return nil
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return "<none>"
	}
	return biztime.FormatDate(*t)
}
