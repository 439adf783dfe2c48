package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement/dto"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	vo "github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement/valueobjects"
	apperrors "github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/errors"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

// SaveAdditionalSectionCommand replaces the section's fields with Input.
// Fields the resolved variant does not carry are ignored.
type SaveAdditionalSectionCommand struct {
	PurchaseRequestID string
	TypeID            *int
	SubTypeID         *int
	Input             dto.SectionInput
}

type SaveAdditionalSectionUseCase struct {
	sectionRepo  procurement.AdditionalSectionRepository
	billingTypes procurement.BillingTypeCatalog
	resolver     SectionResolver
	sanitizer    TextSanitizer
	logger       logger.Interface
}

func NewSaveAdditionalSectionUseCase(
	sectionRepo procurement.AdditionalSectionRepository,
	billingTypes procurement.BillingTypeCatalog,
	resolver SectionResolver,
	sanitizer TextSanitizer,
	logger logger.Interface,
) *SaveAdditionalSectionUseCase {
	return &SaveAdditionalSectionUseCase{
		sectionRepo:  sectionRepo,
		billingTypes: billingTypes,
		resolver:     resolver,
		sanitizer:    sanitizer,
		logger:       logger,
	}
}

func (uc *SaveAdditionalSectionUseCase) Execute(ctx context.Context, cmd SaveAdditionalSectionCommand) (*dto.AdditionalSectionDTO, error) {
	variant := uc.resolver.Resolve(cmd.TypeID, cmd.SubTypeID)
	if variant == vo.VariantNone {
		return nil, apperrors.NewValidationError("purchase type requires no additional section")
	}

	section, isNew, err := uc.loadOrCreate(ctx, cmd.PurchaseRequestID, variant)
	if err != nil {
		return nil, err
	}
	versionBefore := section.Version()

	if !isNew {
		if err := section.ChangeVariant(variant); err != nil {
			return nil, translateDomainError("failed to change section variant", err)
		}
	}

	var dateFailure *procurement.ValidationError
	if variant.RequiresPeriod() {
		if dateFailure, err = uc.applyPeriod(ctx, section, cmd.Input); err != nil {
			return nil, err
		}
	}
	if variant.HasSiteFields() {
		if err := uc.applySite(section, cmd.Input); err != nil {
			return nil, err
		}
	}

	if err := withStartPeriodFailure(section.Validate(), dateFailure).Err(); err != nil {
		uc.logger.Debugw("additional section rejected",
			"purchase_request_id", cmd.PurchaseRequestID,
			"reason", err,
		)
		return nil, translateDomainError("invalid additional section", err)
	}

	switch {
	case isNew:
		if err := uc.sectionRepo.Create(ctx, section); err != nil {
			uc.logger.Errorw("failed to create additional section", "error", err, "purchase_request_id", cmd.PurchaseRequestID)
			return nil, fmt.Errorf("failed to create additional section: %w", err)
		}
		uc.logger.Infow("additional section created",
			"purchase_request_id", cmd.PurchaseRequestID,
			"section_id", section.ID(),
			"variant", variant,
		)
	case section.Version() != versionBefore:
		if err := uc.sectionRepo.Update(ctx, section); err != nil {
			uc.logger.Errorw("failed to update additional section", "error", err, "purchase_request_id", cmd.PurchaseRequestID)
			return nil, translateDomainError("failed to update additional section", err)
		}
		uc.logger.Infow("additional section updated",
			"purchase_request_id", cmd.PurchaseRequestID,
			"section_id", section.ID(),
			"version", section.Version(),
		)
	}

	return dto.ToAdditionalSectionDTO(section), nil
}

func (uc *SaveAdditionalSectionUseCase) loadOrCreate(
	ctx context.Context,
	purchaseRequestID string,
	variant vo.AdditionalSectionVariant,
) (*procurement.AdditionalSection, bool, error) {
	section, err := uc.sectionRepo.GetByPurchaseRequestID(ctx, purchaseRequestID)
	if err == nil {
		return section, false, nil
	}
	if !errors.Is(err, procurement.ErrNotFound) {
		uc.logger.Errorw("failed to load additional section", "error", err, "purchase_request_id", purchaseRequestID)
		return nil, false, fmt.Errorf("failed to load additional section: %w", err)
	}

	section, err = procurement.NewAdditionalSection(purchaseRequestID, variant)
	if err != nil {
		return nil, false, translateDomainError("failed to create additional section", err)
	}
	return section, true, nil
}

// applyPeriod copies the period fields onto section. A malformed start period
// is cleared and returned for ranking against the other field failures.
func (uc *SaveAdditionalSectionUseCase) applyPeriod(ctx context.Context, section *procurement.AdditionalSection, input dto.SectionInput) (*procurement.ValidationError, error) {
	bt, err := loadBillingType(ctx, uc.billingTypes, input.BillingTypeID)
	if err != nil {
		return nil, err
	}
	if err := section.SetBillingType(bt); err != nil {
		return nil, fieldError(procurement.FieldBillingTypeID, err)
	}

	start, dateFailure := parseSectionStartPeriod(input.StartPeriod)
	if err := section.SetStartPeriod(start); err != nil {
		return nil, fieldError(procurement.FieldStartPeriod, err)
	}

	if err := section.SetPeriodCount(input.PeriodCount); err != nil {
		return nil, fieldError(procurement.FieldPeriodCount, err)
	}
	return dateFailure, nil
}

func (uc *SaveAdditionalSectionUseCase) applySite(section *procurement.AdditionalSection, input dto.SectionInput) error {
	if err := section.SetSiteOrderNumber(uc.sanitizer.PlainTextPtr(input.SiteOrderNumber)); err != nil {
		return fieldError(procurement.FieldSiteOrderNumber, err)
	}
	if err := section.SetSiteID(uc.sanitizer.PlainTextPtr(input.SiteID)); err != nil {
		return fieldError(procurement.FieldSiteID, err)
	}
	if err := section.SetSiteName(uc.sanitizer.PlainTextPtr(input.SiteName)); err != nil {
		return fieldError(procurement.FieldSiteName, err)
	}
	return nil
}
