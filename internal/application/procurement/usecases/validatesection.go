package usecases

import (
	"context"
	"time"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement/dto"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	vo "github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement/valueobjects"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/errors"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

type ValidateSectionCommand struct {
	Variant string
	Input   dto.SectionInput
}

// ValidateSectionUseCase checks a form without persisting it. A failing
// section is a normal result, not an error.
type ValidateSectionUseCase struct {
	billingTypes procurement.BillingTypeCatalog
	resolver     SectionResolver
	logger       logger.Interface
}

func NewValidateSectionUseCase(
	billingTypes procurement.BillingTypeCatalog,
	resolver SectionResolver,
	logger logger.Interface,
) *ValidateSectionUseCase {
	return &ValidateSectionUseCase{
		billingTypes: billingTypes,
		resolver:     resolver,
		logger:       logger,
	}
}

func (uc *ValidateSectionUseCase) Execute(ctx context.Context, cmd ValidateSectionCommand) (*dto.ValidationResultDTO, error) {
	variant, err := vo.ParseVariant(cmd.Variant)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "variant")
	}

	data := procurement.SectionData{
		BillingTypeID:   cmd.Input.BillingTypeID,
		PeriodCount:     cmd.Input.PeriodCount,
		SiteOrderNumber: cmd.Input.SiteOrderNumber,
		SiteID:          cmd.Input.SiteID,
		SiteName:        cmd.Input.SiteName,
	}

	var dateFailure *procurement.ValidationError
	if variant.RequiresPeriod() {
		bt, err := loadBillingType(ctx, uc.billingTypes, cmd.Input.BillingTypeID)
		if err != nil {
			if appErr := errors.GetAppError(err); appErr != nil && appErr.Type == errors.ErrorTypeValidationFailed {
				return &dto.ValidationResultDTO{
					Field:  appErr.Details,
					Reason: appErr.Message,
					Kind:   string(procurement.FailureField),
				}, nil
			}
			uc.logger.Errorw("failed to load billing type for validation", "error", err)
			return nil, err
		}
		if bt != nil {
			data.MonthsPerPeriod = bt.MonthsPerPeriod
		}
		data.StartPeriod, dateFailure = parseSectionStartPeriod(cmd.Input.StartPeriod)
	}

	result := withStartPeriodFailure(uc.resolver.ValidateSection(variant, data), dateFailure)

	var endPeriod *time.Time
	if result.Valid() && variant.RequiresPeriod() {
		end, err := data.ComputeEndPeriod()
		if err == nil {
			endPeriod = &end
		}
	}

	uc.logger.Debugw("section validated", "variant", variant, "valid", result.Valid())

	return dto.ToValidationResultDTO(result, endPeriod), nil
}
