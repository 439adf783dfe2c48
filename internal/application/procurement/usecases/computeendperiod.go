package usecases

import (
	"context"
	"time"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement/dto"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/biztime"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/errors"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

// ComputeEndPeriodCommand takes the multiplier either directly or through a
// billing type; MonthsPerPeriod wins when both are set.
type ComputeEndPeriodCommand struct {
	StartPeriod     string
	PeriodCount     int
	MonthsPerPeriod *int
	BillingTypeID   *int
}

type ComputeEndPeriodUseCase struct {
	billingTypes procurement.BillingTypeCatalog
	resolver     SectionResolver
	logger       logger.Interface
}

func NewComputeEndPeriodUseCase(
	billingTypes procurement.BillingTypeCatalog,
	resolver SectionResolver,
	logger logger.Interface,
) *ComputeEndPeriodUseCase {
	return &ComputeEndPeriodUseCase{
		billingTypes: billingTypes,
		resolver:     resolver,
		logger:       logger,
	}
}

func (uc *ComputeEndPeriodUseCase) Execute(ctx context.Context, cmd ComputeEndPeriodCommand) (*dto.EndPeriodDTO, error) {
	start, err := parseStartPeriod(&cmd.StartPeriod)
	if err != nil {
		return nil, err
	}
	if start == nil {
		return nil, errors.NewValidationError("start period is required", procurement.FieldStartPeriod.String())
	}

	var bt *procurement.BillingType
	months := 0
	switch {
	case cmd.MonthsPerPeriod != nil:
		months = *cmd.MonthsPerPeriod
	case cmd.BillingTypeID != nil:
		if bt, err = loadBillingType(ctx, uc.billingTypes, cmd.BillingTypeID); err != nil {
			return nil, err
		}
		if bt != nil {
			months = bt.MonthsPerPeriod
		}
	default:
		return nil, errors.NewValidationError("months per period or billing type is required")
	}

	var end time.Time
	if bt != nil {
		end, err = bt.EndPeriod(*start, cmd.PeriodCount)
	} else {
		end, err = uc.resolver.ComputeEndPeriod(*start, cmd.PeriodCount, months)
	}
	if err != nil {
		uc.logger.Debugw("end period not computable",
			"error", err,
			"start_period", cmd.StartPeriod,
			"period_count", cmd.PeriodCount,
			"months_per_period", months,
		)
		return nil, translateDomainError("failed to compute end period", err)
	}

	return &dto.EndPeriodDTO{
		StartPeriod:     biztime.FormatDate(*start),
		PeriodCount:     cmd.PeriodCount,
		MonthsPerPeriod: months,
		EndPeriod:       biztime.FormatDate(end),
	}, nil
}
