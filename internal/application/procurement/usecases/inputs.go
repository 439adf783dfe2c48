package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/biztime"
	apperrors "github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/errors"
)

// parseStartPeriod accepts YYYY-MM-DD or RFC 3339. An empty value is absent.
func parseStartPeriod(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	start, err := biztime.ParseDate(*raw)
	if err != nil {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("start period %q is not a valid date", *raw),
			procurement.FieldStartPeriod.String(),
		)
	}
	return &start, nil
}

// parseSectionStartPeriod parses the start period of a section form. A
// malformed value leaves the start period absent and comes back as a field
// failure for withStartPeriodFailure.
func parseSectionStartPeriod(raw *string) (*time.Time, *procurement.ValidationError) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	start, err := biztime.ParseDate(*raw)
	if err != nil {
		return nil, &procurement.ValidationError{
			Field:  procurement.FieldStartPeriod,
			Reason: fmt.Sprintf("start period %q is not a valid date", *raw),
			Kind:   procurement.FailureField,
		}
	}
	return &start, nil
}

// withStartPeriodFailure reports a malformed start period only where
// ValidateSection flagged the missing one, so earlier fields such as
// billingTypeId keep precedence.
func withStartPeriodFailure(result procurement.ValidationResult, dateFailure *procurement.ValidationError) procurement.ValidationResult {
	if dateFailure == nil || result.Valid() || result.Failure.Field != procurement.FieldStartPeriod {
		return result
	}
	return procurement.ValidationResult{Failure: dateFailure}
}

// loadBillingType resolves a billing type ID. A catalog miss is reported as
// a validation failure on billingTypeId rather than a lookup error.
func loadBillingType(ctx context.Context, catalog procurement.BillingTypeCatalog, id *int) (*procurement.BillingType, error) {
	if id == nil || *id <= 0 {
		return nil, nil
	}
	bt, err := catalog.Get(ctx, *id)
	if err != nil {
		if errors.Is(err, procurement.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError(
				fmt.Sprintf("billing type %d does not exist", *id),
				procurement.FieldBillingTypeID.String(),
			)
		}
		return nil, fmt.Errorf("failed to load billing type: %w", err)
	}
	return bt, nil
}
