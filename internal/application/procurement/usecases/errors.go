package usecases

import (
	"errors"
	"fmt"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	apperrors "github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/errors"
)

// translateDomainError maps domain errors onto AppErrors. Errors it does not
// recognise are wrapped with op and reported as internal by the HTTP layer.
func translateDomainError(op string, err error) error {
	if err == nil {
		return nil
	}

	var vErr *procurement.ValidationError
	switch {
	case apperrors.GetAppError(err) != nil:
		return err
	case errors.As(err, &vErr):
		return apperrors.NewValidationFailedError(vErr.Reason, vErr.Field.String())
	case errors.Is(err, procurement.ErrNotFound):
		return apperrors.NewNotFoundError("additional section not found")
	case errors.Is(err, procurement.ErrSectionFrozen):
		return apperrors.NewConflictError("additional section is approved and can no longer be edited")
	case errors.Is(err, procurement.ErrVersionConflict):
		return apperrors.NewConflictError("additional section was modified by another request, reload and retry")
	case errors.Is(err, procurement.ErrInvalidStatusTransition):
		return apperrors.NewConflictError(err.Error())
	case errors.Is(err, procurement.ErrInvalidInput):
		return apperrors.NewValidationError(err.Error())
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// fieldError attributes a setter failure to the field that caused it.
func fieldError(field procurement.Field, err error) error {
	switch {
	case errors.Is(err, procurement.ErrFieldLocked):
		return apperrors.NewValidationFailedError(
			fmt.Sprintf("%s was already set and cannot change during revision", field), field.String())
	case errors.Is(err, procurement.ErrFieldNotApplicable):
		return apperrors.NewValidationError(err.Error(), field.String())
	default:
		return translateDomainError("failed to update "+field.String(), err)
	}
}
