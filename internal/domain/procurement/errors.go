package procurement

import (
	"errors"
	"fmt"

	vo "github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement/valueobjects"
)

var (
	// ErrNotFound is returned by catalogs and repositories on a lookup miss.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for malformed dates, counts and multipliers.
	ErrInvalidInput = vo.ErrInvalidInput
	// ErrValidationFailed is the sentinel every *ValidationError unwraps to.
	ErrValidationFailed = errors.New("validation failed")

	ErrSectionFrozen           = errors.New("additional section is approved and read-only")
	ErrFieldLocked             = errors.New("field is locked during revision")
	ErrFieldNotApplicable      = errors.New("field does not apply to the section variant")
	ErrInvalidStatusTransition = errors.New("invalid section status transition")
	ErrVersionConflict         = errors.New("version conflict: additional section was modified")
)

func ErrInvalidTransition(from, to vo.SectionStatus) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}

func errLocked(field Field) error {
	return fmt.Errorf("%w: %s", ErrFieldLocked, field)
}

func errNotApplicable(field Field, variant vo.AdditionalSectionVariant) error {
	return fmt.Errorf("%w: %s on %s", ErrFieldNotApplicable, field, variant)
}
