package procurement

import (
	"fmt"
	"time"

	vo "github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement/valueobjects"
)

// Field names the form field a validation failure points at.
type Field string

const (
	FieldBillingTypeID   Field = "billingTypeId"
	FieldStartPeriod     Field = "startPeriod"
	FieldPeriodCount     Field = "periodCount"
	FieldEndPeriod       Field = "endPeriod"
	FieldSiteOrderNumber Field = "siteOrderNumber"
	FieldSiteID          Field = "siteId"
	FieldSiteName        Field = "siteName"
)

func (f Field) String() string {
	return string(f)
}

// FailureKind separates a bad field from an end period that could not be
// derived although every input field passed.
type FailureKind string

const (
	FailureField       FailureKind = "field"
	FailureComputation FailureKind = "computation_failed"
)

// ValidationError identifies the first offending field of a section.
type ValidationError struct {
	Field  Field
	Reason string
	Kind   FailureKind
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// ValidationResult is the outcome of ValidateSection.
type ValidationResult struct {
	Failure *ValidationError
}

func (r ValidationResult) Valid() bool {
	return r.Failure == nil
}

// Err returns the failure as an error, or nil when valid.
func (r ValidationResult) Err() error {
	if r.Failure == nil {
		return nil
	}
	return r.Failure
}

// SectionData is the editable payload of an additional section.
// MonthsPerPeriod is the multiplier of the resolved billing type, zero when
// the billing type could not be resolved.
type SectionData struct {
	BillingTypeID   *int
	MonthsPerPeriod int
	StartPeriod     *time.Time
	PeriodCount     *int
	EndPeriod       *time.Time

	SiteOrderNumber *string
	SiteID          *string
	SiteName        *string
}

// ComputeEndPeriod derives the end period from the data's own fields.
func (d SectionData) ComputeEndPeriod() (time.Time, error) {
	if d.StartPeriod == nil || d.PeriodCount == nil {
		return time.Time{}, fmt.Errorf("%w: start period and period count are required", ErrInvalidInput)
	}
	return vo.ComputeEndPeriod(*d.StartPeriod, *d.PeriodCount, d.MonthsPerPeriod)
}

// ValidateSection checks data against the rules of variant and stops at the
// first failure. Site fields are optional for every variant.
func ValidateSection(variant vo.AdditionalSectionVariant, data SectionData) ValidationResult {
	if !variant.RequiresPeriod() {
		return ValidationResult{}
	}
	return ValidationResult{Failure: validatePeriodFields(data)}
}

func validatePeriodFields(data SectionData) *ValidationError {
	if data.BillingTypeID == nil || *data.BillingTypeID <= 0 {
		return fieldError(FieldBillingTypeID, "billing type is required")
	}
	if data.StartPeriod == nil || data.StartPeriod.IsZero() {
		return fieldError(FieldStartPeriod, "start period is required")
	}
	if data.PeriodCount == nil {
		return fieldError(FieldPeriodCount, "period is required")
	}
	if *data.PeriodCount < 1 {
		return fieldError(FieldPeriodCount, "period must be at least 1")
	}
	if _, err := data.ComputeEndPeriod(); err != nil {
		return &ValidationError{
			Field:  FieldEndPeriod,
			Reason: fmt.Sprintf("end period could not be computed: %v", err),
			Kind:   FailureComputation,
		}
	}
	return nil
}

func fieldError(field Field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason, Kind: FailureField}
}
