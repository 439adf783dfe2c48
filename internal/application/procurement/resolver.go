// Package procurement exposes the additional-information section rules to
// presentation code. Everything here is synchronous and free of I/O; catalog
// lookups happen in the use cases before the resolver is called.
package procurement

import (
	"time"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	vo "github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement/valueobjects"
)

// AdditionalSectionResolver decides which additional section a purchase
// type/sub-type pair needs and derives or checks that section's fields.
type AdditionalSectionResolver struct{}

func NewAdditionalSectionResolver() *AdditionalSectionResolver {
	return &AdditionalSectionResolver{}
}

// Resolve returns the variant for the pair. A nil typeID yields VariantNone.
func (r *AdditionalSectionResolver) Resolve(typeID, subTypeID *int) vo.AdditionalSectionVariant {
	return vo.SelectVariant(typeID, subTypeID)
}

// ComputeEndPeriod returns the last day of the final billed month, or an
// error wrapping procurement.ErrInvalidInput.
func (r *AdditionalSectionResolver) ComputeEndPeriod(startPeriod time.Time, periodCount, monthsPerPeriod int) (time.Time, error) {
	return vo.ComputeEndPeriod(startPeriod, periodCount, monthsPerPeriod)
}

func (r *AdditionalSectionResolver) ValidateSection(variant vo.AdditionalSectionVariant, data procurement.SectionData) procurement.ValidationResult {
	return procurement.ValidateSection(variant, data)
}

func (r *AdditionalSectionResolver) IsFieldEditableOnRevision(currentValue *string) bool {
	return vo.IsFieldEditableOnRevision(currentValue)
}
