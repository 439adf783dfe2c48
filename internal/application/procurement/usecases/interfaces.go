package usecases

import (
	"time"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement"
	vo "github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement/valueobjects"
)

// SectionResolver is the synchronous rule set the use cases delegate to.
type SectionResolver interface {
	Resolve(typeID, subTypeID *int) vo.AdditionalSectionVariant
	ComputeEndPeriod(startPeriod time.Time, periodCount, monthsPerPeriod int) (time.Time, error)
	ValidateSection(variant vo.AdditionalSectionVariant, data procurement.SectionData) procurement.ValidationResult
	IsFieldEditableOnRevision(currentValue *string) bool
}

// TextSanitizer reduces free text to plain text before it is stored.
type TextSanitizer interface {
	PlainTextPtr(input *string) *string
}
