package procurement

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement/valueobjects"
)

// BillingType is a recurring-billing cadence. MonthsPerPeriod is the
// multiplier used in end-period arithmetic.
type BillingType struct {
	ID              int
	Name            string
	Description     string
	MonthsPerPeriod int
}

func NewBillingType(id int, name, description string, monthsPerPeriod int) (*BillingType, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: billing type id must be positive, got %d", ErrInvalidInput, id)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: billing type name is required", ErrInvalidInput)
	}
	if monthsPerPeriod <= 0 {
		return nil, fmt.Errorf("%w: billing type %q must span at least one month", ErrInvalidInput, name)
	}
	return &BillingType{
		ID:              id,
		Name:            name,
		Description:     strings.TrimSpace(description),
		MonthsPerPeriod: monthsPerPeriod,
	}, nil
}

// EndPeriod computes the end of periodCount billing cycles starting in
// startPeriod's month.
func (b *BillingType) EndPeriod(startPeriod time.Time, periodCount int) (time.Time, error) {
	return vo.ComputeEndPeriod(startPeriod, periodCount, b.MonthsPerPeriod)
}
