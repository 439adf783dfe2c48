package valueobjects

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/biztime"
)

// ErrInvalidInput is returned for malformed period arguments
var ErrInvalidInput = errors.New("invalid input")

// MaxEndPeriodYear is the last year a YYYY-MM-DD end period can carry.
const MaxEndPeriodYear = 9999

// ComputeEndPeriod returns the last calendar day of the month that lies
// periodCount*monthsPerPeriod-1 months after startPeriod's month. Only the
// year and month of startPeriod are used; billing periods are month-granular.
func ComputeEndPeriod(startPeriod time.Time, periodCount, monthsPerPeriod int) (time.Time, error) {
	if startPeriod.IsZero() {
		return time.Time{}, fmt.Errorf("%w: start period is not a valid date", ErrInvalidInput)
	}
	if periodCount < 1 {
		return time.Time{}, fmt.Errorf("%w: period count must be at least 1, got %d", ErrInvalidInput, periodCount)
	}
	if monthsPerPeriod <= 0 {
		return time.Time{}, fmt.Errorf("%w: months per period must be positive, got %d", ErrInvalidInput, monthsPerPeriod)
	}
	if periodCount > math.MaxInt/monthsPerPeriod {
		return time.Time{}, fmt.Errorf("%w: period count %d overflows", ErrInvalidInput, periodCount)
	}

	totalMonths := periodCount * monthsPerPeriod
	firstOfStart := biztime.FirstOfMonth(startPeriod)
	monthsLeft := (MaxEndPeriodYear-firstOfStart.Year())*12 + int(time.December-firstOfStart.Month()) + 1
	if totalMonths > monthsLeft {
		return time.Time{}, fmt.Errorf("%w: end period falls after year %d", ErrInvalidInput, MaxEndPeriodYear)
	}

	// First day of the month after the last billed month, minus one day.
	return firstOfStart.AddDate(0, totalMonths, -1), nil
}
