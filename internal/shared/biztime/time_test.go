package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "plain date", input: "2025-01-15", want: Date(2025, 1, 15)},
		{name: "surrounding spaces", input: "  2024-02-29 ", want: Date(2024, 2, 29)},
		{name: "rfc3339 keeps written date", input: "2025-03-01T23:30:00+07:00", want: Date(2025, 3, 1)},
		{name: "empty", input: "", wantErr: true},
		{name: "not a date", input: "15/01/2025", wantErr: true},
		{name: "impossible day", input: "2025-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestMonthBoundaries(t *testing.T) {
	assert.Equal(t, Date(2025, 1, 1), FirstOfMonth(Date(2025, 1, 15)))
	assert.Equal(t, Date(2025, 1, 31), LastOfMonth(Date(2025, 1, 15)))
	assert.Equal(t, Date(2024, 2, 29), LastOfMonth(Date(2024, 2, 1)))
	assert.Equal(t, Date(2025, 2, 28), LastOfMonth(Date(2025, 2, 10)))
	assert.Equal(t, Date(2025, 12, 31), LastOfMonth(Date(2025, 12, 1)))
}

func TestDateOfDropsZone(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	instant := time.Date(2025, 6, 30, 23, 59, 0, 0, loc)

	assert.Equal(t, Date(2025, 6, 30), DateOf(instant))
	assert.Equal(t, "2025-06-30", FormatDate(DateOf(instant)))
}
