package period

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestPeriodCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"quarterly", []string{"--start", "2025-01-15", "--count", "4", "--months", "3"}, "2025-12-31"},
		{"monthly leap year", []string{"--start", "2024-03-01", "--count", "12"}, "2025-02-28"},
		{"single month", []string{"-s", "2025-02-10"}, "2025-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPeriodCommand_Errors(t *testing.T) {
	_, err := execute(t, "--start", "2025-13-01")
	assert.Error(t, err)

	_, err = execute(t, "--start", "2025-01-01", "--count", "0")
	assert.Error(t, err)

	_, err = execute(t)
	assert.Error(t, err)
}
