package variant

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

func TestVariantCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--type", "5"}, "subscription"},
		{[]string{"--type", "7", "--sub-type", "9"}, "subscription"},
		{[]string{"--type", "6", "--sub-type", "2"}, "billing_type"},
		{[]string{"--type", "6"}, "none"},
		{[]string{"-t", "8", "-s", "4"}, "site_reference"},
		{[]string{"--type", "0", "--sub-type", "0"}, "none"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestVariantCommand_Rules(t *testing.T) {
	out, err := execute(t, "--rules")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[1], "5,7")
	assert.Contains(t, lines[1], "any")
	assert.Contains(t, lines[2], "billing_type")
}

func TestVariantCommand_RequiresType(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err)
}
