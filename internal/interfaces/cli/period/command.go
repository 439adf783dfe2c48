package period

import (
	"fmt"

	"github.com/spf13/cobra"

	procurementApp "github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/biztime"
)

// NewCommand returns the offline end period calculator. It needs no config
// or database.
func NewCommand() *cobra.Command {
	var (
		start  string
		count  int
		months int
	)

	cmd := &cobra.Command{
		Use:   "period",
		Short: "Compute the end period of a billing term",
		Long:  `Compute the last day of a term of --count periods of --months months starting at --start.`,
		Example: `  idisys period --start 2025-01-15 --count 4 --months 3
  idisys period --start 2025-03-01 --count 12`,
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := biztime.ParseDate(start)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}

			end, err := procurementApp.NewAdditionalSectionResolver().ComputeEndPeriod(startDate, count, months)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), biztime.FormatDate(end))
			return nil
		},
	}

	cmd.Flags().StringVarP(&start, "start", "s", "", "Start period (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of billing periods")
	cmd.Flags().IntVarP(&months, "months", "m", 1, "Months per billing period")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}
