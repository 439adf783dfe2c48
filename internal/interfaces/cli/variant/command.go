package variant

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	procurementApp "github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement"
	vo "github.com/Yoas-Hutapea/IDISys-sub000/internal/domain/procurement/valueobjects"
)

// NewCommand prints the variant for a type/sub-type pair, or the whole
// decision table with --rules.
func NewCommand() *cobra.Command {
	var (
		typeID    int
		subTypeID int
		showRules bool
	)

	cmd := &cobra.Command{
		Use:   "variant",
		Short: "Show which additional section a purchase type needs",
		Example: `  idisys variant --type 6 --sub-type 2
  idisys variant --rules`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showRules {
				return printRules(cmd)
			}
			if !cmd.Flags().Changed("type") {
				return fmt.Errorf("--type is required unless --rules is given")
			}

			var subType *int
			if cmd.Flags().Changed("sub-type") {
				subType = &subTypeID
			}

			variant := procurementApp.NewAdditionalSectionResolver().Resolve(&typeID, subType)
			fmt.Fprintln(cmd.OutOrStdout(), variant.String())
			return nil
		},
	}

	cmd.Flags().IntVarP(&typeID, "type", "t", 0, "Purchase type ID")
	cmd.Flags().IntVarP(&subTypeID, "sub-type", "s", 0, "Purchase sub-type ID")
	cmd.Flags().BoolVar(&showRules, "rules", false, "Print the decision table")

	return cmd
}

func printRules(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE IDS\tSUB-TYPE IDS\tVARIANT")
	for _, rule := range vo.SectionRules() {
		subTypes := "any"
		if rule.SubTypeIDs != nil {
			subTypes = joinIDs(rule.SubTypeIDs)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", joinIDs(rule.TypeIDs), subTypes, rule.Variant)
	}
	return w.Flush()
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ",")
}
