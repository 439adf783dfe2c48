package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/interfaces/cli/migrate"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/interfaces/cli/period"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/interfaces/cli/seed"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/interfaces/cli/server"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/interfaces/cli/variant"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "idisys",
		Short:        "IDISys - purchase request additional-information resolver",
		Long:         `IDISys decides which additional-information section a purchase request carries, computes billing end periods and stores the section through its draft, approval and revision lifecycle.`,
		Version:      version.Current,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		period.NewCommand(),
		variant.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
