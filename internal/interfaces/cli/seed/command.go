package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/cache"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/database"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/persistence/seeds"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/interfaces/cli/bootstrap"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/constants"
)

var (
	opts        bootstrap.Options
	catalogFile string
	keepCache   bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the purchase type and billing type catalogs",
		Long: `Upsert purchase types, sub-types and billing types from a YAML catalog.
Without --file the catalog bundled with the binary is used. The Redis catalog
cache is cleared afterwards so running servers pick up the changes.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&opts.Env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&catalogFile, "file", "f", "", "Catalog YAML file (default: bundled catalog)")
	cmd.Flags().BoolVar(&keepCache, "keep-cache", false, "Do not clear the Redis catalog cache")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(&opts)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := seeds.NewSeeder(database.Get(), log).Seed(ctx, catalog)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d purchase types, %d sub-types, %d billing types\n",
		result.PurchaseTypes, result.SubTypes, result.BillingTypes)

	if keepCache {
		return nil
	}

	redisClient, err := cache.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		_ = redisClient.Close()
		log.Warnw("catalog cache not cleared, entries expire on their own", "error", err)
		return nil
	}
	defer redisClient.Close()
	if err := cache.NewRedisCatalogCache(redisClient, log).InvalidateAll(ctx); err != nil {
		log.Warnw("failed to clear catalog cache", "error", err)
	}
	return nil
}

func loadCatalog() (*seeds.Catalog, error) {
	if catalogFile == "" {
		return seeds.DefaultCatalog()
	}
	return seeds.LoadCatalogFile(catalogFile)
}
