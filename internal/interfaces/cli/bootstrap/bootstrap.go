// Package bootstrap loads configuration and initializes the process-wide
// logger and business timezone shared by every command.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/config"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/biztime"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

// Options are the persistent flags every command accepts.
type Options struct {
	Env        string
	ConfigPath string
	Verbose    bool
}

// ResolveEnv lets the ENV variable override the --env flag.
func (o *Options) ResolveEnv() string {
	if envVar := os.Getenv("ENV"); envVar != "" {
		o.Env = envVar
	}
	return o.Env
}

// Init loads config, then the logger, then the business timezone.
func Init(opts *Options) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(opts.ResolveEnv(), opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, opts.Verbose); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.BizTime.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	return cfg, logger.NewLogger(), nil
}

// MapEnvToGinMode maps an environment name onto a gin mode.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
