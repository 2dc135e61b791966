// Package commands implements the threads CLI subcommands.
package commands

import (
	"fmt"

	"github.com/deppfellow/threads-backend/internal/config"
	"github.com/deppfellow/threads-backend/internal/logger"
	"github.com/rs/zerolog"
)

type Globals struct {
	Version string
}

// bootstrap loads configuration and builds the application logger.
func bootstrap(globals *Globals) (*config.Config, *logger.LoggerService, *zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService).
		With().
		Str("version", globals.Version).
		Logger()

	return cfg, loggerService, &log, nil
}
