package commands

import (
	"context"
	"fmt"

	"github.com/deppfellow/threads-backend/internal/database"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx context.Context, globals *Globals) error {
	cfg, loggerService, log, err := bootstrap(globals)
	if err != nil {
		return err
	}
	defer loggerService.Shutdown()

	if err := database.Migrate(ctx, log, cfg); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
