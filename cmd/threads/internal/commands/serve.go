package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/threads-backend/internal/database"
	"github.com/deppfellow/threads-backend/internal/handler"
	"github.com/deppfellow/threads-backend/internal/repository"
	"github.com/deppfellow/threads-backend/internal/router"
	"github.com/deppfellow/threads-backend/internal/server"
	"github.com/deppfellow/threads-backend/internal/service"
)

type ServeCmd struct {
	Migrate         bool          `help:"apply database migrations before serving" default:"false" env:"THREADS_AUTO_MIGRATE"`
	ShutdownTimeout time.Duration `help:"grace period for in-flight requests on shutdown" default:"30s"`
}

func (c *ServeCmd) Run(ctx context.Context, globals *Globals) error {
	cfg, loggerService, log, err := bootstrap(globals)
	if err != nil {
		return err
	}

	if c.Migrate {
		if err := database.Migrate(ctx, log, cfg); err != nil {
			loggerService.Shutdown()
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		loggerService.Shutdown()
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		_ = srv.Shutdown(ctx)
		return fmt.Errorf("failed to create services: %w", err)
	}

	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers, services))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := waitForStop(ctx, srv.Start); err != nil {
		_ = srv.Shutdown(context.Background())
		return fmt.Errorf("server stopped: %w", err)
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}

// waitForStop runs start in the background and returns when ctx is done or
// start exits. Only a real serve failure is returned; a closed server is nil.
func waitForStop(ctx context.Context, start func() error) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- start()
	}()

	select {
	case err := <-serveErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		return nil
	}
}
