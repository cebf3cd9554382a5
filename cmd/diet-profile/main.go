package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"diet-profile-go/internal/app"
	"diet-profile-go/pkg/logger"
)

func main() {
	log := logger.NewFromEnv()
	if err := run(log); err != nil {
		log.Critical("app: exited with error", "err", err)
		os.Exit(1)
	}
	log.Info("app: stopped")
}

// run serves until SIGINT/SIGTERM or a listener failure, then drains
// in-flight requests within the configured shutdown timeout.
func run(log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, log)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}

	srv := application.HTTPServer()
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("http: listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve %s: %w", srv.Addr, err)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("app: shutting down", "timeout", application.ShutdownTimeout())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), application.ShutdownTimeout())
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	return errors.Join(group.Wait(), application.Close())
}
