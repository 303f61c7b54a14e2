package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "sp-provision/internal/adapter/http"
)

// serve exposes the provisioning run over HTTP until a termination signal
// arrives, then shuts the server down gracefully.
func serve(_ *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	handler := httpadapter.NewHandler(a.svc, a.plan, a.logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", slog.Int("port", int(a.cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err = <-errCh:
		if err != nil {
			a.logger.Error("server error", slog.Any("error", err))
			return err
		}
	case sig := <-quit:
		a.logger.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		a.logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	a.logger.Info("server gracefully stopped")
	return nil
}
