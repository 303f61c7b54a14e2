package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sp-provision/internal/adapter/amazonads"
	"sp-provision/internal/adapter/planfile"
	"sp-provision/internal/adapter/usecase"
	"sp-provision/internal/config"
	"sp-provision/internal/core/domain"
)

// main is the entry point of sp-provision. Without a subcommand it performs
// a single provisioning run and prints the resulting identifiers as JSON.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sp-provision",
		Short: "Provision a Sponsored Products campaign",
		Long: `Provision a manual Sponsored Products campaign with one ad group,
keyword targets and product ads.

Credentials are read from ADS_CLIENT_ID, ADS_CLIENT_SECRET, ADS_REFRESH_TOKEN
and ADS_PROFILE_ID (a .env file in the working directory is honoured). The
plan comes from PROVISION_PLAN_FILE or the built-in example plan.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runOnce,
	}
	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Run one provisioning pass and print the result",
		RunE:  runOnce,
	})
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve provisioning runs over HTTP",
		RunE:  serve,
	})
	return root
}

// app bundles everything a command needs once configuration is loaded.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	plan   domain.Plan
	svc    *usecase.ProvisionUseCase
}

func setup() (*app, error) {
	// Load configuration from .env and environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return nil, err
	}

	logger := cfg.Log.New(os.Stderr).With(slog.String("env", cfg.Env))

	plan, err := planfile.Load(cfg.Provision.PlanFile)
	if err != nil {
		logger.Error("failed to load plan", slog.Any("error", err))
		return nil, err
	}

	creds := cfg.Ads.Credentials()
	auth := amazonads.NewAuthenticator(cfg.Ads.TokenURL, creds, cfg.Ads.Timeout, logger)
	client := amazonads.NewClient(cfg.Ads.APIURL, creds, cfg.Ads.Timeout, logger)
	svc := usecase.NewProvisionUseCase(auth, client, logger, cfg.Provision.ParallelAttach)

	return &app{cfg: cfg, logger: logger, plan: plan, svc: svc}, nil
}

// runOnce performs a single run. A failed run exits non-zero after the
// error has been logged; created entities are left as they are.
func runOnce(cmd *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	result, err := a.svc.Provision(ctx, a.plan)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err = enc.Encode(result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
