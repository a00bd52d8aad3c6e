package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/swyrknt/distinction-engine/engine"
	"github.com/swyrknt/distinction-engine/growth"
	"github.com/swyrknt/distinction-engine/server"
)

// shutdownGrace bounds how long in-flight requests may run after a signal.
const shutdownGrace = 5 * time.Second

func serveCmd(logLevel *string) *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve engine snapshots over HTTP",
		Long: `Serve starts a fresh engine and exposes it over HTTP: the consistent
snapshot consumed by analysis and visualization tooling, registry stats, a
seeded growth trigger, health, and Prometheus metrics. Flags override values
from the optional TOML config file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := defaultServeConfig()
			if configPath != "" {
				var err error
				cfg, err = loadServeConfig(configPath)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = *logLevel
			}

			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeConfig().Addr, "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")

	return cmd
}

func runServe(ctx context.Context, cfg serveConfig) error {
	log := newLogger(cfg.LogLevel)

	e := engine.New()
	if cfg.WarmupSteps > 0 {
		rep, err := growth.Grow(e, cfg.WarmupSteps, growth.WithSeed(cfg.WarmupSeed))
		if err != nil {
			return fmt.Errorf("warmup: %w", err)
		}
		log.Info().Int("created", rep.Created).Int64("seed", cfg.WarmupSeed).
			Msg("warmup growth complete")
	}

	srv := server.New(e, log).HTTPServer(cfg.Addr)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("snapshot server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
