package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ecm-digital/bankingapp-sub000/internal/analysis"
	"github.com/ecm-digital/bankingapp-sub000/internal/app"
	"github.com/ecm-digital/bankingapp-sub000/internal/config"
	"github.com/ecm-digital/bankingapp-sub000/internal/logging"
	"github.com/ecm-digital/bankingapp-sub000/internal/mockapi"
	"github.com/ecm-digital/bankingapp-sub000/internal/server"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)

	api := mockapi.New(logger, mockapi.Config{
		Latency: mockapi.Latency{
			List:           cfg.Mock.ListDelay,
			ListJitter:     cfg.Mock.ListDelay / 5,
			Detail:         cfg.Mock.DetailDelay,
			DetailJitter:   cfg.Mock.DetailDelay / 6,
			Mutation:       cfg.Mock.MutationDelay,
			MutationJitter: cfg.Mock.MutationDelay / 5,
		},
		Faults: mockapi.NewRandomFaults(cfg.Mock.Seed,
			cfg.Mock.ReadFaultRate, cfg.Mock.MutationFaultRate, cfg.Mock.TransferFaultRate),
		Seed: cfg.Mock.Seed,
	})

	state := app.New(logger, api)
	defer state.Close()

	if err := state.Initialize(ctx); err != nil {
		// Faults are part of the simulation; a partial first load is not fatal.
		logger.Warn("initial data load incomplete", "error", err)
	}

	analyzer := analysis.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.Timeout)
	handlers := server.NewHandlers(logger, state, analyzer)

	router := server.NewRouter(logger, server.RouterDependencies{
		Handlers:         handlers,
		AllowedOrigins:   parseAllowedOrigins(cfg.HTTP.AllowedOriginsCSV),
		AllowCredentials: true,
	})

	srv := server.New(logger, cfg.HTTP, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func parseAllowedOrigins(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	var origins []string
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		origins = append(origins, origin)
	}
	return origins
}
