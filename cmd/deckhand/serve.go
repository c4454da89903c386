package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/deckhand/internal/api"
	"github.com/MikeSquared-Agency/deckhand/internal/engine"
	"github.com/MikeSquared-Agency/deckhand/internal/hermes"
	"github.com/MikeSquared-Agency/deckhand/internal/processor"
	"github.com/MikeSquared-Agency/deckhand/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP webhook and NATS intake subscriber",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg.LogLevel, os.Stdout)

	slog.Info("deckhand starting", "port", cfg.Port, "variant", cfg.Variant)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	kb, err := loadKnowledge(cfg.KnowledgeBase)
	if err != nil {
		slog.Error("failed to load knowledge base", "error", err)
		return err
	}
	slog.Info("knowledge base loaded", "tactics", len(kb.Tactics), "core_slides", len(kb.CoreSlides))

	eng := engine.New(kb, slog.Default())

	// Database (optional, audit log only)
	var recorder processor.Recorder
	if cfg.DatabaseURL != "" {
		db, err := store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			return err
		}
		defer db.Close()
		if err := db.EnsureSchema(ctx); err != nil {
			slog.Error("failed to ensure schema", "error", err)
			return err
		}
		recorder = db
		slog.Info("database connected")
	} else {
		slog.Warn("DATABASE_URL not set, selections will not be recorded")
	}

	// NATS/Hermes
	hermesClient, err := hermes.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
	if err != nil {
		slog.Error("failed to connect to NATS", "error", err)
		return err
	}
	defer hermesClient.Close()
	slog.Info("NATS connected", "url", cfg.NatsURL)

	proc := processor.New(eng, recorder, hermesClient, engine.Variant(cfg.Variant), slog.Default())

	if err := hermesClient.OnCampaignIntake(proc.HandleCampaignIntake); err != nil {
		slog.Error("failed to subscribe to campaign intake", "error", err)
		return err
	}

	// HTTP API
	srv := api.NewServer(cfg.Port, cfg.APIToken, proc)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			cancel()
		}
	}()

	if err := hermesClient.PublishRegistered(hermes.RegisteredEvent{
		Port:      cfg.Port,
		Variant:   cfg.Variant,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		slog.Warn("failed to publish registration", "error", err)
	}

	slog.Info("deckhand ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown error", "error", err)
	}
	cancel()
	slog.Info("deckhand stopped")
	return nil
}
