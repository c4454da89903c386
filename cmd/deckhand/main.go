package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/deckhand/internal/config"
	"github.com/MikeSquared-Agency/deckhand/internal/knowledge"
)

var knowledgePath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "deckhand",
		Short: "Rule-based slide selection for campaign proposal decks",
		Long: `deckhand maps a campaign intake form onto the set of proposal deck
slides that should be included, together with a confidence score and
human-readable reasoning.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&knowledgePath, "knowledge", "",
		"Path to a knowledge base YAML file (default: embedded, or DECKHAND_KNOWLEDGE_BASE)")

	root.AddCommand(newServeCmd(), newSelectCmd())
	return root
}

// loadConfig reads the environment and applies command line overrides.
func loadConfig() (config.Config, error) {
	cfg := config.Load()
	if knowledgePath != "" {
		cfg.KnowledgeBase = knowledgePath
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadKnowledge(path string) (*knowledge.Base, error) {
	if path == "" {
		return knowledge.Embedded(), nil
	}
	kb, err := knowledge.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load knowledge base: %w", err)
	}
	return kb, nil
}

func setupLogging(level string, w io.Writer) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
