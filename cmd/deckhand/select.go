package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/deckhand/internal/engine"
	"github.com/MikeSquared-Agency/deckhand/internal/extractor"
	"github.com/MikeSquared-Agency/deckhand/internal/processor"
)

func newSelectCmd() *cobra.Command {
	var (
		variant string
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "select [file]",
		Short: "Compute a selection for a JSON field mapping read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			setupLogging(cfg.LogLevel, cmd.ErrOrStderr())

			if variant == "" {
				variant = cfg.Variant
			}
			v, err := engine.ParseVariant(variant)
			if err != nil {
				return err
			}

			data, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			kb, err := loadKnowledge(cfg.KnowledgeBase)
			if err != nil {
				return err
			}
			return runSelect(cmd.Context(), cmd.OutOrStdout(), engine.New(kb, slog.Default()), data, v, pretty)
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "", "Pipeline variant: basic or enhanced (default: DECKHAND_VARIANT)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output JSON")
	return cmd
}

func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func runSelect(ctx context.Context, w io.Writer, eng *engine.Engine, data []byte, v engine.Variant, pretty bool) error {
	fields, err := extractor.ParseRawInput(data)
	if err != nil {
		return err
	}

	proc := processor.New(eng, nil, nil, v, slog.Default())
	sel := proc.Select(ctx, processor.Request{
		Variant: v,
		Source:  processor.SourceCLI,
		Fields:  fields,
	})

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(sel.Output)
}
