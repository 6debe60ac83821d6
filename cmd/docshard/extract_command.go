package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"docshard/internal/config"
	"docshard/internal/filter"
	"docshard/internal/inputstream"
	"docshard/internal/logging"
	"docshard/internal/manifest"
	"docshard/internal/runlock"
	"docshard/internal/segment"
	"docshard/internal/shard"
)

func newExtractCommand(configFlag *string) *cobra.Command {
	var (
		limit      int
		noFilter   bool
		noManifest bool
	)

	cmd := &cobra.Command{
		Use:   "extract INPUT OUTPUT_DIR",
		Short: "Extract documents from a corpus into sharded <doc> files",
		Long: `Extract streams INPUT (plain text or .xz/.zst/.gz/.bz2), reassembles
documents at blank-line boundaries, normalizes and quality-filters them,
and writes accepted documents under OUTPUT_DIR/<AA..ZZ>/wiki_<00..99>.

Examples:
  docshard extract ja.txt.xz ./corpus
  docshard extract --limit 100000 ja.txt.xz ./corpus
  docshard extract --no-filter dump.txt ./corpus`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				LogDir: cfg.Logging.LogDir,
			})
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			opts := extractOptions{
				input:     args[0],
				outputDir: args[1],
				limit:     limit,
				filter:    !noFilter,
				manifest:  cfg.Output.Manifest && !noManifest,
			}
			return runExtract(cmd.Context(), cfg, logger, opts)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum accepted documents (0 = unlimited)")
	cmd.Flags().BoolVar(&noFilter, "no-filter", false, "Disable all quality filters")
	cmd.Flags().BoolVar(&noManifest, "no-manifest", false, "Skip the shard manifest catalog")
	return cmd
}

type extractOptions struct {
	input     string
	outputDir string
	limit     int
	filter    bool
	manifest  bool
}

func runExtract(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts extractOptions) error {
	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	lock, err := runlock.Acquire(opts.outputDir)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release() }()

	input, err := inputstream.Open(opts.input)
	if err != nil {
		return err
	}
	defer input.Close()

	var (
		store *manifest.Store
		runID string
	)
	if opts.manifest {
		store, err = manifest.Open(opts.outputDir)
		if err != nil {
			return err
		}
		defer store.Close()
		runID, err = store.BeginRun(ctx, opts.input)
		if err != nil {
			return err
		}
	}

	layout := shard.Layout{
		DocsPerFile: cfg.Output.DocsPerFile,
		FilesPerDir: cfg.Output.FilesPerDir,
		FilePrefix:  cfg.Output.FilePrefix,
	}
	observe := func(rec shard.Record) error {
		logger.Debug("shard closed", "path", rec.Path, "docs", rec.Docs)
		if store == nil {
			return nil
		}
		return store.RecordShard(ctx, runID, rec)
	}
	writer := shard.NewWriter(layout, shard.OSOpener{Root: opts.outputDir}, observe)
	if err := writer.Open(); err != nil {
		return err
	}
	defer func() { _ = writer.Close() }()

	logger.Info("extraction started",
		"input", opts.input,
		"output_dir", opts.outputDir,
		"filters", opts.filter,
		"limit", opts.limit,
	)

	stats, err := segment.Run(ctx, input, writer, segment.Options{
		Limit:         opts.limit,
		FilterEnabled: opts.filter,
		Thresholds: filter.Thresholds{
			MinDocLength:      cfg.Filter.MinDocLength,
			MinHiraganaRatio:  cfg.Filter.MinHiraganaRatio,
			MaxLineRepetition: cfg.Filter.MaxLineRepetition,
		},
	})
	if err != nil {
		return err
	}

	if err := writer.Close(); err != nil {
		return err
	}
	if store != nil {
		if err := store.FinishRun(ctx, runID, stats); err != nil {
			return err
		}
	}

	printReport(os.Stderr, opts.outputDir, stats, opts.filter)
	return nil
}
