package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resumerank/internal/common"
	"resumerank/internal/ingest"
	"resumerank/internal/scoring"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [job-description-file] [resume-dir]",
	Short: "Watch a directory of resumes and re-rank on changes",
	Long: `Watch a directory for new or modified resume files and keep a live ranking
against the job description. Every change triggers a debounced re-scoring run;
a run that is superseded by a newer change is discarded so only the latest
ranking is ever printed.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if watchConfig.OutputFormat == "" {
			watchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		if err := common.ValidateOutputFormat(watchConfig.OutputFormat, cfg.App.SupportedFormats); err != nil {
			return err
		}
		return common.ValidateMinScore(watchMinScore)
	},
	RunE: runWatch,
}

var (
	watchConfig   common.CommandConfig
	watchMinScore int
)

func init() {
	watchCmd.Flags().StringVar(&watchConfig.OutputFormat, "format", "", "Output format: json, text, markdown, or csv")
	watchCmd.Flags().IntVar(&watchMinScore, "min-score", 0, "Drop candidates with an overall score below this threshold")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	jobFile, dir := args[0], args[1]

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("cannot access resume directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", dir)
	}

	fileProcessor := common.NewFileProcessorWithLimit(logger, int64(cfg.App.MaxFileSize))
	contents, err := fileProcessor.ValidateAndReadFiles(jobFile)
	if err != nil {
		return err
	}
	jobDescription := contents[0]
	if strings.TrimSpace(jobDescription) == "" {
		return fmt.Errorf("job description file is empty")
	}

	scorer, err := scoring.ForConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create scorer: %w", err)
	}
	runner := scoring.NewRunner(scorer)

	extractor := ingest.NewExtractor(logger)
	store := ingest.NewStore()
	outputHandler := common.NewOutputHandler(logger)

	rescore := func(ctx context.Context) {
		ranked, err := runner.Run(ctx, jobDescription, store.List())
		if err != nil {
			if errors.Is(err, scoring.ErrSuperseded) {
				logger.Debug("Scoring run superseded by a newer change")
				return
			}
			logger.LogError(err, "Scoring run failed")
			return
		}

		if err := outputHandler.HandleOutput(filterByMinScore(ranked, watchMinScore), watchConfig); err != nil {
			logger.LogError(err, "Failed to write ranking")
		}
	}

	// Initial ingest of everything already in the directory
	initial := listResumeFiles(dir)
	if len(initial) > 0 {
		store.UpsertAll(extractor.IngestFiles(cmd.Context(), initial))
	}

	logger.Info("Watching resume directory",
		"dir", dir,
		"initial_resumes", store.Len(),
		"backend", scorer.Name(),
		"debounce", cfg.App.WatchDebounce)

	rescore(cmd.Context())

	watcher := ingest.NewWatcher(dir, cfg.App.WatchDebounce, extractor, store, rescore, logger)
	return watcher.Run(cmd.Context())
}

// listResumeFiles returns the supported resume files directly under dir.
func listResumeFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if ingest.IsSupportedFile(path) {
			files = append(files, path)
		}
	}
	return files
}
