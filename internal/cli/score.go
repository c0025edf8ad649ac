package cli

import (
	"context"
	"fmt"
	"strings"

	"resumerank/internal/common"
	"resumerank/internal/engine"
	"resumerank/internal/export"
	"resumerank/internal/ingest"
	"resumerank/internal/scoring"
	"resumerank/internal/types"
	"resumerank/internal/utils"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [job-description-file] [resume-file...]",
	Short: "Score and rank resumes against a job description",
	Long: `Score a batch of resumes against a job description and print a ranked list.
The first argument is the job description file; every following argument is a
resume file (PDF, DOCX, TXT, or Markdown). Candidates are scored on keyword
overlap, years of experience, and inferred seniority.`,
	Args: cobra.MinimumNArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		if err := common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats); err != nil {
			return err
		}
		return common.ValidateMinScore(scoreMinScore)
	},
	RunE: runScore,
}

var (
	scoreConfig   common.CommandConfig
	scoreMinScore int
	scorePersist  bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, markdown, or csv")
	scoreCmd.Flags().IntVar(&scoreMinScore, "min-score", 0, "Drop candidates with an overall score below this threshold")
	scoreCmd.Flags().BoolVar(&scorePersist, "persist", false, "Save the scored run to the configured persistence endpoint")

	// Add completion for format flag
	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	scorer, err := scoring.ForConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create scorer: %w", err)
	}

	extractor := ingest.NewExtractor(logger)
	resumeFiles := args[1:]
	for _, f := range resumeFiles {
		if !utils.IsResumeFile(f) {
			logger.Warn("Unsupported resume file type, candidate will carry a note", "filename", f)
		}
	}

	buildJob := func(jobText string) (string, error) {
		if strings.TrimSpace(jobText) == "" {
			return "", fmt.Errorf("job description file is empty")
		}
		return jobText, nil
	}

	logDetails := func(jobText string, c common.CommandConfig) {
		logger.Info("Starting scoring run",
			"job_chars", len(jobText),
			"resumes", len(resumeFiles),
			"backend", scorer.Name(),
			"output_format", c.OutputFormat)
	}

	scoreOperation := func(ctx context.Context, jobDescription string) ([]types.ScoredCandidate, error) {
		candidates := extractor.IngestFiles(ctx, resumeFiles)
		if len(candidates) == 0 {
			return nil, fmt.Errorf("no candidates could be ingested")
		}

		scored, err := scorer.Score(ctx, jobDescription, candidates)
		if err != nil {
			return nil, err
		}

		ranked := engine.Rank(scored)

		if scorePersist {
			client := export.NewPersistClient(cfg.Scoring.Remote, logger)
			if err := client.Save(ctx, export.BuildPersistRequest(jobDescription, ranked)); err != nil {
				return nil, fmt.Errorf("failed to persist scoring run: %w", err)
			}
			logger.Info("Scoring run persisted", "candidates", len(ranked))
		}

		return filterByMinScore(ranked, scoreMinScore), nil
	}

	err = common.RunJobCommand(
		cmd.Context(),
		logger,
		scoreConfig,
		args[0],
		int64(cfg.App.MaxFileSize),
		buildJob,
		scoreOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to score resumes: %w", err)
	}
	logger.Info("Scoring run completed successfully")
	return nil
}

// filterByMinScore drops candidates below the overall score threshold.
func filterByMinScore(ranked []types.ScoredCandidate, minScore int) []types.ScoredCandidate {
	if minScore <= 0 {
		return ranked
	}
	filtered := make([]types.ScoredCandidate, 0, len(ranked))
	for _, sc := range ranked {
		if sc.Scores.Overall >= minScore {
			filtered = append(filtered, sc)
		}
	}
	return filtered
}
