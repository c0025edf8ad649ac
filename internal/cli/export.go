package cli

import (
	"fmt"
	"strings"

	"resumerank/internal/common"
	"resumerank/internal/engine"
	"resumerank/internal/export"
	"resumerank/internal/ingest"
	"resumerank/internal/scoring"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [job-description-file] [resume-file...]",
	Short: "Score resumes and export the ranking as CSV",
	Long: `Score a batch of resumes against a job description and write the ranked
results as CSV. Every field is quoted so candidate names and skill lists are
safe to open in spreadsheet tools. Use --min-score to drop low-scoring
candidates from the export.`,
	Args: cobra.MinimumNArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return common.ValidateMinScore(exportMinScore)
	},
	RunE: runExport,
}

var (
	exportOutputFile string
	exportMinScore   int
)

func init() {
	exportCmd.Flags().StringVarP(&exportOutputFile, "output", "o", "", "Output CSV file path (default: stdout)")
	exportCmd.Flags().IntVar(&exportMinScore, "min-score", 0, "Drop candidates with an overall score below this threshold")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())
	ctx := cmd.Context()

	scorer, err := scoring.ForConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create scorer: %w", err)
	}

	fileProcessor := common.NewFileProcessorWithLimit(logger, int64(cfg.App.MaxFileSize))
	contents, err := fileProcessor.ValidateAndReadFiles(args[0])
	if err != nil {
		return err
	}
	jobDescription := contents[0]
	if strings.TrimSpace(jobDescription) == "" {
		return fmt.Errorf("job description file is empty")
	}

	extractor := ingest.NewExtractor(logger)
	candidates := extractor.IngestFiles(ctx, args[1:])
	if len(candidates) == 0 {
		return fmt.Errorf("no candidates could be ingested")
	}

	logger.Info("Starting CSV export",
		"resumes", len(candidates),
		"backend", scorer.Name(),
		"min_score", exportMinScore)

	scored, err := scorer.Score(ctx, jobDescription, candidates)
	if err != nil {
		return fmt.Errorf("failed to score resumes: %w", err)
	}
	ranked := engine.Rank(scored)

	if exportOutputFile != "" {
		if err := fileProcessor.ValidateOutputFile(exportOutputFile); err != nil {
			return err
		}
		if err := export.WriteCSV(exportOutputFile, ranked, exportMinScore); err != nil {
			return err
		}
		logger.Info("CSV export written", "file", exportOutputFile, "candidates", len(ranked))
		return nil
	}

	fmt.Println(export.CSVString(ranked, exportMinScore))
	return nil
}
