package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"entitymatch/internal/config"
	"entitymatch/internal/enrich"
	"entitymatch/internal/listings"
	"entitymatch/internal/logging"
	"entitymatch/internal/match"
	"entitymatch/internal/registry"
	"entitymatch/internal/runs"
)

func newEnrichCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "enrich <listings.csv>",
		Short: "Match listings against the registry and write enriched output",
		Long: "Reads a listings CSV with Name and Address columns, matches every row\n" +
			"against the business registry, and writes the input with BusinessName,\n" +
			"AgentName, EntityStatus, MatchConfidence, MatchType, and NameSimilarity\n" +
			"columns appended. A registry download failure still produces output,\n" +
			"with every row unmatched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.loggerValue()

			inputPath := args[0]
			outputPath := strings.TrimSpace(outputFlag)
			if outputPath == "" {
				outputPath = defaultOutputPath(inputPath)
			}

			file, err := listings.ReadFile(inputPath)
			if err != nil {
				return err
			}

			started := time.Now()
			stderr := cmd.ErrOrStderr()

			var matcher *match.Matcher
			registryRows := 0
			loader := registry.NewLoader(cfg, logger)
			bar := newByteProgressBar(stderr, "registry dataset")
			table, err := loader.Load(cmd.Context(), func(downloaded, total int64) {
				if total > 0 {
					bar.ChangeMax64(total)
				}
				_ = bar.Set64(downloaded)
			})
			_ = bar.Finish()
			if err != nil {
				logging.WarnWithContext(logger, "registry unavailable, continuing without matches",
					"registry_unavailable", logging.Error(err))
				fmt.Fprintln(stderr, "warning: registry unavailable, all rows will be unmatched")
			} else {
				registryRows = table.Len()
				matcher = match.New(table, match.PolicyFromConfig(cfg.Matching), logger)
			}

			countBar := newCountProgressBar(stderr, file.Len(), "matching listings")
			results, summary, err := enrich.New(matcher, cfg.Matching.Workers, logger).
				EnrichAll(cmd.Context(), file, func(completed, total int) {
					_ = countBar.Set(completed)
				})
			_ = countBar.Finish()
			if err != nil {
				return err
			}

			if err := listings.WriteEnrichedFile(outputPath, file, results); err != nil {
				return err
			}
			finished := time.Now()

			recordRun(cmd, cfg, logger, runs.Run{
				StartedAt:    started,
				FinishedAt:   finished,
				InputPath:    inputPath,
				OutputPath:   outputPath,
				RegistryRows: registryRows,
				Total:        summary.Total,
				Matched:      summary.Matched,
				ByName:       summary.ByName,
				ByAddress:    summary.ByAddress,
				Unmatched:    summary.Unmatched,
			})

			printSummary(cmd, outputPath, registryRows, summary, finished.Sub(started))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output path (default: <input>_enriched.csv)")
	return cmd
}

func defaultOutputPath(inputPath string) string {
	if stem, ok := strings.CutSuffix(inputPath, ".csv"); ok {
		return stem + "_enriched.csv"
	}
	return inputPath + "_enriched.csv"
}

// recordRun persists run history. History is advisory, so a store failure
// is logged and the run still succeeds.
func recordRun(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, run runs.Run) {
	store, err := runs.Open(cfg)
	if err != nil {
		logging.WarnWithContext(logger, "run history unavailable", "runs_store", logging.Error(err))
		return
	}
	defer store.Close()

	id, err := store.Record(cmd.Context(), run)
	if err != nil {
		logging.WarnWithContext(logger, "failed to record run", "runs_store", logging.Error(err))
		return
	}
	logger.Info("run recorded", logging.String(logging.FieldRunID, id))
}

func printSummary(cmd *cobra.Command, outputPath string, registryRows int, summary enrich.Summary, elapsed time.Duration) {
	printer := message.NewPrinter(language.English)
	out := cmd.OutOrStdout()

	rate := 0.0
	if summary.Total > 0 {
		rate = 100 * float64(summary.Matched) / float64(summary.Total)
	}
	printer.Fprintf(out, "Matched %d of %d listings (%.1f%%) in %s\n",
		summary.Matched, summary.Total, rate, elapsed.Round(time.Second))
	fmt.Fprint(out, renderKeyValues([][2]string{
		{"By name", printer.Sprintf("%d", summary.ByName)},
		{"By address", printer.Sprintf("%d", summary.ByAddress)},
		{"Unmatched", printer.Sprintf("%d", summary.Unmatched)},
		{"Registry rows", printer.Sprintf("%d", registryRows)},
		{"Output", outputPath},
	}))
}
