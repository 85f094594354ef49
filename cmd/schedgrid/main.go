// Command schedgrid extracts schedule records from a convention or
// competition schedule PDF and writes them as CSV.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/schedgrid"
	"github.com/tsawler/schedgrid/export"
	"github.com/tsawler/schedgrid/internal/config"
)

var (
	outputPath   string
	defaultDay   string
	rowThreshold float64
	noFreeText   bool
	debug        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "schedgrid [schedule.pdf]",
		Short: "Extract schedule records from visually-positioned PDF grids",
		Long: `schedgrid reconstructs schedule tables whose layout exists only as
positioned text: columns are inferred from division header labels, rows from
vertical proximity, and each time row is linked to the class and instructor
rows above it. Output is one CSV row per recovered class slot.`,
		Args: cobra.ExactArgs(1),
		RunE: run,

		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output CSV path (default: stdout)")
	rootCmd.Flags().StringVar(&defaultDay, "day", "", "Default day for pages without a day marker")
	rootCmd.Flags().Float64Var(&rowThreshold, "row-threshold", 0, "Vertical banding threshold in points")
	rootCmd.Flags().BoolVar(&noFreeText, "no-free-text", false, "Disable the free-text description pass")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.Debug || debug)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	extractor := schedgrid.Open(args[0]).
		GridConfig(cfg.GridConfig()).
		Defaults(cfg.Defaults()).
		FreeText(cfg.FreeText && !noFreeText).
		WithLogger(logger)

	if defaultDay != "" {
		extractor = extractor.DefaultDay(defaultDay)
	}
	if rowThreshold > 0 {
		extractor = extractor.RowThreshold(rowThreshold)
	}

	entries, warnings, err := extractor.Entries()
	if err != nil {
		if errors.Is(err, schedgrid.ErrInsufficientStructure) {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		return err
	}

	for _, w := range warnings {
		logger.Warn("extraction warning", zap.String("warning", w.String()))
	}

	if outputPath != "" {
		if err := export.WriteCSVFile(outputPath, entries); err != nil {
			return err
		}
		logger.Info("wrote schedule",
			zap.String("output", outputPath),
			zap.Int("entries", len(entries)))
		return nil
	}

	return export.WriteCSV(cmd.OutOrStdout(), entries)
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
