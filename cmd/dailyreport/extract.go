package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/dailyreport-go/pkg/dailyreport"
	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/models"
	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/output"
)

var (
	outputPath     string
	pretty         bool
	sheetsDir      string
	concurrency    int
	skipUnreadable bool
	summary        bool
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Extract daily reports from a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Sheets parsed in parallel (default from config)")
	cmd.Flags().BoolVar(&skipUnreadable, "skip-unreadable", false, "Skip sheets that cannot be read")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print a per-sheet summary to stderr")
	return cmd
}

// extractOptions merges command flags over the loaded configuration.
func extractOptions(cmd *cobra.Command) dailyreport.Options {
	opts := dailyreport.DefaultOptions()
	opts.Layout = cfg.Layout
	opts.Concurrency = cfg.Extract.Concurrency
	opts.SkipUnreadableSheets = cfg.Extract.SkipUnreadable

	if cmd.Flags().Changed("concurrency") {
		opts.Concurrency = concurrency
	}
	if cmd.Flags().Changed("skip-unreadable") {
		opts.SkipUnreadableSheets = skipUnreadable
	}
	return opts
}

func runExtract(cmd *cobra.Command, args []string) error {
	reports, err := dailyreport.Extract(cmd.Context(), args[0], extractOptions(cmd))
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(reports, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(reports, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	if summary {
		return output.WriteSummary(cmd.ErrOrStderr(), reports)
	}
	return nil
}

var fileNameReplacer = strings.NewReplacer("/", "_", "\\", "_", ":", "_")

func writeSheetFiles(reports []models.DailyReport, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range reports {
		jsonData, err := output.ReportToJSON(&reports[i], pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, fileNameReplacer.Replace(reports[i].ReportDate)+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
