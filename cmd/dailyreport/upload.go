package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ukaji3/dailyreport-go/pkg/dailyreport"
	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/upload"
)

var (
	projectID  int
	reporterID int
	overwrite  bool
	dryRun     bool
)

func newUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload [input.xlsx]",
		Short: "Extract daily reports and import them into the project",
		Args:  cobra.ExactArgs(1),
		RunE:  runUpload,
	}

	cmd.Flags().IntVar(&projectID, "project-id", 0, "Target project (default: the user's project)")
	cmd.Flags().IntVar(&reporterID, "reporter-id", 0, "Reporter user ID (default: the logged-in user)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite reports that already exist")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the request payload instead of uploading")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Sheets parsed in parallel (default from config)")
	cmd.Flags().BoolVar(&skipUnreadable, "skip-unreadable", false, "Skip sheets that cannot be read")
	return cmd
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	reports, err := dailyreport.Extract(ctx, args[0], extractOptions(cmd))
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	if len(reports) == 0 {
		return upload.ErrNoReports
	}

	batch := upload.Batch{
		Reports:           reports,
		ProjectID:         projectID,
		ReporterID:        reporterID,
		OverwriteExisting: overwrite,
	}

	// Dry runs never touch the server, so unset ids stay zero.
	if dryRun {
		payload, err := upload.NewPayload(batch)
		if err != nil {
			return err
		}
		data, err := payload.JSON(true)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	sess, err := loadSession()
	if err != nil {
		return err
	}
	client := upload.NewClient(cfg.Server.Timeout)

	if batch.ReporterID == 0 {
		batch.ReporterID = sess.UserID
	}
	if batch.ProjectID == 0 {
		info, err := client.MyProject(ctx, sess)
		if err != nil {
			return fmt.Errorf("failed to resolve project: %w", err)
		}
		batch.ProjectID = info.ID
		logger.Info().Int("project_id", info.ID).Str("project", info.Name).Msg("using bound project")
	}

	res, err := client.BatchImport(ctx, sess, batch)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "total %d, success %d, failed %d, skipped %d\n",
		res.TotalCount, res.SuccessCount, res.FailedCount, res.SkippedCount)
	if len(res.FailedReports) > 0 && string(res.FailedReports) != "[]" {
		fmt.Fprintf(cmd.OutOrStdout(), "failed reports: %s\n", res.FailedReports)
	}
	return nil
}
