package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/upload"
)

func newProjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project",
		Short: "Show the project bound to the logged-in user",
		Args:  cobra.NoArgs,
		RunE:  runProject,
	}
}

func runProject(cmd *cobra.Command, _ []string) error {
	sess, err := loadSession()
	if err != nil {
		return err
	}

	info, err := upload.NewClient(cfg.Server.Timeout).MyProject(cmd.Context(), sess)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%d\n", info.ID)
	fmt.Fprintf(tw, "Name\t%s\n", info.Name)
	fmt.Fprintf(tw, "Type\t%s\n", info.TypeDisplayName)
	fmt.Fprintf(tw, "Status\t%s\n", info.StatusDisplayName)
	fmt.Fprintf(tw, "Manager\t%s\n", info.Manager)
	if info.CompletionProgress != nil {
		fmt.Fprintf(tw, "Progress\t%.1f%%\n", *info.CompletionProgress)
	}
	return tw.Flush()
}
