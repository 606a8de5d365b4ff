// Package main provides the CLI entry point for dailyreport.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/config"
	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/session"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dailyreport",
		Short: "Extract and upload construction daily reports",
		Long: `dailyreport reads daily construction report workbooks (.xlsx or .xls),
one sheet per day, and outputs structured JSON or uploads it to the
reporting server.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: console or json")

	rootCmd.AddCommand(
		newExtractCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newProjectCmd(),
		newUploadCmd(),
	)
	return rootCmd
}

// setup loads configuration and attaches the logger to the command context.
func setup(cmd *cobra.Command, _ []string) error {
	// A missing .env file is normal.
	_ = godotenv.Load()

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
	}
	if logFormat != "" {
		loaded.Log.Format = logFormat
	}

	logger, err := newLogger(os.Stderr, loaded.Log.Level, loaded.Log.Format)
	if err != nil {
		return err
	}

	cfg = loaded
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}

func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch format {
	case "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q (must be console or json)", format)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func sessionStore() (*session.FileStore, error) {
	return session.NewFileStore(cfg.Session.Path)
}
