// Package cli provides the command-line interface for thinkhire.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Urvashi-146/ThinkHire/internal/client"
	"github.com/Urvashi-146/ThinkHire/internal/config"
	"github.com/Urvashi-146/ThinkHire/internal/metrics"
	"github.com/Urvashi-146/ThinkHire/internal/render"
	"github.com/Urvashi-146/ThinkHire/internal/submission"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose     bool
	backendFlag string
	timeoutFlag time.Duration
	themeFlag   string

	// Resolved once per invocation in PersistentPreRunE
	cfg        config.Config
	logger     = slog.New(slog.DiscardHandler)
	logCleanup func() error
	collector  *metrics.Collector
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "thinkhire",
	Short: "Submit a résumé for skill extraction and job matching",
	Long: `ThinkHire sends a résumé (PDF, TXT, or pasted text) to the analysis
service and shows the extracted skills and the job postings ranked by skill
overlap.

The backend URL is read from THINKHIRE_BACKEND_URL (or a .env file) and can be
overridden per invocation with --backend.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup for version and help commands
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		applyFlags(cmd)

		if _, err := render.ThemeByName(cfg.Theme); err != nil {
			return err
		}

		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		logger, logCleanup = config.SetupLogger(cfg.LogFile, level, consoleWriter(cmd))
		collector = metrics.NewCollector()

		logger.Debug("configuration loaded",
			"backend", cfg.BackendURL,
			"timeout", cfg.Timeout.String(),
			"theme", cfg.Theme,
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			if err := logCleanup(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	},
}

// applyFlags overrides loaded configuration with explicitly set flags.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.BackendURL = strings.TrimRight(backendFlag, "/")
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeoutFlag
	}
	if flags.Changed("theme") {
		cfg.Theme = themeFlag
	}
}

// consoleWriter returns where console logs go. The interactive UI owns the
// terminal, and plain commands only stream logs with --verbose.
func consoleWriter(cmd *cobra.Command) io.Writer {
	if cmd.Name() == "ui" || !verbose {
		return io.Discard
	}
	return os.Stderr
}

// newClient creates the transport for the resolved configuration.
func newClient() *client.Client {
	return client.New(cfg, logger)
}

// newController wires a submission controller to the transport.
func newController(c *client.Client) *submission.Controller {
	return submission.New(c,
		submission.WithLogger(logger),
		submission.WithMetrics(collector),
		submission.WithTimeout(cfg.Timeout),
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logs on stderr)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", config.DefaultBackendURL, "analysis service base URL")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", config.DefaultTimeout, "request timeout")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", config.DefaultTheme, "visual theme (classic, neon)")

	// Add subcommands
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(fetchJobsCmd)
	rootCmd.AddCommand(inspectCmd)
}
