// Package main implements the triage CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/amonks/triage/internal/config"
	"github.com/amonks/triage/internal/logging"
	"github.com/amonks/triage/internal/paths"
	"github.com/amonks/triage/tracker"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "triage",
	Short: "Triage - a priority queue for incoming work",
	Long: `Triage tracks incoming work items from email, phone, and tickets.

Tasks move from pending to in_progress with "next", to done with
"complete", and to the archive file with "archive" once they have been
done for longer than the configured number of days.`,
	SilenceUsage: true,
}

var (
	rootDataDir string
	rootDebug   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDataDir, "data-dir", "", "Directory holding the task files (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Write debug logs to stderr")
}

// loadConfig reads configuration for the current directory and applies
// the --data-dir override.
func loadConfig() (*config.Config, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	dataDir, err := paths.ResolveWithDefault(rootDataDir, func() (string, error) {
		return cfg.Storage.DataDir, nil
	})
	if err != nil {
		return nil, err
	}
	dataDir, err = paths.ExpandHome(dataDir)
	if err != nil {
		return nil, err
	}
	cfg.Storage.DataDir = dataDir
	return cfg, nil
}

// openTracker opens a tracker session over the configured task files.
func openTracker() (*tracker.Tracker, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return tracker.Open(tracker.Options{
		TasksPath:        cfg.TasksPath(),
		ArchivePath:      cfg.ArchivePath(),
		ArchiveAfterDays: cfg.Archive.AfterDays,
		Logger:           logging.New(rootDebug),
	})
}
