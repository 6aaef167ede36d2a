package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"solarsync/lib/telemetry"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	verbose     bool
	logFile     string
	historyPath string
)

// run after the command finishes, in reverse order
var cleanups []func()

var rootCmd = &cobra.Command{
	Use:   "solarsync",
	Short: "solarsync copies Aurora Solar designs into a Quickbase table.",
	// ExecuteContext prints the error once
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		closer, err := telemetry.InitSlog(telemetry.SlogOptions{
			Verbose: verbose,
			LogFile: logFile,
			Console: cmd.ErrOrStderr(),
		})
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		cleanups = append(cleanups, func() { closer.Close() })

		tel, err := telemetry.SetupFromEnv(cmd.Context(), "solarsync")
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("telemetry disabled, no telemetry.json5 found")
			return nil
		}
		if err != nil {
			slog.Warn("failed to set up telemetry", "err", err)
		}
		cleanups = append(cleanups, func() {
			err := tel.Shutdown(context.Background())
			if err != nil {
				slog.Warn("failed to flush telemetry", "err", err)
			}
		})
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "auth.json5", "The configuration file, a sibling <name>.local.<ext> overrides it.")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log at debug level.")
	flags.StringVar(&logFile, "log-file", telemetry.DefaultLogFile, "The file logs are appended to, empty to disable.")
	flags.StringVar(&historyPath, "history", "", "A SQLite database that keeps the result of every project synced.")
}

func runCleanups() {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	cleanups = nil
}

func ExecuteContext(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	runCleanups()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
