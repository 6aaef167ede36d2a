package commands

import (
	"fmt"
	"log/slog"

	"solarsync/lib/restyutil"
	"solarsync/lib/runlog"
	"solarsync/services/designsync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	runProjects []string
	runDryRun   bool
	runDumpHttp string
	runStrict   bool
)

func init() {
	flags := runCmd.Flags()
	flags.StringSliceVarP(&runProjects, "project", "p", nil, "Only sync these project ids (repeatable), they must be in project_ids.")
	flags.BoolVar(&runDryRun, "dry-run", false, "Print the payloads instead of posting them to Quickbase.")
	flags.StringVar(&runDumpHttp, "dump-http", "", "Write every HTTP exchange to files in this directory.")
	flags.BoolVar(&runStrict, "strict", false, "Exit with status 1 if any project failed.")
	rootCmd.AddCommand(runCmd)
}

func httpOutput(dir string) (restyutil.InstrumentOutput, error) {
	if dir == "" {
		return nil, nil
	}
	out, err := restyutil.NewFilesystemOutput(dir)
	if err != nil {
		return nil, fmt.Errorf("create http dump directory: %w", err)
	}
	return out, nil
}

var runCmd = &cobra.Command{
	Use:   "run [--project <id>]... [--dry-run]",
	Short: "Syncs every configured project, one after the other.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustReadConfig()
		projects, err := cfg.SelectProjects(runProjects)
		if err != nil {
			return fmt.Errorf("invalid --project: %w", err)
		}

		output, err := httpOutput(runDumpHttp)
		if err != nil {
			return err
		}
		var sink designsync.Sink = cfg.QuickbaseClient(output)
		if runDryRun {
			sink = designsync.DryRunSink{Output: cmd.OutOrStdout()}
		}

		opts := designsync.Options{
			Formatter: cfg.Formatter(),
			Output:    cmd.OutOrStdout(),
		}
		if historyPath != "" {
			store, err := runlog.Open(historyPath)
			if err != nil {
				return fmt.Errorf("open history database: %w", err)
			}
			defer store.Close()
			recorder := newHistoryRecorder(store, uuid.NewString())
			slog.Info("recording results", "history", historyPath, "run_id", recorder.runId)
			opts.Recorder = recorder
		}

		service := designsync.NewService(cfg.AuroraClient(output), sink, opts)
		report := service.Run(cmd.Context(), projects)
		renderReport(cmd.OutOrStdout(), report)

		if runStrict && report.Failed > 0 {
			return fmt.Errorf("%d of %d projects failed", report.Failed, len(report.Results))
		}
		return nil
	},
}
