package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"solarsync/lib/runlog"
	"solarsync/services/designsync"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type historyRecorder struct {
	store runlog.Store
	runId string
}

func newHistoryRecorder(store runlog.Store, runId string) historyRecorder {
	return historyRecorder{store: store, runId: runId}
}

func (r historyRecorder) RecordResult(ctx context.Context, res designsync.Result) error {
	entry := runlog.Entry{
		RunId:      r.runId,
		ProjectId:  res.Project.Id,
		Label:      res.Project.DisplayName(),
		Outcome:    string(res.Outcome),
		Records:    res.Records,
		StartedAt:  res.StartedAt,
		FinishedAt: res.FinishedAt,
	}
	if res.Err != nil {
		entry.Error = res.Err.Error()
	}
	if res.Response != nil {
		entry.CreatedIds = res.Response.Metadata.CreatedRecordIds
	}
	return r.store.Append(ctx, entry)
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "How many results to show.")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history --history <path/to/history.db>",
	Short: "Lists the latest project results recorded by `run --history`.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyPath == "" {
			return errors.New("--history is required")
		}
		store, err := runlog.Open(historyPath)
		if err != nil {
			return fmt.Errorf("open history database: %w", err)
		}
		defer store.Close()

		entries, err := store.Latest(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		t := newTable(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Finished", "Run", "Project", "Label", "Outcome", "Records", "Created", "Error"})
		for _, e := range entries {
			t.AppendRow(table.Row{
				e.FinishedAt.Format(time.DateTime),
				e.RunId,
				e.ProjectId,
				e.Label,
				e.Outcome,
				e.Records,
				formatIds(e.CreatedIds),
				e.Error,
			})
		}
		t.Render()
		return nil
	},
}
