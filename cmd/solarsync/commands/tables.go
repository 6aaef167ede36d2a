package commands

import (
	"fmt"
	"io"
	"strings"

	"solarsync/services/designsync"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func formatIds(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ",")
}

func renderReport(w io.Writer, report designsync.Report) {
	t := newTable(w)
	t.SetTitle("Sync summary")
	t.AppendHeader(table.Row{"Project", "Label", "Outcome", "Records", "Detail"})
	for _, res := range report.Results {
		detail := ""
		switch {
		case res.Err != nil:
			detail = res.Err.Error()
		case res.Response != nil:
			detail = "created " + formatIds(res.Response.Metadata.CreatedRecordIds)
		}
		t.AppendRow(table.Row{
			res.Project.Id,
			res.Project.DisplayName(),
			string(res.Outcome),
			res.Records,
			detail,
		})
	}
	t.AppendFooter(table.Row{
		"",
		"",
		fmt.Sprintf(
			"%d succeeded, %d skipped, %d failed",
			report.Succeeded, report.Skipped, report.Failed,
		),
		"",
		"",
	})
	t.Render()
}

func renderRecords(w io.Writer, projectId string, records []designsync.Record) {
	t := newTable(w)
	t.SetTitle(fmt.Sprintf("Project %s", projectId))

	header := table.Row{}
	for _, c := range designsync.Columns {
		header = append(header, c)
	}
	t.AppendHeader(header)

	for _, r := range records {
		row := table.Row{}
		for _, f := range r.Fields() {
			row = append(row, f.Value)
		}
		t.AppendRow(row)
	}
	t.Render()
}
