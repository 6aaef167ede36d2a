package designsync

import (
	"context"
	"errors"
	"log/slog"

	"solarsync/lib/platforms/quickbase"
)

// Sink is where formatted payloads go.
type Sink interface {
	InsertRecords(ctx context.Context, req quickbase.InsertRecordsRequest) (quickbase.InsertRecordsResponse, error)
}

type Submitter struct {
	sink Sink
}

func NewSubmitter(sink Sink) Submitter {
	return Submitter{sink: sink}
}

// Submit sends the payload once. Failures are logged here and reported as a
// nil response, they are never retried.
func (s Submitter) Submit(ctx context.Context, payload quickbase.InsertRecordsRequest) *quickbase.InsertRecordsResponse {
	res, err := s.sink.InsertRecords(ctx, payload)
	if err != nil {
		var statusErr *quickbase.StatusError
		if errors.As(err, &statusErr) {
			slog.ErrorContext(
				ctx, "error posting records",
				"table", payload.To,
				"status", statusErr.StatusCode,
				"server_answer", statusErr.Body,
			)
			return nil
		}
		slog.ErrorContext(ctx, "error posting records", "table", payload.To, "err", err)
		return nil
	}

	slog.InfoContext(
		ctx, "records posted",
		"table", payload.To,
		"created", len(res.Metadata.CreatedRecordIds),
		"updated", len(res.Metadata.UpdatedRecordIds),
		"unchanged", len(res.Metadata.UnchangedRecordIds),
	)
	return &res
}
