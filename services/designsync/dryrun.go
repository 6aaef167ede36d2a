package designsync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"solarsync/lib/platforms/quickbase"
)

// DryRunSink prints payloads instead of sending them and answers as if
// every record had been processed.
type DryRunSink struct {
	Output io.Writer
}

func (s DryRunSink) InsertRecords(_ context.Context, req quickbase.InsertRecordsRequest) (quickbase.InsertRecordsResponse, error) {
	serialized, err := json.MarshalIndent(req, "", "    ")
	if err != nil {
		return quickbase.InsertRecordsResponse{}, err
	}
	if s.Output != nil {
		_, err = fmt.Fprintln(s.Output, string(serialized))
		if err != nil {
			return quickbase.InsertRecordsResponse{}, err
		}
	}
	return quickbase.InsertRecordsResponse{
		Metadata: quickbase.InsertRecordsMetadata{
			TotalNumberOfRecordsProcessed: len(req.Data),
		},
	}, nil
}
