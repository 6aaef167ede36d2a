// Package runlog keeps a history of sync results in a SQLite database.
package runlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"solarsync/lib/runlog/db"

	_ "modernc.org/sqlite"
)

type Entry struct {
	RunId      string
	ProjectId  string
	Label      string
	Outcome    string
	Records    int
	CreatedIds []int
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path, `:memory:` works too.
func Open(path string) (Store, error) {
	sqlite, err := sql.Open("sqlite", path)
	if err != nil {
		return Store{}, err
	}
	_, err = sqlite.Exec(db.Schema)
	if err != nil {
		sqlite.Close()
		return Store{}, fmt.Errorf("apply schema: %w", err)
	}
	return Store{db: sqlite}, nil
}

func (s Store) Close() error {
	return s.db.Close()
}

func (s Store) Append(ctx context.Context, entry Entry) error {
	createdIds := entry.CreatedIds
	if createdIds == nil {
		createdIds = []int{}
	}
	serialized, err := json.Marshal(createdIds)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(
		ctx,
		`insert into project_result(
			run_id, project_id, label, outcome, records,
			created_ids, error, started_at, finished_at
		) values (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunId, entry.ProjectId, entry.Label, entry.Outcome, entry.Records,
		string(serialized), entry.Error,
		entry.StartedAt.UnixMilli(), entry.FinishedAt.UnixMilli(),
	)
	return err
}

// Latest returns up to limit entries, most recent first.
func (s Store) Latest(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`select run_id, project_id, label, outcome, records,
			created_ids, error, started_at, finished_at
		from project_result
		order by finished_at desc, id desc
		limit ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdIds string
		var startedAt, finishedAt int64
		err := rows.Scan(
			&e.RunId, &e.ProjectId, &e.Label, &e.Outcome, &e.Records,
			&createdIds, &e.Error, &startedAt, &finishedAt,
		)
		if err != nil {
			return nil, err
		}
		err = json.Unmarshal([]byte(createdIds), &e.CreatedIds)
		if err != nil {
			return nil, fmt.Errorf("decode created ids of run %s: %w", e.RunId, err)
		}
		e.StartedAt = time.UnixMilli(startedAt)
		e.FinishedAt = time.UnixMilli(finishedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
