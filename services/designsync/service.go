package designsync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"solarsync/lib/platforms/quickbase"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("services/designsync")
var meter = otel.Meter("services/designsync")
var projectCounter, _ = meter.Int64Counter(
	"designsync.projects",
	metric.WithDescription("projects processed, by outcome"),
)

type Project struct {
	Id    string `json:"id"`
	Label string `json:"label"`
}

// DisplayName is the label, or the id when there is none.
func (p Project) DisplayName() string {
	if p.Label == "" {
		return p.Id
	}
	return p.Label
}

type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

var errPostFailed = errors.New("quickbase post failed")

type Result struct {
	Project  Project
	Outcome  Outcome
	Records  int
	Response *quickbase.InsertRecordsResponse
	// set when Outcome is OutcomeFailed
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

type Report struct {
	Results   []Result
	Succeeded int
	Skipped   int
	Failed    int
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
	switch res.Outcome {
	case OutcomeSucceeded:
		r.Succeeded++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeFailed:
		r.Failed++
	}
}

// Recorder keeps a trace of results somewhere outside the process.
type Recorder interface {
	RecordResult(ctx context.Context, res Result) error
}

type Options struct {
	Formatter Formatter
	// receives the pretty printed response of every successful post
	Output io.Writer
	// optional
	Recorder Recorder
}

type Service struct {
	assembler Assembler
	formatter Formatter
	submitter Submitter
	output    io.Writer
	recorder  Recorder
}

func NewService(source Source, sink Sink, opts Options) Service {
	return Service{
		assembler: NewAssembler(NewExtractor(source)),
		formatter: opts.Formatter,
		submitter: NewSubmitter(sink),
		output:    opts.Output,
		recorder:  opts.Recorder,
	}
}

// Assemble builds the records of a project without posting them.
func (s Service) Assemble(ctx context.Context, projectId string) ([]Record, error) {
	return s.assembler.Assemble(ctx, projectId)
}

// Run syncs the projects one after the other. A project that fails never
// stops the ones after it, only a cancelled context does.
func (s Service) Run(ctx context.Context, projects []Project) Report {
	var report Report
	for i, project := range projects {
		if ctx.Err() != nil {
			slog.WarnContext(
				ctx, "run interrupted",
				"not_attempted", len(projects)-i,
				"err", ctx.Err(),
			)
			break
		}

		res := s.SyncProject(ctx, project)
		report.add(res)

		if s.recorder != nil {
			err := s.recorder.RecordResult(ctx, res)
			if err != nil {
				slog.WarnContext(ctx, "failed to record result", "project_id", project.Id, "err", err)
			}
		}
	}

	slog.InfoContext(
		ctx, "run finished",
		"succeeded", report.Succeeded,
		"skipped", report.Skipped,
		"failed", report.Failed,
	)
	return report
}

// SyncProject takes one project through extraction, formatting and
// submission and reports which of the three outcomes it reached.
func (s Service) SyncProject(ctx context.Context, project Project) Result {
	ctx, span := tracer.Start(ctx, "project")
	defer span.End()
	span.SetAttributes(attribute.String("project_id", project.Id))

	res := s.syncProject(ctx, project)

	span.SetAttributes(attribute.String("outcome", string(res.Outcome)))
	if res.Err != nil {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
	}
	projectCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(res.Outcome))))

	return res
}

func (s Service) syncProject(ctx context.Context, project Project) Result {
	res := Result{Project: project, StartedAt: time.Now()}
	finish := func(outcome Outcome, err error) Result {
		res.Outcome = outcome
		res.Err = err
		res.FinishedAt = time.Now()
		return res
	}

	name := project.DisplayName()
	slog.InfoContext(ctx, "processing project", "label", name, "project_id", project.Id)

	records, err := s.assembler.Assemble(ctx, project.Id)
	if err != nil {
		slog.ErrorContext(ctx, "error handling project", "label", name, "err", err)
		return finish(OutcomeFailed, err)
	}
	res.Records = len(records)
	if len(records) == 0 {
		slog.WarnContext(ctx, "no data extracted, skipping", "label", name)
		return finish(OutcomeSkipped, nil)
	}

	payload := s.formatter.Format(records)
	response := s.submitter.Submit(ctx, payload)
	if response == nil {
		slog.ErrorContext(ctx, "quickbase post failed", "label", name)
		return finish(OutcomeFailed, errPostFailed)
	}
	res.Response = response

	slog.InfoContext(ctx, "record updated", "label", name, "records", len(records))
	s.printResponse(ctx, *response)
	return finish(OutcomeSucceeded, nil)
}

func (s Service) printResponse(ctx context.Context, res quickbase.InsertRecordsResponse) {
	if s.output == nil {
		return
	}

	var buf bytes.Buffer
	var err error
	if len(res.Raw) > 0 {
		err = json.Indent(&buf, res.Raw, "", "    ")
	} else {
		var serialized []byte
		serialized, err = json.MarshalIndent(res, "", "    ")
		buf.Write(serialized)
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to format response", "err", err)
		return
	}
	fmt.Fprintln(s.output, buf.String())
}
