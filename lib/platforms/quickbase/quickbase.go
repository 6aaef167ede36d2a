// Package quickbase is a client for the Quickbase JSON records API.
package quickbase

import (
	"context"
	"encoding/json"
	"fmt"

	"solarsync/lib/restyutil"
	"solarsync/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("platforms/quickbase")

const DefaultBaseUrl = "https://api.quickbase.com"

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl string
	// the realm the table lives in, ex. `mycompany.quickbase.com`
	RealmHostname string
	UserToken     string
	Output        restyutil.InstrumentOutput
}

type Client struct {
	http *resty.Client
}

func NewClient(opts ClientOptions) *Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("QB-Realm-Hostname", opts.RealmHostname)
	client.SetHeader("Authorization", fmt.Sprintf("QB-USER-TOKEN %s", opts.UserToken))

	telemetry.InstrumentResty(client, "platforms/quickbase/http")
	restyutil.InstrumentClient(client, "quickbase", opts.Output)

	return &Client{http: client}
}

// StatusError is returned when the API answers with a non-2xx status. Body
// holds the server answer, Quickbase puts a `message` and `description` there.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("quickbase: status %d: %s", e.StatusCode, e.Body)
}

// InsertRecords creates (or upserts, per the table's key field) the records
// in the request.
func (c *Client) InsertRecords(ctx context.Context, req InsertRecordsRequest) (InsertRecordsResponse, error) {
	ctx, span := tracer.Start(ctx, "records:insert")
	defer span.End()

	span.SetAttributes(
		attribute.String("quickbase.table", req.To),
		attribute.Int("quickbase.records", len(req.Data)),
	)

	res, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/v1/records")
	if err != nil {
		span.SetStatus(codes.Error, "failed to post")
		return InsertRecordsResponse{}, fmt.Errorf("quickbase: %w", err)
	}
	if !res.IsSuccess() {
		span.SetStatus(codes.Error, res.Status())
		return InsertRecordsResponse{}, &StatusError{
			StatusCode: res.StatusCode(),
			Body:       res.String(),
		}
	}

	var out InsertRecordsResponse
	err = json.Unmarshal(res.Body(), &out)
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse json response")
		return InsertRecordsResponse{}, fmt.Errorf("quickbase: parse json response: %w", err)
	}
	out.Raw = json.RawMessage(res.Body())
	return out, nil
}
