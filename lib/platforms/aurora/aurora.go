// Package aurora is a client for the read-only parts of the Aurora Solar
// REST API that describe a project and its designs.
package aurora

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

var tracer = otel.Tracer("platforms/aurora")

const DefaultBaseUrl = "https://api-sandbox.aurorasolar.com"

type ClientOptions struct {
	// defaults to DefaultBaseUrl
	BaseUrl     string
	TenantId    string
	BearerToken string
	// if set, every exchange is dumped to it
	Output restyutil.InstrumentOutput
}

type Client struct {
	http     *resty.Client
	tenantId string
}

func NewClient(opts ClientOptions) *Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetHeader("accept", "application/json")
	client.SetAuthToken(opts.BearerToken)

	telemetry.InstrumentResty(client, "platforms/aurora/http")
	restyutil.InstrumentClient(client, "aurora", opts.Output)

	return &Client{http: client, tenantId: opts.TenantId}
}

// getJSON issues an authenticated GET against path (with `{tenant_id}`
// filled in) and decodes the body into out. Any non-2xx status is a
// StatusError.
func (c *Client) getJSON(ctx context.Context, resource, path string, params map[string]string, out any) error {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("get:%s", resource))
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetPathParam("tenant_id", c.tenantId).
		SetPathParams(params).
		Get(path)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch")
		return fmt.Errorf("%s: %w", resource, err)
	}
	span.SetAttributes(attribute.Int("http.status_code", res.StatusCode()))

	if !res.IsSuccess() {
		span.SetStatus(codes.Error, res.Status())
		return &StatusError{
			Resource:   resource,
			Method:     res.Request.Method,
			Url:        res.Request.URL,
			StatusCode: res.StatusCode(),
			Body:       res.String(),
		}
	}

	err = json.Unmarshal(res.Body(), out)
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse json response")
		return fmt.Errorf("%s: parse json response: %w", resource, err)
	}
	return nil
}
