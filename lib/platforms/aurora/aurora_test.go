package aurora

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	_ "embed"
)

//go:embed testdata/designs.json
var designsFixture []byte

//go:embed testdata/proposals.json
var proposalsFixture []byte

//go:embed testdata/summary.json
var summaryFixture []byte

//go:embed testdata/project.json
var projectFixture []byte

type route struct {
	status int
	body   []byte
}

// newTestClient serves fixed bodies by path and asserts the auth headers
// on every request.
func newTestClient(t testing.TB, routes map[string]route) *Client {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-123" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("unexpected accept header %q", got)
		}

		rt, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if rt.status != 0 {
			w.WriteHeader(rt.status)
		}
		_, _ = w.Write(rt.body)
	}))
	t.Cleanup(srv.Close)

	return NewClient(ClientOptions{
		BaseUrl:     srv.URL,
		TenantId:    "tenant-1",
		BearerToken: "token-123",
	})
}

func TestListDesigns(t *testing.T) {
	client := newTestClient(t, map[string]route{
		"/tenants/tenant-1/projects/proj-1/designs": {body: designsFixture},
	})

	designs, err := client.ListDesigns(context.Background(), "proj-1")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []Design{
		{Id: "d-100", Name: "Design 1 - South roof", SystemSizeStc: 7.6},
		{Id: "d-200", Name: "Design 2 - Garage", SystemSizeStc: 4.0},
	}, designs)
}

func TestListDesignsEmpty(t *testing.T) {
	client := newTestClient(t, map[string]route{
		"/tenants/tenant-1/projects/proj-1/designs": {body: []byte(`{"designs": []}`)},
	})

	designs, err := client.ListDesigns(context.Background(), "proj-1")
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, designs, 0)
}

func TestListDesignsMissingField(t *testing.T) {
	client := newTestClient(t, map[string]route{
		"/tenants/tenant-1/projects/proj-1/designs": {body: []byte(`{"designs": [{"id": "d-1", "name": "x"}]}`)},
	})

	_, err := client.ListDesigns(context.Background(), "proj-1")
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	require.Equal(t, "designs", shapeErr.Resource)
	require.Equal(t, "designs[0].system_size_stc", shapeErr.Field)
}

func TestGetProposals(t *testing.T) {
	client := newTestClient(t, map[string]route{
		"/tenants/tenant-1/designs/d-100/proposals/default": {body: proposalsFixture},
	})

	proposals, err := client.GetProposals(context.Background(), "d-100")
	if err != nil {
		t.Fatal(err)
	}
	require.Len(t, proposals, 3)
	require.Equal(t, "https://aurora.example/proposals/p-1", proposals[0].ProposalLink)
	require.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), proposals[0].UpdatedAt.UTC())
	require.Equal(t, "", proposals[2].ProposalLink)
	require.Equal(t, 345*time.Millisecond, time.Duration(proposals[2].UpdatedAt.Nanosecond()))
}

func TestGetProposalsSingleObject(t *testing.T) {
	client := newTestClient(t, map[string]route{
		"/tenants/tenant-1/designs/d-100/proposals/default": {body: []byte(`{
			"proposal": {"updated_at": "2024-01-02T03:04:05Z", "proposal_link": "https://aurora.example/p"}
		}`)},
	})

	proposals, err := client.GetProposals(context.Background(), "d-100")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []Proposal{{
		UpdatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		ProposalLink: "https://aurora.example/p",
	}}, proposals)
}

func TestGetProposalsBadTimestamp(t *testing.T) {
	client := newTestClient(t, map[string]route{
		"/tenants/tenant-1/designs/d-100/proposals/default": {body: []byte(`{
			"proposal": {"updated_at": "yesterday", "proposal_link": "https://aurora.example/p"}
		}`)},
	})

	_, err := client.GetProposals(context.Background(), "d-100")
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	require.Equal(t, "proposal[0].updated_at", shapeErr.Field)
	require.NotEmpty(t, shapeErr.Reason)
}

func TestGetDesignSummary(t *testing.T) {
	client := newTestClient(t, map[string]route{
		"/tenants/tenant-1/designs/d-100/summary": {body: summaryFixture},
	})

	summary, err := client.GetDesignSummary(context.Background(), "d-100")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 10523.4, summary.AnnualEnergyProduction)
	require.Len(t, summary.Arrays, 2)
	require.Equal(t, Array{
		Azimuth: 182.5,
		Module:  ArrayModule{Name: "Q.PEAK DUO BLK ML-G10+ 400", Count: 19},
	}, summary.Arrays[0])
	require.Equal(t, Array{Azimuth: 92}, summary.Arrays[1])
}

func TestGetDesignSummaryShapeErrors(t *testing.T) {
	testCases := []struct {
		body  string
		field string
	}{
		{body: `{}`, field: "design"},
		{body: `{"design": {"arrays": []}}`, field: "design.energy_production"},
		{body: `{"design": {"energy_production": {"annual": 1}}}`, field: "design.arrays"},
		{body: `{"design": {"energy_production": {"annual": 1}, "arrays": []}}`, field: "design.arrays"},
		{body: `{"design": {"energy_production": {"annual": 1}, "arrays": [{"azimuth": 180}]}}`, field: "design.arrays[0].module"},
		{body: `{"design": {"energy_production": {"annual": 1}, "arrays": [{"azimuth": 180, "module": {"name": "m"}}]}}`, field: "design.arrays[0].module.count"},
	}

	for _, test := range testCases {
		client := newTestClient(t, map[string]route{
			"/tenants/tenant-1/designs/d-1/summary": {body: []byte(test.body)},
		})
		_, err := client.GetDesignSummary(context.Background(), "d-1")

		var shapeErr *ShapeError
		require.ErrorAs(t, err, &shapeErr, test.body)
		require.Equal(t, test.field, shapeErr.Field, test.body)
	}
}

func TestGetProject(t *testing.T) {
	client := newTestClient(t, map[string]route{
		"/tenants/tenant-1/projects/proj-1": {body: projectFixture},
	})

	project, err := client.GetProject(context.Background(), "proj-1")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, Project{
		Id:              "proj-1",
		Name:            "Smith Residence",
		PropertyAddress: "123 Main St, Sacramento, CA 95814, USA",
		Address: Address{
			StreetAddress: "123 Main St",
			City:          "Sacramento",
			Region:        "CA",
			PostalCode:    "95814",
			Country:       "USA",
		},
	}, project)
}

func TestStatusError(t *testing.T) {
	client := newTestClient(t, map[string]route{
		"/tenants/tenant-1/projects/proj-1": {status: http.StatusUnauthorized, body: []byte(`{"message":"bad token"}`)},
	})

	_, err := client.GetProject(context.Background(), "proj-1")
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	require.Equal(t, "project", statusErr.Resource)
	require.Contains(t, statusErr.Error(), "bad token")
}

func TestMalformedJSON(t *testing.T) {
	client := newTestClient(t, map[string]route{
		"/tenants/tenant-1/projects/proj-1/designs": {body: []byte(`{"designs": [`)},
	})

	_, err := client.ListDesigns(context.Background(), "proj-1")
	require.ErrorContains(t, err, "parse json response")
}
