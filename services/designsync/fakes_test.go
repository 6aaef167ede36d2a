package designsync

import (
	"context"
	"fmt"
	"sync"

	"solarsync/lib/platforms/aurora"
	"solarsync/lib/platforms/quickbase"
)

type fakeSource struct {
	designs   map[string][]aurora.Design
	proposals map[string][]aurora.Proposal
	summaries map[string]aurora.DesignSummary
	projects  map[string]aurora.Project
	// keyed by `<method>:<id>`
	errs  map[string]error
	calls []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		designs:   map[string][]aurora.Design{},
		proposals: map[string][]aurora.Proposal{},
		summaries: map[string]aurora.DesignSummary{},
		projects:  map[string]aurora.Project{},
		errs:      map[string]error{},
	}
}

func (s *fakeSource) call(method, id string) error {
	key := fmt.Sprintf("%s:%s", method, id)
	s.calls = append(s.calls, key)
	return s.errs[key]
}

func (s *fakeSource) ListDesigns(_ context.Context, projectId string) ([]aurora.Design, error) {
	if err := s.call("designs", projectId); err != nil {
		return nil, err
	}
	return s.designs[projectId], nil
}

func (s *fakeSource) GetProposals(_ context.Context, designId string) ([]aurora.Proposal, error) {
	if err := s.call("proposals", designId); err != nil {
		return nil, err
	}
	return s.proposals[designId], nil
}

func (s *fakeSource) GetDesignSummary(_ context.Context, designId string) (aurora.DesignSummary, error) {
	if err := s.call("summary", designId); err != nil {
		return aurora.DesignSummary{}, err
	}
	return s.summaries[designId], nil
}

func (s *fakeSource) GetProject(_ context.Context, projectId string) (aurora.Project, error) {
	if err := s.call("project", projectId); err != nil {
		return aurora.Project{}, err
	}
	return s.projects[projectId], nil
}

type fakeSink struct {
	mutex    sync.Mutex
	payloads []quickbase.InsertRecordsRequest
	// table ids that answer with an error
	fail map[string]error
}

func (s *fakeSink) InsertRecords(_ context.Context, req quickbase.InsertRecordsRequest) (quickbase.InsertRecordsResponse, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.payloads = append(s.payloads, req)

	if err, ok := s.fail[req.To]; ok {
		return quickbase.InsertRecordsResponse{}, err
	}
	ids := make([]int, len(req.Data))
	for i := range req.Data {
		ids[i] = 100 + i
	}
	return quickbase.InsertRecordsResponse{
		Metadata: quickbase.InsertRecordsMetadata{
			CreatedRecordIds:              ids,
			TotalNumberOfRecordsProcessed: len(req.Data),
		},
	}, nil
}

// addProject registers a project whose designs each have one proposal and
// a one array summary.
func (s *fakeSource) addProject(projectId string, designIds ...string) {
	s.projects[projectId] = aurora.Project{
		Id: projectId,
		Address: aurora.Address{
			StreetAddress: "123 Main St",
			City:          "Sacramento",
			Region:        "CA",
			PostalCode:    "95814",
			Country:       "USA",
		},
	}
	designs := make([]aurora.Design, len(designIds))
	for i, id := range designIds {
		designs[i] = aurora.Design{Id: id, Name: "Design " + id, SystemSizeStc: 7.6}
		s.proposals[id] = []aurora.Proposal{{ProposalLink: "https://aurora.example/" + id}}
		s.summaries[id] = aurora.DesignSummary{
			AnnualEnergyProduction: 10000,
			Arrays: []aurora.Array{{
				Azimuth: 180,
				Module:  aurora.ArrayModule{Name: "Module " + id, Count: 20},
			}},
		}
	}
	s.designs[projectId] = designs
}
