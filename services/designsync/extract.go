package designsync

import (
	"context"

	"solarsync/lib/platforms/aurora"
	"solarsync/lib/usstates"
)

// Source is the subset of the Aurora API the extractor reads from.
type Source interface {
	ListDesigns(ctx context.Context, projectId string) ([]aurora.Design, error)
	GetProposals(ctx context.Context, designId string) ([]aurora.Proposal, error)
	GetDesignSummary(ctx context.Context, designId string) (aurora.DesignSummary, error)
	GetProject(ctx context.Context, projectId string) (aurora.Project, error)
}

// Extractor narrows each Aurora response down to the fields the destination
// table needs.
type Extractor struct {
	source Source
}

func NewExtractor(source Source) Extractor {
	return Extractor{source: source}
}

func (e Extractor) GetDesigns(ctx context.Context, projectId string) ([]DesignRow, error) {
	designs, err := e.source.ListDesigns(ctx, projectId)
	if err != nil {
		return nil, err
	}
	rows := make([]DesignRow, len(designs))
	for i, d := range designs {
		rows[i] = DesignRow{
			DesignId:   d.Id,
			Name:       d.Name,
			SystemSize: d.SystemSizeStc,
		}
	}
	return rows, nil
}

// LatestProposal picks the proposal updated last. On equal timestamps the
// one that comes first in the list wins.
func LatestProposal(proposals []aurora.Proposal) (aurora.Proposal, bool) {
	if len(proposals) == 0 {
		return aurora.Proposal{}, false
	}
	latest := proposals[0]
	for _, p := range proposals[1:] {
		if p.UpdatedAt.After(latest.UpdatedAt) {
			latest = p
		}
	}
	return latest, true
}

func (e Extractor) GetLatestProposal(ctx context.Context, designId string) (ProposalRow, error) {
	proposals, err := e.source.GetProposals(ctx, designId)
	if err != nil {
		return ProposalRow{}, err
	}
	latest, ok := LatestProposal(proposals)
	if !ok {
		return ProposalRow{}, &aurora.ShapeError{Resource: "proposal", Field: "proposal", Reason: "empty"}
	}
	return ProposalRow{UpdatedAt: latest.UpdatedAt, Link: latest.ProposalLink}, nil
}

// GetSummary only reads the first array of the design, additional arrays
// are ignored.
func (e Extractor) GetSummary(ctx context.Context, designId string) (SummaryRow, error) {
	summary, err := e.source.GetDesignSummary(ctx, designId)
	if err != nil {
		return SummaryRow{}, err
	}
	if len(summary.Arrays) == 0 {
		return SummaryRow{}, &aurora.ShapeError{Resource: "summary", Field: "design.arrays", Reason: "empty"}
	}
	first := summary.Arrays[0]
	return SummaryRow{
		AnnualProduction: summary.AnnualEnergyProduction,
		Azimuth:          first.Azimuth,
		ModuleName:       first.Module.Name,
		ModuleCount:      first.Module.Count,
	}, nil
}

func (e Extractor) GetAddress(ctx context.Context, projectId string) (AddressRow, error) {
	project, err := e.source.GetProject(ctx, projectId)
	if err != nil {
		return AddressRow{}, err
	}
	addr := project.Address
	return AddressRow{
		Street:     addr.StreetAddress,
		Street2:    "",
		City:       addr.City,
		State:      usstates.Normalize(addr.Region),
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
	}, nil
}
