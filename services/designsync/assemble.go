package designsync

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
)

type Assembler struct {
	extractor Extractor
}

func NewAssembler(extractor Extractor) Assembler {
	return Assembler{extractor: extractor}
}

// Assemble builds one record per design of the project, in the order the
// API lists the designs. A project without designs yields no records and no
// error, its address is not fetched.
func (a Assembler) Assemble(ctx context.Context, projectId string) ([]Record, error) {
	ctx, span := tracer.Start(ctx, "assemble")
	defer span.End()
	span.SetAttributes(attribute.String("project_id", projectId))

	designs, err := a.extractor.GetDesigns(ctx, projectId)
	if err != nil {
		return nil, fmt.Errorf("get designs: %w", err)
	}
	if len(designs) == 0 {
		return nil, nil
	}

	address, err := a.extractor.GetAddress(ctx, projectId)
	if err != nil {
		return nil, fmt.Errorf("get address: %w", err)
	}

	records := make([]Record, 0, len(designs))
	for _, design := range designs {
		slog.InfoContext(ctx, "processing design", "project_id", projectId, "design_id", design.DesignId)

		proposal, err := a.extractor.GetLatestProposal(ctx, design.DesignId)
		if err != nil {
			return nil, fmt.Errorf("design %s: get latest proposal: %w", design.DesignId, err)
		}
		summary, err := a.extractor.GetSummary(ctx, design.DesignId)
		if err != nil {
			return nil, fmt.Errorf("design %s: get summary: %w", design.DesignId, err)
		}

		records = append(records, BuildRecord(design, proposal, summary, address))
	}

	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}
