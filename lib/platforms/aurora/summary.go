package aurora

import (
	"context"
	"fmt"
)

type ArrayModule struct {
	Name  string
	Count int
}

type Array struct {
	Azimuth float64
	Module  ArrayModule
}

type DesignSummary struct {
	AnnualEnergyProduction float64
	Arrays                 []Array
}

type arrayJSON struct {
	Azimuth *float64 `json:"azimuth"`
	Module  *struct {
		Name  *string `json:"name"`
		Count *int    `json:"count"`
	} `json:"module"`
}

type summaryResponse struct {
	Design *struct {
		Arrays           *[]arrayJSON `json:"arrays"`
		EnergyProduction *struct {
			Annual *float64 `json:"annual"`
		} `json:"energy_production"`
	} `json:"design"`
}

// GetDesignSummary returns production and hardware figures of a design.
// Only the first array is required to be complete, the rest are decoded
// with zero values for whatever is missing.
func (c *Client) GetDesignSummary(ctx context.Context, designId string) (DesignSummary, error) {
	const resource = "summary"

	var res summaryResponse
	err := c.getJSON(
		ctx, resource,
		"/tenants/{tenant_id}/designs/{design_id}/summary",
		map[string]string{"design_id": designId},
		&res,
	)
	if err != nil {
		return DesignSummary{}, err
	}

	design, err := required(resource, "design", res.Design)
	if err != nil {
		return DesignSummary{}, err
	}
	production, err := required(resource, "design.energy_production", design.EnergyProduction)
	if err != nil {
		return DesignSummary{}, err
	}

	var out DesignSummary
	out.AnnualEnergyProduction, err = required(resource, "design.energy_production.annual", production.Annual)
	if err != nil {
		return DesignSummary{}, err
	}

	arrays, err := required(resource, "design.arrays", design.Arrays)
	if err != nil {
		return DesignSummary{}, err
	}
	if len(arrays) == 0 {
		return DesignSummary{}, &ShapeError{Resource: resource, Field: "design.arrays", Reason: "empty"}
	}

	out.Arrays = make([]Array, len(arrays))
	for i, a := range arrays {
		if i > 0 {
			out.Arrays[i].Azimuth = optional(a.Azimuth)
			if a.Module != nil {
				out.Arrays[i].Module.Name = optional(a.Module.Name)
				out.Arrays[i].Module.Count = optional(a.Module.Count)
			}
			continue
		}

		prefix := fmt.Sprintf("design.arrays[%d]", i)
		out.Arrays[i].Azimuth, err = required(resource, prefix+".azimuth", a.Azimuth)
		if err != nil {
			return DesignSummary{}, err
		}
		module, err := required(resource, prefix+".module", a.Module)
		if err != nil {
			return DesignSummary{}, err
		}
		out.Arrays[i].Module.Name, err = required(resource, prefix+".module.name", module.Name)
		if err != nil {
			return DesignSummary{}, err
		}
		out.Arrays[i].Module.Count, err = required(resource, prefix+".module.count", module.Count)
		if err != nil {
			return DesignSummary{}, err
		}
	}

	return out, nil
}
