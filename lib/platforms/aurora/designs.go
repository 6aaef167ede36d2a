package aurora

import (
	"context"
	"fmt"
)

type Design struct {
	Id            string
	Name          string
	SystemSizeStc float64
}

type designJSON struct {
	Id            *string  `json:"id"`
	Name          *string  `json:"name"`
	SystemSizeStc *float64 `json:"system_size_stc"`
}

type designsResponse struct {
	Designs *[]designJSON `json:"designs"`
}

// ListDesigns returns every design under a project in API order.
func (c *Client) ListDesigns(ctx context.Context, projectId string) ([]Design, error) {
	const resource = "designs"

	var res designsResponse
	err := c.getJSON(
		ctx, resource,
		"/tenants/{tenant_id}/projects/{project_id}/designs",
		map[string]string{"project_id": projectId},
		&res,
	)
	if err != nil {
		return nil, err
	}
	list, err := required(resource, "designs", res.Designs)
	if err != nil {
		return nil, err
	}

	designs := make([]Design, len(list))
	for i, d := range list {
		prefix := fmt.Sprintf("designs[%d]", i)
		if designs[i].Id, err = required(resource, prefix+".id", d.Id); err != nil {
			return nil, err
		}
		if designs[i].Name, err = required(resource, prefix+".name", d.Name); err != nil {
			return nil, err
		}
		if designs[i].SystemSizeStc, err = required(resource, prefix+".system_size_stc", d.SystemSizeStc); err != nil {
			return nil, err
		}
	}
	return designs, nil
}
