package aurora

import "context"

type Address struct {
	StreetAddress string
	City          string
	// two letter code for US addresses
	Region     string
	PostalCode string
	Country    string
}

type Project struct {
	Id              string
	Name            string
	PropertyAddress string
	Address         Address
}

type projectResponse struct {
	Project *struct {
		Id       *string `json:"id"`
		Name     *string `json:"name"`
		Location *struct {
			PropertyAddress           *string `json:"property_address"`
			PropertyAddressComponents *struct {
				StreetAddress *string `json:"street_address"`
				City          *string `json:"city"`
				Region        *string `json:"region"`
				PostalCode    *string `json:"postal_code"`
				Country       *string `json:"country"`
			} `json:"property_address_components"`
		} `json:"location"`
	} `json:"project"`
}

// GetProject returns a project and its property address. Individual address
// components may be absent in the API and come back empty.
func (c *Client) GetProject(ctx context.Context, projectId string) (Project, error) {
	const resource = "project"

	var res projectResponse
	err := c.getJSON(
		ctx, resource,
		"/tenants/{tenant_id}/projects/{project_id}",
		map[string]string{"project_id": projectId},
		&res,
	)
	if err != nil {
		return Project{}, err
	}

	project, err := required(resource, "project", res.Project)
	if err != nil {
		return Project{}, err
	}
	location, err := required(resource, "project.location", project.Location)
	if err != nil {
		return Project{}, err
	}
	components, err := required(resource, "project.location.property_address_components", location.PropertyAddressComponents)
	if err != nil {
		return Project{}, err
	}

	return Project{
		Id:              optional(project.Id),
		Name:            optional(project.Name),
		PropertyAddress: optional(location.PropertyAddress),
		Address: Address{
			StreetAddress: optional(components.StreetAddress),
			City:          optional(components.City),
			Region:        optional(components.Region),
			PostalCode:    optional(components.PostalCode),
			Country:       optional(components.Country),
		},
	}, nil
}
