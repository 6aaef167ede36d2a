package aurora

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type Proposal struct {
	UpdatedAt    time.Time
	ProposalLink string
}

type proposalJSON struct {
	UpdatedAt    *string `json:"updated_at"`
	ProposalLink *string `json:"proposal_link"`
}

// proposalList accepts either a single proposal object or an array of them.
type proposalList []proposalJSON

func (l *proposalList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single proposalJSON
		err := json.Unmarshal(trimmed, &single)
		if err != nil {
			return err
		}
		*l = proposalList{single}
		return nil
	}
	var many []proposalJSON
	err := json.Unmarshal(trimmed, &many)
	if err != nil {
		return err
	}
	*l = many
	return nil
}

type proposalsResponse struct {
	Proposal *proposalList `json:"proposal"`
}

// DecodeTimestamp parses the ISO-8601 timestamps the API emits.
func DecodeTimestamp(tstr string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, tstr)
}

// GetProposals returns the default proposals of a design in response order.
func (c *Client) GetProposals(ctx context.Context, designId string) ([]Proposal, error) {
	const resource = "proposal"

	var res proposalsResponse
	err := c.getJSON(
		ctx, resource,
		"/tenants/{tenant_id}/designs/{design_id}/proposals/default",
		map[string]string{"design_id": designId},
		&res,
	)
	if err != nil {
		return nil, err
	}
	list, err := required(resource, "proposal", res.Proposal)
	if err != nil {
		return nil, err
	}

	proposals := make([]Proposal, len(list))
	for i, p := range list {
		field := fmt.Sprintf("proposal[%d].updated_at", i)
		updatedAt, err := required(resource, field, p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		proposals[i].UpdatedAt, err = DecodeTimestamp(updatedAt)
		if err != nil {
			return nil, &ShapeError{Resource: resource, Field: field, Reason: err.Error()}
		}
		proposals[i].ProposalLink = optional(p.ProposalLink)
	}
	return proposals, nil
}
