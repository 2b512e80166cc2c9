package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ibm-richard/go-tfe/internal/http"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// PlansClient implements tfe.PlansClient.
type PlansClient struct {
	httpClient *http.Client
}

// NewPlansClient creates a new plans client.
func NewPlansClient(httpClient *http.Client) *PlansClient {
	return &PlansClient{httpClient: httpClient}
}

// Read implements tfe.PlansClient.Read.
func (c *PlansClient) Read(ctx context.Context, planID string) (*tfe.Plan, error) {
	resp, err := c.httpClient.Get(ctx, "/plans/"+url.PathEscape(planID), nil)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}

	res, err := decodeResource[tfe.Plan](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}

	plan := res.Attributes
	plan.ID = res.ID

	return &plan, nil
}

// AppliesClient implements tfe.AppliesClient.
type AppliesClient struct {
	httpClient *http.Client
}

// NewAppliesClient creates a new applies client.
func NewAppliesClient(httpClient *http.Client) *AppliesClient {
	return &AppliesClient{httpClient: httpClient}
}

// Read implements tfe.AppliesClient.Read.
func (c *AppliesClient) Read(ctx context.Context, applyID string) (*tfe.Apply, error) {
	resp, err := c.httpClient.Get(ctx, "/applies/"+url.PathEscape(applyID), nil)
	if err != nil {
		return nil, fmt.Errorf("reading apply: %w", err)
	}

	res, err := decodeResource[tfe.Apply](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing apply: %w", err)
	}

	apply := res.Attributes
	apply.ID = res.ID

	return &apply, nil
}
