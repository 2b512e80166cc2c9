package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ibm-richard/go-tfe/internal/http"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// RunTriggersClient implements tfe.RunTriggersClient.
type RunTriggersClient struct {
	httpClient *http.Client
}

// NewRunTriggersClient creates a new run triggers client.
func NewRunTriggersClient(httpClient *http.Client) *RunTriggersClient {
	return &RunTriggersClient{httpClient: httpClient}
}

func flattenRunTrigger(res *tfe.ResourceObject[tfe.RunTrigger]) tfe.RunTrigger {
	trigger := res.Attributes
	trigger.ID = res.ID
	trigger.WorkspaceID = res.RelatedID("workspace")
	trigger.SourceableID = res.RelatedID("sourceable")

	return trigger
}

// List implements tfe.RunTriggersClient.List. The filter selects the
// direction, "inbound" or "outbound", and is required by the API.
func (c *RunTriggersClient) List(ctx context.Context, workspaceID string, filter string, opts *tfe.ListOptions) (*tfe.Page[tfe.RunTrigger], error) {
	if workspaceID == "" {
		return nil, tfe.ErrWorkspaceRequired
	}

	query := opts.ToValues()
	if filter != "" {
		query.Set("filter[run-trigger][type]", filter)
	}

	path := "/workspaces/" + url.PathEscape(workspaceID) + "/run-triggers"

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing run triggers: %w", err)
	}

	doc, err := decodeList[tfe.RunTrigger](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing run triggers list: %w", err)
	}

	return buildPage(doc, flattenRunTrigger), nil
}

// Read implements tfe.RunTriggersClient.Read.
func (c *RunTriggersClient) Read(ctx context.Context, runTriggerID string) (*tfe.RunTrigger, error) {
	resp, err := c.httpClient.Get(ctx, "/run-triggers/"+url.PathEscape(runTriggerID), nil)
	if err != nil {
		return nil, fmt.Errorf("reading run trigger: %w", err)
	}

	res, err := decodeResource[tfe.RunTrigger](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing run trigger: %w", err)
	}

	trigger := flattenRunTrigger(res)

	return &trigger, nil
}

// Create implements tfe.RunTriggersClient.Create. The sourceable is the
// workspace whose applies queue runs in the target workspace.
func (c *RunTriggersClient) Create(ctx context.Context, workspaceID string, sourceableID string) (*tfe.RunTrigger, error) {
	if workspaceID == "" {
		return nil, tfe.ErrWorkspaceRequired
	}

	body := tfe.Document[tfe.ResourceObject[struct{}]]{
		Data: tfe.ResourceObject[struct{}]{
			Type: "run-triggers",
			Relationships: map[string]tfe.Relationship{
				"sourceable": *tfe.NewRelationship("workspaces", sourceableID),
			},
		},
	}

	path := "/workspaces/" + url.PathEscape(workspaceID) + "/run-triggers"

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating run trigger: %w", err)
	}

	res, err := decodeResource[tfe.RunTrigger](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing run trigger: %w", err)
	}

	trigger := flattenRunTrigger(res)

	return &trigger, nil
}

// Delete implements tfe.RunTriggersClient.Delete.
func (c *RunTriggersClient) Delete(ctx context.Context, runTriggerID string) error {
	_, err := c.httpClient.Delete(ctx, "/run-triggers/"+url.PathEscape(runTriggerID))
	if err != nil {
		return fmt.Errorf("deleting run trigger: %w", err)
	}

	return nil
}
