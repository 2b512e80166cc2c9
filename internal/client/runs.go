package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ibm-richard/go-tfe/internal/http"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// RunsClient implements tfe.RunsClient.
type RunsClient struct {
	httpClient *http.Client
}

// NewRunsClient creates a new runs client.
func NewRunsClient(httpClient *http.Client) *RunsClient {
	return &RunsClient{httpClient: httpClient}
}

func flattenRun(res *tfe.ResourceObject[tfe.Run]) tfe.Run {
	run := res.Attributes
	run.ID = res.ID
	run.WorkspaceID = res.RelatedID("workspace")
	run.PlanID = res.RelatedID("plan")
	run.ApplyID = res.RelatedID("apply")

	return run
}

// List implements tfe.RunsClient.List.
func (c *RunsClient) List(ctx context.Context, workspaceID string, opts *tfe.ListOptions) (*tfe.Page[tfe.Run], error) {
	path := "/workspaces/" + url.PathEscape(workspaceID) + "/runs"

	resp, err := c.httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	doc, err := decodeList[tfe.Run](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing runs list: %w", err)
	}

	return buildPage(doc, flattenRun), nil
}

// Read implements tfe.RunsClient.Read.
func (c *RunsClient) Read(ctx context.Context, runID string) (*tfe.Run, error) {
	resp, err := c.httpClient.Get(ctx, "/runs/"+url.PathEscape(runID), nil)
	if err != nil {
		return nil, fmt.Errorf("reading run: %w", err)
	}

	res, err := decodeResource[tfe.Run](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing run: %w", err)
	}

	run := flattenRun(res)

	return &run, nil
}

// Create implements tfe.RunsClient.Create.
func (c *RunsClient) Create(ctx context.Context, opts *tfe.RunCreateOptions) (*tfe.Run, error) {
	if opts == nil || opts.WorkspaceID == "" {
		return nil, tfe.ErrWorkspaceRequired
	}

	data := tfe.ResourceObject[*tfe.RunCreateOptions]{
		Type:       "runs",
		Attributes: opts,
		Relationships: map[string]tfe.Relationship{
			"workspace": *tfe.NewRelationship("workspaces", opts.WorkspaceID),
		},
	}

	if opts.ConfigurationVersionID != "" {
		data.Relationships["configuration-version"] = *tfe.NewRelationship(
			"configuration-versions", opts.ConfigurationVersionID)
	}

	body := tfe.Document[tfe.ResourceObject[*tfe.RunCreateOptions]]{Data: data}

	resp, err := c.httpClient.Post(ctx, "/runs", body)
	if err != nil {
		return nil, fmt.Errorf("creating run: %w", err)
	}

	res, err := decodeResource[tfe.Run](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing run: %w", err)
	}

	run := flattenRun(res)

	return &run, nil
}

// Apply implements tfe.RunsClient.Apply.
func (c *RunsClient) Apply(ctx context.Context, runID string, comment string) error {
	err := c.action(ctx, runID, "apply", comment)
	if err != nil {
		return fmt.Errorf("applying run: %w", err)
	}

	return nil
}

// Discard implements tfe.RunsClient.Discard.
func (c *RunsClient) Discard(ctx context.Context, runID string, comment string) error {
	err := c.action(ctx, runID, "discard", comment)
	if err != nil {
		return fmt.Errorf("discarding run: %w", err)
	}

	return nil
}

// Cancel implements tfe.RunsClient.Cancel.
func (c *RunsClient) Cancel(ctx context.Context, runID string, comment string) error {
	err := c.action(ctx, runID, "cancel", comment)
	if err != nil {
		return fmt.Errorf("canceling run: %w", err)
	}

	return nil
}

// action posts a run lifecycle action. These endpoints return 202 with an
// empty body on success.
func (c *RunsClient) action(ctx context.Context, runID, name, comment string) error {
	if runID == "" {
		return tfe.ErrRunRequired
	}

	var body interface{}
	if comment != "" {
		body = map[string]string{"comment": comment}
	}

	path := "/runs/" + url.PathEscape(runID) + "/actions/" + name

	_, err := c.httpClient.Post(ctx, path, body)

	return err
}
