package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ibm-richard/go-tfe/internal/http"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// StateVersionsClient implements tfe.StateVersionsClient.
type StateVersionsClient struct {
	httpClient *http.Client
}

// NewStateVersionsClient creates a new state versions client.
func NewStateVersionsClient(httpClient *http.Client) *StateVersionsClient {
	return &StateVersionsClient{httpClient: httpClient}
}

func flattenStateVersion(res *tfe.ResourceObject[tfe.StateVersion]) tfe.StateVersion {
	sv := res.Attributes
	sv.ID = res.ID
	sv.WorkspaceID = res.RelatedID("workspace")

	return sv
}

// List implements tfe.StateVersionsClient.List. State versions are listed
// globally, filtered by organization and workspace name.
func (c *StateVersionsClient) List(ctx context.Context, organization, workspace string, opts *tfe.ListOptions) (*tfe.Page[tfe.StateVersion], error) {
	if organization == "" {
		return nil, tfe.ErrInvalidOrg
	}

	query := opts.ToValues()
	query.Set("filter[organization][name]", organization)
	query.Set("filter[workspace][name]", workspace)

	resp, err := c.httpClient.Get(ctx, "/state-versions", query)
	if err != nil {
		return nil, fmt.Errorf("listing state versions: %w", err)
	}

	doc, err := decodeList[tfe.StateVersion](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing state versions list: %w", err)
	}

	return buildPage(doc, flattenStateVersion), nil
}

// Read implements tfe.StateVersionsClient.Read.
func (c *StateVersionsClient) Read(ctx context.Context, stateVersionID string) (*tfe.StateVersion, error) {
	resp, err := c.httpClient.Get(ctx, "/state-versions/"+url.PathEscape(stateVersionID), nil)
	if err != nil {
		return nil, fmt.Errorf("reading state version: %w", err)
	}

	res, err := decodeResource[tfe.StateVersion](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing state version: %w", err)
	}

	sv := flattenStateVersion(res)

	return &sv, nil
}

// ReadCurrent implements tfe.StateVersionsClient.ReadCurrent.
func (c *StateVersionsClient) ReadCurrent(ctx context.Context, workspaceID string) (*tfe.StateVersion, error) {
	if workspaceID == "" {
		return nil, tfe.ErrWorkspaceRequired
	}

	path := "/workspaces/" + url.PathEscape(workspaceID) + "/current-state-version"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("reading current state version: %w", err)
	}

	res, err := decodeResource[tfe.StateVersion](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing state version: %w", err)
	}

	sv := flattenStateVersion(res)

	return &sv, nil
}

// StateVersionOutputsClient implements tfe.StateVersionOutputsClient.
type StateVersionOutputsClient struct {
	httpClient *http.Client
}

// NewStateVersionOutputsClient creates a new state version outputs client.
func NewStateVersionOutputsClient(httpClient *http.Client) *StateVersionOutputsClient {
	return &StateVersionOutputsClient{httpClient: httpClient}
}

func flattenStateVersionOutput(res *tfe.ResourceObject[tfe.StateVersionOutput]) tfe.StateVersionOutput {
	output := res.Attributes
	output.ID = res.ID

	return output
}

// List implements tfe.StateVersionOutputsClient.List.
func (c *StateVersionOutputsClient) List(ctx context.Context, stateVersionID string, opts *tfe.ListOptions) (*tfe.Page[tfe.StateVersionOutput], error) {
	path := "/state-versions/" + url.PathEscape(stateVersionID) + "/outputs"

	resp, err := c.httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing state version outputs: %w", err)
	}

	doc, err := decodeList[tfe.StateVersionOutput](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing state version outputs list: %w", err)
	}

	return buildPage(doc, flattenStateVersionOutput), nil
}

// Read implements tfe.StateVersionOutputsClient.Read.
func (c *StateVersionOutputsClient) Read(ctx context.Context, outputID string) (*tfe.StateVersionOutput, error) {
	resp, err := c.httpClient.Get(ctx, "/state-version-outputs/"+url.PathEscape(outputID), nil)
	if err != nil {
		return nil, fmt.Errorf("reading state version output: %w", err)
	}

	res, err := decodeResource[tfe.StateVersionOutput](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing state version output: %w", err)
	}

	output := flattenStateVersionOutput(res)

	return &output, nil
}
