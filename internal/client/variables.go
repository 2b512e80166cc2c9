package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ibm-richard/go-tfe/internal/http"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// VariablesClient implements tfe.VariablesClient.
type VariablesClient struct {
	httpClient *http.Client
}

// NewVariablesClient creates a new workspace variables client.
func NewVariablesClient(httpClient *http.Client) *VariablesClient {
	return &VariablesClient{httpClient: httpClient}
}

func flattenVariable(workspaceID string) func(*tfe.ResourceObject[tfe.Variable]) tfe.Variable {
	return func(res *tfe.ResourceObject[tfe.Variable]) tfe.Variable {
		variable := res.Attributes
		variable.ID = res.ID
		variable.WorkspaceID = workspaceID

		return variable
	}
}

// List implements tfe.VariablesClient.List.
func (c *VariablesClient) List(ctx context.Context, workspaceID string, opts *tfe.ListOptions) (*tfe.Page[tfe.Variable], error) {
	if workspaceID == "" {
		return nil, tfe.ErrWorkspaceRequired
	}

	path := "/workspaces/" + url.PathEscape(workspaceID) + "/vars"

	resp, err := c.httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing variables: %w", err)
	}

	doc, err := decodeList[tfe.Variable](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing variables list: %w", err)
	}

	return buildPage(doc, flattenVariable(workspaceID)), nil
}

// Read implements tfe.VariablesClient.Read.
func (c *VariablesClient) Read(ctx context.Context, workspaceID, variableID string) (*tfe.Variable, error) {
	if workspaceID == "" {
		return nil, tfe.ErrWorkspaceRequired
	}

	path := "/workspaces/" + url.PathEscape(workspaceID) + "/vars/" + url.PathEscape(variableID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("reading variable: %w", err)
	}

	res, err := decodeResource[tfe.Variable](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing variable: %w", err)
	}

	variable := flattenVariable(workspaceID)(res)

	return &variable, nil
}

// Create implements tfe.VariablesClient.Create.
func (c *VariablesClient) Create(ctx context.Context, workspaceID string, opts *tfe.VariableCreateOptions) (*tfe.Variable, error) {
	if workspaceID == "" {
		return nil, tfe.ErrWorkspaceRequired
	}

	body := tfe.Document[tfe.ResourceObject[*tfe.VariableCreateOptions]]{
		Data: tfe.ResourceObject[*tfe.VariableCreateOptions]{
			Type:       "vars",
			Attributes: opts,
		},
	}

	path := "/workspaces/" + url.PathEscape(workspaceID) + "/vars"

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating variable: %w", err)
	}

	res, err := decodeResource[tfe.Variable](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing variable: %w", err)
	}

	variable := flattenVariable(workspaceID)(res)

	return &variable, nil
}

// Update implements tfe.VariablesClient.Update.
func (c *VariablesClient) Update(ctx context.Context, workspaceID, variableID string, opts *tfe.VariableUpdateOptions) (*tfe.Variable, error) {
	if workspaceID == "" {
		return nil, tfe.ErrWorkspaceRequired
	}

	body := tfe.Document[tfe.ResourceObject[*tfe.VariableUpdateOptions]]{
		Data: tfe.ResourceObject[*tfe.VariableUpdateOptions]{
			ID:         variableID,
			Type:       "vars",
			Attributes: opts,
		},
	}

	path := "/workspaces/" + url.PathEscape(workspaceID) + "/vars/" + url.PathEscape(variableID)

	resp, err := c.httpClient.Patch(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("updating variable: %w", err)
	}

	res, err := decodeResource[tfe.Variable](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing variable: %w", err)
	}

	variable := flattenVariable(workspaceID)(res)

	return &variable, nil
}

// Delete implements tfe.VariablesClient.Delete.
func (c *VariablesClient) Delete(ctx context.Context, workspaceID, variableID string) error {
	if workspaceID == "" {
		return tfe.ErrWorkspaceRequired
	}

	path := "/workspaces/" + url.PathEscape(workspaceID) + "/vars/" + url.PathEscape(variableID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting variable: %w", err)
	}

	return nil
}
