package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ibm-richard/go-tfe/internal/http"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// WorkspacesClient implements tfe.WorkspacesClient.
type WorkspacesClient struct {
	httpClient *http.Client
}

// NewWorkspacesClient creates a new workspaces client.
func NewWorkspacesClient(httpClient *http.Client) *WorkspacesClient {
	return &WorkspacesClient{httpClient: httpClient}
}

func flattenWorkspace(res *tfe.ResourceObject[tfe.Workspace]) tfe.Workspace {
	workspace := res.Attributes
	workspace.ID = res.ID
	workspace.Organization = res.RelatedID("organization")
	workspace.ProjectID = res.RelatedID("project")

	return workspace
}

// List implements tfe.WorkspacesClient.List.
func (c *WorkspacesClient) List(ctx context.Context, organization string, opts *tfe.ListOptions) (*tfe.Page[tfe.Workspace], error) {
	if organization == "" {
		return nil, tfe.ErrInvalidOrg
	}

	path := "/organizations/" + url.PathEscape(organization) + "/workspaces"

	resp, err := c.httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}

	doc, err := decodeList[tfe.Workspace](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing workspaces list: %w", err)
	}

	return buildPage(doc, flattenWorkspace), nil
}

// Read implements tfe.WorkspacesClient.Read.
func (c *WorkspacesClient) Read(ctx context.Context, workspaceID string) (*tfe.Workspace, error) {
	return c.readPath(ctx, "/workspaces/"+url.PathEscape(workspaceID))
}

// ReadByName implements tfe.WorkspacesClient.ReadByName.
func (c *WorkspacesClient) ReadByName(ctx context.Context, organization, name string) (*tfe.Workspace, error) {
	if organization == "" {
		return nil, tfe.ErrInvalidOrg
	}

	path := "/organizations/" + url.PathEscape(organization) + "/workspaces/" + url.PathEscape(name)

	return c.readPath(ctx, path)
}

func (c *WorkspacesClient) readPath(ctx context.Context, path string) (*tfe.Workspace, error) {
	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("reading workspace: %w", err)
	}

	res, err := decodeResource[tfe.Workspace](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing workspace: %w", err)
	}

	workspace := flattenWorkspace(res)

	return &workspace, nil
}

// Create implements tfe.WorkspacesClient.Create.
func (c *WorkspacesClient) Create(ctx context.Context, organization string, opts *tfe.WorkspaceCreateOptions) (*tfe.Workspace, error) {
	if organization == "" {
		return nil, tfe.ErrInvalidOrg
	}

	data := tfe.ResourceObject[*tfe.WorkspaceCreateOptions]{
		Type:       "workspaces",
		Attributes: opts,
	}

	if opts != nil && opts.ProjectID != "" {
		data.Relationships = map[string]tfe.Relationship{
			"project": *tfe.NewRelationship("projects", opts.ProjectID),
		}
	}

	body := tfe.Document[tfe.ResourceObject[*tfe.WorkspaceCreateOptions]]{Data: data}
	path := "/organizations/" + url.PathEscape(organization) + "/workspaces"

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	res, err := decodeResource[tfe.Workspace](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing workspace: %w", err)
	}

	workspace := flattenWorkspace(res)

	return &workspace, nil
}

// Update implements tfe.WorkspacesClient.Update.
func (c *WorkspacesClient) Update(ctx context.Context, workspaceID string, opts *tfe.WorkspaceUpdateOptions) (*tfe.Workspace, error) {
	body := tfe.Document[tfe.ResourceObject[*tfe.WorkspaceUpdateOptions]]{
		Data: tfe.ResourceObject[*tfe.WorkspaceUpdateOptions]{
			Type:       "workspaces",
			Attributes: opts,
		},
	}

	resp, err := c.httpClient.Patch(ctx, "/workspaces/"+url.PathEscape(workspaceID), body)
	if err != nil {
		return nil, fmt.Errorf("updating workspace: %w", err)
	}

	res, err := decodeResource[tfe.Workspace](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing workspace: %w", err)
	}

	workspace := flattenWorkspace(res)

	return &workspace, nil
}

// Delete implements tfe.WorkspacesClient.Delete.
func (c *WorkspacesClient) Delete(ctx context.Context, workspaceID string) error {
	_, err := c.httpClient.Delete(ctx, "/workspaces/"+url.PathEscape(workspaceID))
	if err != nil {
		return fmt.Errorf("deleting workspace: %w", err)
	}

	return nil
}

// Lock implements tfe.WorkspacesClient.Lock.
func (c *WorkspacesClient) Lock(ctx context.Context, workspaceID string, reason string) (*tfe.Workspace, error) {
	body := map[string]string{"reason": reason}
	path := "/workspaces/" + url.PathEscape(workspaceID) + "/actions/lock"

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("locking workspace: %w", err)
	}

	res, err := decodeResource[tfe.Workspace](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing workspace: %w", err)
	}

	workspace := flattenWorkspace(res)

	return &workspace, nil
}

// Unlock implements tfe.WorkspacesClient.Unlock.
func (c *WorkspacesClient) Unlock(ctx context.Context, workspaceID string) (*tfe.Workspace, error) {
	path := "/workspaces/" + url.PathEscape(workspaceID) + "/actions/unlock"

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("unlocking workspace: %w", err)
	}

	res, err := decodeResource[tfe.Workspace](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing workspace: %w", err)
	}

	workspace := flattenWorkspace(res)

	return &workspace, nil
}
