package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ibm-richard/go-tfe/internal/http"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// ProjectsClient implements tfe.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{httpClient: httpClient}
}

func flattenProject(res *tfe.ResourceObject[tfe.Project]) tfe.Project {
	project := res.Attributes
	project.ID = res.ID
	project.Organization = res.RelatedID("organization")

	return project
}

// List implements tfe.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, organization string, opts *tfe.ListOptions) (*tfe.Page[tfe.Project], error) {
	if organization == "" {
		return nil, tfe.ErrInvalidOrg
	}

	path := "/organizations/" + url.PathEscape(organization) + "/projects"

	resp, err := c.httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	doc, err := decodeList[tfe.Project](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing projects list: %w", err)
	}

	return buildPage(doc, flattenProject), nil
}

// Read implements tfe.ProjectsClient.Read.
func (c *ProjectsClient) Read(ctx context.Context, projectID string) (*tfe.Project, error) {
	resp, err := c.httpClient.Get(ctx, "/projects/"+url.PathEscape(projectID), nil)
	if err != nil {
		return nil, fmt.Errorf("reading project: %w", err)
	}

	res, err := decodeResource[tfe.Project](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}

	project := flattenProject(res)

	return &project, nil
}

// Create implements tfe.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, organization string, opts *tfe.ProjectCreateOptions) (*tfe.Project, error) {
	if organization == "" {
		return nil, tfe.ErrInvalidOrg
	}

	body := tfe.Document[tfe.ResourceObject[*tfe.ProjectCreateOptions]]{
		Data: tfe.ResourceObject[*tfe.ProjectCreateOptions]{
			Type:       "projects",
			Attributes: opts,
		},
	}

	path := "/organizations/" + url.PathEscape(organization) + "/projects"

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	res, err := decodeResource[tfe.Project](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}

	project := flattenProject(res)

	return &project, nil
}

// Update implements tfe.ProjectsClient.Update.
func (c *ProjectsClient) Update(ctx context.Context, projectID string, opts *tfe.ProjectUpdateOptions) (*tfe.Project, error) {
	body := tfe.Document[tfe.ResourceObject[*tfe.ProjectUpdateOptions]]{
		Data: tfe.ResourceObject[*tfe.ProjectUpdateOptions]{
			Type:       "projects",
			Attributes: opts,
		},
	}

	resp, err := c.httpClient.Patch(ctx, "/projects/"+url.PathEscape(projectID), body)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	res, err := decodeResource[tfe.Project](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}

	project := flattenProject(res)

	return &project, nil
}

// Delete implements tfe.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, projectID string) error {
	_, err := c.httpClient.Delete(ctx, "/projects/"+url.PathEscape(projectID))
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	return nil
}
