package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ibm-richard/go-tfe/internal/http"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// OrganizationsClient implements tfe.OrganizationsClient.
type OrganizationsClient struct {
	httpClient *http.Client
}

// NewOrganizationsClient creates a new organizations client.
func NewOrganizationsClient(httpClient *http.Client) *OrganizationsClient {
	return &OrganizationsClient{httpClient: httpClient}
}

func flattenOrganization(res *tfe.ResourceObject[tfe.Organization]) tfe.Organization {
	org := res.Attributes
	if org.Name == "" {
		org.Name = res.ID
	}

	return org
}

// List implements tfe.OrganizationsClient.List.
func (c *OrganizationsClient) List(ctx context.Context, opts *tfe.ListOptions) (*tfe.Page[tfe.Organization], error) {
	resp, err := c.httpClient.Get(ctx, "/organizations", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}

	doc, err := decodeList[tfe.Organization](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing organizations list: %w", err)
	}

	return buildPage(doc, flattenOrganization), nil
}

// Read implements tfe.OrganizationsClient.Read.
func (c *OrganizationsClient) Read(ctx context.Context, name string) (*tfe.Organization, error) {
	if name == "" {
		return nil, tfe.ErrInvalidOrg
	}

	resp, err := c.httpClient.Get(ctx, "/organizations/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, fmt.Errorf("reading organization: %w", err)
	}

	res, err := decodeResource[tfe.Organization](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing organization: %w", err)
	}

	org := flattenOrganization(res)

	return &org, nil
}

// Create implements tfe.OrganizationsClient.Create.
func (c *OrganizationsClient) Create(ctx context.Context, opts *tfe.OrganizationCreateOptions) (*tfe.Organization, error) {
	body := tfe.Document[tfe.ResourceObject[*tfe.OrganizationCreateOptions]]{
		Data: tfe.ResourceObject[*tfe.OrganizationCreateOptions]{
			Type:       "organizations",
			Attributes: opts,
		},
	}

	resp, err := c.httpClient.Post(ctx, "/organizations", body)
	if err != nil {
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	res, err := decodeResource[tfe.Organization](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing organization: %w", err)
	}

	org := flattenOrganization(res)

	return &org, nil
}

// Update implements tfe.OrganizationsClient.Update.
func (c *OrganizationsClient) Update(ctx context.Context, name string, opts *tfe.OrganizationUpdateOptions) (*tfe.Organization, error) {
	if name == "" {
		return nil, tfe.ErrInvalidOrg
	}

	body := tfe.Document[tfe.ResourceObject[*tfe.OrganizationUpdateOptions]]{
		Data: tfe.ResourceObject[*tfe.OrganizationUpdateOptions]{
			Type:       "organizations",
			Attributes: opts,
		},
	}

	resp, err := c.httpClient.Patch(ctx, "/organizations/"+url.PathEscape(name), body)
	if err != nil {
		return nil, fmt.Errorf("updating organization: %w", err)
	}

	res, err := decodeResource[tfe.Organization](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing organization: %w", err)
	}

	org := flattenOrganization(res)

	return &org, nil
}

// Delete implements tfe.OrganizationsClient.Delete.
func (c *OrganizationsClient) Delete(ctx context.Context, name string) error {
	if name == "" {
		return tfe.ErrInvalidOrg
	}

	_, err := c.httpClient.Delete(ctx, "/organizations/"+url.PathEscape(name))
	if err != nil {
		return fmt.Errorf("deleting organization: %w", err)
	}

	return nil
}
