package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ibm-richard/go-tfe/internal/http"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// RegistryModulesClient implements tfe.RegistryModulesClient.
type RegistryModulesClient struct {
	httpClient *http.Client
}

// NewRegistryModulesClient creates a new registry modules client.
func NewRegistryModulesClient(httpClient *http.Client) *RegistryModulesClient {
	return &RegistryModulesClient{httpClient: httpClient}
}

func flattenRegistryModule(res *tfe.ResourceObject[tfe.RegistryModule]) tfe.RegistryModule {
	module := res.Attributes
	module.ID = res.ID
	module.Organization = res.RelatedID("organization")

	return module
}

// List implements tfe.RegistryModulesClient.List.
func (c *RegistryModulesClient) List(ctx context.Context, organization string, opts *tfe.ListOptions) (*tfe.Page[tfe.RegistryModule], error) {
	if organization == "" {
		return nil, tfe.ErrInvalidOrg
	}

	path := "/organizations/" + url.PathEscape(organization) + "/registry-modules"

	resp, err := c.httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing registry modules: %w", err)
	}

	doc, err := decodeList[tfe.RegistryModule](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing registry modules list: %w", err)
	}

	return buildPage(doc, flattenRegistryModule), nil
}

// Read implements tfe.RegistryModulesClient.Read. Private modules are
// namespaced by their organization.
func (c *RegistryModulesClient) Read(ctx context.Context, organization, name, provider string) (*tfe.RegistryModule, error) {
	if organization == "" {
		return nil, tfe.ErrInvalidOrg
	}

	path := "/organizations/" + url.PathEscape(organization) + "/registry-modules/private/" +
		url.PathEscape(organization) + "/" + url.PathEscape(name) + "/" + url.PathEscape(provider)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("reading registry module: %w", err)
	}

	res, err := decodeResource[tfe.RegistryModule](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing registry module: %w", err)
	}

	module := flattenRegistryModule(res)

	return &module, nil
}

// Create implements tfe.RegistryModulesClient.Create.
func (c *RegistryModulesClient) Create(ctx context.Context, organization string, opts *tfe.RegistryModuleCreateOptions) (*tfe.RegistryModule, error) {
	if organization == "" {
		return nil, tfe.ErrInvalidOrg
	}

	body := tfe.Document[tfe.ResourceObject[*tfe.RegistryModuleCreateOptions]]{
		Data: tfe.ResourceObject[*tfe.RegistryModuleCreateOptions]{
			Type:       "registry-modules",
			Attributes: opts,
		},
	}

	path := "/organizations/" + url.PathEscape(organization) + "/registry-modules"

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating registry module: %w", err)
	}

	res, err := decodeResource[tfe.RegistryModule](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing registry module: %w", err)
	}

	module := flattenRegistryModule(res)

	return &module, nil
}

// Delete implements tfe.RegistryModulesClient.Delete. Removes the module and
// every version of it from the private registry.
func (c *RegistryModulesClient) Delete(ctx context.Context, organization, name string) error {
	if organization == "" {
		return tfe.ErrInvalidOrg
	}

	path := "/registry-modules/actions/delete/" + url.PathEscape(organization) + "/" + url.PathEscape(name)

	_, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting registry module: %w", err)
	}

	return nil
}
