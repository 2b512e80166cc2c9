package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ibm-richard/go-tfe/internal/http"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// PolicySetsClient implements tfe.PolicySetsClient.
type PolicySetsClient struct {
	httpClient *http.Client
}

// NewPolicySetsClient creates a new policy sets client.
func NewPolicySetsClient(httpClient *http.Client) *PolicySetsClient {
	return &PolicySetsClient{httpClient: httpClient}
}

func flattenPolicySet(res *tfe.ResourceObject[tfe.PolicySet]) tfe.PolicySet {
	policySet := res.Attributes
	policySet.ID = res.ID
	policySet.Organization = res.RelatedID("organization")

	return policySet
}

// List implements tfe.PolicySetsClient.List.
func (c *PolicySetsClient) List(ctx context.Context, organization string, opts *tfe.ListOptions) (*tfe.Page[tfe.PolicySet], error) {
	if organization == "" {
		return nil, tfe.ErrInvalidOrg
	}

	path := "/organizations/" + url.PathEscape(organization) + "/policy-sets"

	resp, err := c.httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing policy sets: %w", err)
	}

	doc, err := decodeList[tfe.PolicySet](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing policy sets list: %w", err)
	}

	return buildPage(doc, flattenPolicySet), nil
}

// Read implements tfe.PolicySetsClient.Read.
func (c *PolicySetsClient) Read(ctx context.Context, policySetID string) (*tfe.PolicySet, error) {
	resp, err := c.httpClient.Get(ctx, "/policy-sets/"+url.PathEscape(policySetID), nil)
	if err != nil {
		return nil, fmt.Errorf("reading policy set: %w", err)
	}

	res, err := decodeResource[tfe.PolicySet](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing policy set: %w", err)
	}

	policySet := flattenPolicySet(res)

	return &policySet, nil
}

// Create implements tfe.PolicySetsClient.Create.
func (c *PolicySetsClient) Create(ctx context.Context, organization string, opts *tfe.PolicySetCreateOptions) (*tfe.PolicySet, error) {
	if organization == "" {
		return nil, tfe.ErrInvalidOrg
	}

	body := tfe.Document[tfe.ResourceObject[*tfe.PolicySetCreateOptions]]{
		Data: tfe.ResourceObject[*tfe.PolicySetCreateOptions]{
			Type:       "policy-sets",
			Attributes: opts,
		},
	}

	path := "/organizations/" + url.PathEscape(organization) + "/policy-sets"

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating policy set: %w", err)
	}

	res, err := decodeResource[tfe.PolicySet](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing policy set: %w", err)
	}

	policySet := flattenPolicySet(res)

	return &policySet, nil
}

// Update implements tfe.PolicySetsClient.Update.
func (c *PolicySetsClient) Update(ctx context.Context, policySetID string, opts *tfe.PolicySetUpdateOptions) (*tfe.PolicySet, error) {
	body := tfe.Document[tfe.ResourceObject[*tfe.PolicySetUpdateOptions]]{
		Data: tfe.ResourceObject[*tfe.PolicySetUpdateOptions]{
			Type:       "policy-sets",
			Attributes: opts,
		},
	}

	resp, err := c.httpClient.Patch(ctx, "/policy-sets/"+url.PathEscape(policySetID), body)
	if err != nil {
		return nil, fmt.Errorf("updating policy set: %w", err)
	}

	res, err := decodeResource[tfe.PolicySet](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing policy set: %w", err)
	}

	policySet := flattenPolicySet(res)

	return &policySet, nil
}

// Delete implements tfe.PolicySetsClient.Delete.
func (c *PolicySetsClient) Delete(ctx context.Context, policySetID string) error {
	_, err := c.httpClient.Delete(ctx, "/policy-sets/"+url.PathEscape(policySetID))
	if err != nil {
		return fmt.Errorf("deleting policy set: %w", err)
	}

	return nil
}
