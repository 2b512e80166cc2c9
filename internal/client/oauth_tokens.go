package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ibm-richard/go-tfe/internal/http"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// OAuthTokensClient implements tfe.OAuthTokensClient.
type OAuthTokensClient struct {
	httpClient *http.Client
}

// NewOAuthTokensClient creates a new OAuth tokens client.
func NewOAuthTokensClient(httpClient *http.Client) *OAuthTokensClient {
	return &OAuthTokensClient{httpClient: httpClient}
}

func flattenOAuthToken(res *tfe.ResourceObject[tfe.OAuthToken]) tfe.OAuthToken {
	token := res.Attributes
	token.ID = res.ID
	token.OAuthClientID = res.RelatedID("oauth-client")

	return token
}

// List implements tfe.OAuthTokensClient.List. Tokens are listed across all
// OAuth clients of the organization.
func (c *OAuthTokensClient) List(ctx context.Context, organization string, opts *tfe.ListOptions) (*tfe.Page[tfe.OAuthToken], error) {
	if organization == "" {
		return nil, tfe.ErrInvalidOrg
	}

	path := "/organizations/" + url.PathEscape(organization) + "/oauth-tokens"

	resp, err := c.httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing OAuth tokens: %w", err)
	}

	doc, err := decodeList[tfe.OAuthToken](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing OAuth tokens list: %w", err)
	}

	return buildPage(doc, flattenOAuthToken), nil
}

// Read implements tfe.OAuthTokensClient.Read.
func (c *OAuthTokensClient) Read(ctx context.Context, oauthTokenID string) (*tfe.OAuthToken, error) {
	resp, err := c.httpClient.Get(ctx, "/oauth-tokens/"+url.PathEscape(oauthTokenID), nil)
	if err != nil {
		return nil, fmt.Errorf("reading OAuth token: %w", err)
	}

	res, err := decodeResource[tfe.OAuthToken](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing OAuth token: %w", err)
	}

	token := flattenOAuthToken(res)

	return &token, nil
}

// Update implements tfe.OAuthTokensClient.Update.
func (c *OAuthTokensClient) Update(ctx context.Context, oauthTokenID string, opts *tfe.OAuthTokenUpdateOptions) (*tfe.OAuthToken, error) {
	body := tfe.Document[tfe.ResourceObject[*tfe.OAuthTokenUpdateOptions]]{
		Data: tfe.ResourceObject[*tfe.OAuthTokenUpdateOptions]{
			Type:       "oauth-tokens",
			Attributes: opts,
		},
	}

	resp, err := c.httpClient.Patch(ctx, "/oauth-tokens/"+url.PathEscape(oauthTokenID), body)
	if err != nil {
		return nil, fmt.Errorf("updating OAuth token: %w", err)
	}

	res, err := decodeResource[tfe.OAuthToken](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing OAuth token: %w", err)
	}

	token := flattenOAuthToken(res)

	return &token, nil
}

// Delete implements tfe.OAuthTokensClient.Delete.
func (c *OAuthTokensClient) Delete(ctx context.Context, oauthTokenID string) error {
	_, err := c.httpClient.Delete(ctx, "/oauth-tokens/"+url.PathEscape(oauthTokenID))
	if err != nil {
		return fmt.Errorf("deleting OAuth token: %w", err)
	}

	return nil
}
