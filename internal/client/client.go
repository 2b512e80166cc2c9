package client

import (
	"fmt"

	"github.com/ibm-richard/go-tfe/internal/constants"
	"github.com/ibm-richard/go-tfe/internal/http"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// Client implements the tfe.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     tfe.Logger

	// Resource clients
	organizations              tfe.OrganizationsClient
	projects                   tfe.ProjectsClient
	workspaces                 tfe.WorkspacesClient
	runs                       tfe.RunsClient
	plans                      tfe.PlansClient
	applies                    tfe.AppliesClient
	runTriggers                tfe.RunTriggersClient
	variables                  tfe.VariablesClient
	variableSets               tfe.VariableSetsClient
	stateVersions              tfe.StateVersionsClient
	stateVersionOutputs        tfe.StateVersionOutputsClient
	notificationConfigurations tfe.NotificationConfigurationsClient
	policySets                 tfe.PolicySetsClient
	registryModules            tfe.RegistryModulesClient
	oauthTokens                tfe.OAuthTokensClient
}

// New creates a new Terraform Enterprise API client from the given
// configuration. The Address must already be normalized; tfeclient.New is the
// public entry point that handles normalization and environment fallback.
func New(config *tfe.Config) (*Client, error) {
	if config == nil {
		return nil, tfe.ErrConfigRequired
	}

	if config.Address == "" {
		return nil, tfe.ErrAddressRequired
	}

	if config.Token == "" {
		return nil, tfe.ErrTokenRequired
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = constants.DefaultBasePath
	}

	opts := buildHTTPOptions(config)

	if config.Cache != nil {
		cache, err := tfe.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("building response cache: %w", err)
		}

		ttl := tfe.DefaultCacheOptions().TTL
		if config.Cache.Options != nil && config.Cache.Options.TTL > 0 {
			ttl = config.Cache.Options.TTL
		}

		opts = append(opts, http.WithCache(cache, ttl))
	}

	client := &Client{
		httpClient: http.NewClient(config.Address+basePath, config.Token, opts...),
		baseURL:    config.Address,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

func buildHTTPOptions(config *tfe.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if len(config.Headers) > 0 {
		opts = append(opts, http.WithHeaders(config.Headers))
	}

	if config.RetryMax > 0 || config.RetryWaitMin > 0 || config.RetryWaitMax > 0 {
		retryMax := config.RetryMax
		if retryMax == 0 {
			retryMax = constants.DefaultRetryMax
		}

		waitMin := config.RetryWaitMin
		if waitMin == 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax == 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(retryMax, waitMin, waitMax))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Interceptors != nil {
		opts = append(opts, http.WithInterceptors(config.Interceptors))
	}

	return opts
}

func (c *Client) initializeResourceClients() {
	c.organizations = NewOrganizationsClient(c.httpClient)
	c.projects = NewProjectsClient(c.httpClient)
	c.workspaces = NewWorkspacesClient(c.httpClient)
	c.runs = NewRunsClient(c.httpClient)
	c.plans = NewPlansClient(c.httpClient)
	c.applies = NewAppliesClient(c.httpClient)
	c.runTriggers = NewRunTriggersClient(c.httpClient)
	c.variables = NewVariablesClient(c.httpClient)
	c.variableSets = NewVariableSetsClient(c.httpClient)
	c.stateVersions = NewStateVersionsClient(c.httpClient)
	c.stateVersionOutputs = NewStateVersionOutputsClient(c.httpClient)
	c.notificationConfigurations = NewNotificationConfigurationsClient(c.httpClient)
	c.policySets = NewPolicySetsClient(c.httpClient)
	c.registryModules = NewRegistryModulesClient(c.httpClient)
	c.oauthTokens = NewOAuthTokensClient(c.httpClient)
}

// Organizations returns the organizations client.
func (c *Client) Organizations() tfe.OrganizationsClient { return c.organizations }

// Projects returns the projects client.
func (c *Client) Projects() tfe.ProjectsClient { return c.projects }

// Workspaces returns the workspaces client.
func (c *Client) Workspaces() tfe.WorkspacesClient { return c.workspaces }

// Runs returns the runs client.
func (c *Client) Runs() tfe.RunsClient { return c.runs }

// Plans returns the plans client.
func (c *Client) Plans() tfe.PlansClient { return c.plans }

// Applies returns the applies client.
func (c *Client) Applies() tfe.AppliesClient { return c.applies }

// RunTriggers returns the run triggers client.
func (c *Client) RunTriggers() tfe.RunTriggersClient { return c.runTriggers }

// Variables returns the workspace variables client.
func (c *Client) Variables() tfe.VariablesClient { return c.variables }

// VariableSets returns the variable sets client.
func (c *Client) VariableSets() tfe.VariableSetsClient { return c.variableSets }

// StateVersions returns the state versions client.
func (c *Client) StateVersions() tfe.StateVersionsClient { return c.stateVersions }

// StateVersionOutputs returns the state version outputs client.
func (c *Client) StateVersionOutputs() tfe.StateVersionOutputsClient { return c.stateVersionOutputs }

// NotificationConfigurations returns the notification configurations client.
func (c *Client) NotificationConfigurations() tfe.NotificationConfigurationsClient {
	return c.notificationConfigurations
}

// PolicySets returns the policy sets client.
func (c *Client) PolicySets() tfe.PolicySetsClient { return c.policySets }

// RegistryModules returns the registry modules client.
func (c *Client) RegistryModules() tfe.RegistryModulesClient { return c.registryModules }

// OAuthTokens returns the OAuth tokens client.
func (c *Client) OAuthTokens() tfe.OAuthTokensClient { return c.oauthTokens }

// BaseURL returns the normalized API address the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }
