package tfe

import (
	"context"
	"time"
)

// OrganizationClients provides access to organization-level resource clients.
type OrganizationClients interface {
	Organizations() OrganizationsClient
	Projects() ProjectsClient
	OAuthTokens() OAuthTokensClient
}

// WorkspaceClients provides access to workspace and configuration resource clients.
type WorkspaceClients interface {
	Workspaces() WorkspacesClient
	Variables() VariablesClient
	VariableSets() VariableSetsClient
	NotificationConfigurations() NotificationConfigurationsClient
}

// RunClients provides access to run lifecycle resource clients.
type RunClients interface {
	Runs() RunsClient
	Plans() PlansClient
	Applies() AppliesClient
	RunTriggers() RunTriggersClient
}

// StateClients provides access to state storage resource clients.
type StateClients interface {
	StateVersions() StateVersionsClient
	StateVersionOutputs() StateVersionOutputsClient
}

// GovernanceClients provides access to policy and registry resource clients.
type GovernanceClients interface {
	PolicySets() PolicySetsClient
	RegistryModules() RegistryModulesClient
}

// Client provides access to all resource-specific clients.
type Client interface {
	OrganizationClients
	WorkspaceClients
	RunClients
	StateClients
	GovernanceClients
}

// OrganizationsClient manages organizations.
type OrganizationsClient interface {
	List(ctx context.Context, opts *ListOptions) (*Page[Organization], error)
	Read(ctx context.Context, name string) (*Organization, error)
	Create(ctx context.Context, opts *OrganizationCreateOptions) (*Organization, error)
	Update(ctx context.Context, name string, opts *OrganizationUpdateOptions) (*Organization, error)
	Delete(ctx context.Context, name string) error
}

// ProjectsClient manages projects within an organization.
type ProjectsClient interface {
	List(ctx context.Context, organization string, opts *ListOptions) (*Page[Project], error)
	Read(ctx context.Context, projectID string) (*Project, error)
	Create(ctx context.Context, organization string, opts *ProjectCreateOptions) (*Project, error)
	Update(ctx context.Context, projectID string, opts *ProjectUpdateOptions) (*Project, error)
	Delete(ctx context.Context, projectID string) error
}

// WorkspacesClient manages workspaces.
type WorkspacesClient interface {
	List(ctx context.Context, organization string, opts *ListOptions) (*Page[Workspace], error)
	Read(ctx context.Context, workspaceID string) (*Workspace, error)
	ReadByName(ctx context.Context, organization, name string) (*Workspace, error)
	Create(ctx context.Context, organization string, opts *WorkspaceCreateOptions) (*Workspace, error)
	Update(ctx context.Context, workspaceID string, opts *WorkspaceUpdateOptions) (*Workspace, error)
	Delete(ctx context.Context, workspaceID string) error
	Lock(ctx context.Context, workspaceID string, reason string) (*Workspace, error)
	Unlock(ctx context.Context, workspaceID string) (*Workspace, error)
}

// RunsClient manages runs.
type RunsClient interface {
	List(ctx context.Context, workspaceID string, opts *ListOptions) (*Page[Run], error)
	Read(ctx context.Context, runID string) (*Run, error)
	Create(ctx context.Context, opts *RunCreateOptions) (*Run, error)
	Apply(ctx context.Context, runID string, comment string) error
	Discard(ctx context.Context, runID string, comment string) error
	Cancel(ctx context.Context, runID string, comment string) error
}

// PlansClient reads plans.
type PlansClient interface {
	Read(ctx context.Context, planID string) (*Plan, error)
}

// AppliesClient reads applies.
type AppliesClient interface {
	Read(ctx context.Context, applyID string) (*Apply, error)
}

// RunTriggersClient manages run triggers between workspaces.
type RunTriggersClient interface {
	List(ctx context.Context, workspaceID string, filter string, opts *ListOptions) (*Page[RunTrigger], error)
	Read(ctx context.Context, runTriggerID string) (*RunTrigger, error)
	Create(ctx context.Context, workspaceID string, sourceableID string) (*RunTrigger, error)
	Delete(ctx context.Context, runTriggerID string) error
}

// VariablesClient manages workspace variables.
type VariablesClient interface {
	List(ctx context.Context, workspaceID string, opts *ListOptions) (*Page[Variable], error)
	Read(ctx context.Context, workspaceID, variableID string) (*Variable, error)
	Create(ctx context.Context, workspaceID string, opts *VariableCreateOptions) (*Variable, error)
	Update(ctx context.Context, workspaceID, variableID string, opts *VariableUpdateOptions) (*Variable, error)
	Delete(ctx context.Context, workspaceID, variableID string) error
}

// VariableSetsClient manages variable sets and their variables.
type VariableSetsClient interface {
	List(ctx context.Context, organization string, opts *ListOptions) (*Page[VariableSet], error)
	Read(ctx context.Context, variableSetID string) (*VariableSet, error)
	Create(ctx context.Context, organization string, opts *VariableSetCreateOptions) (*VariableSet, error)
	Update(ctx context.Context, variableSetID string, opts *VariableSetUpdateOptions) (*VariableSet, error)
	Delete(ctx context.Context, variableSetID string) error
	ApplyToWorkspaces(ctx context.Context, variableSetID string, workspaceIDs []string) error
	RemoveFromWorkspaces(ctx context.Context, variableSetID string, workspaceIDs []string) error
	ListVariables(ctx context.Context, variableSetID string, opts *ListOptions) (*Page[VariableSetVariable], error)
	CreateVariable(ctx context.Context, variableSetID string, opts *VariableCreateOptions) (*VariableSetVariable, error)
	UpdateVariable(ctx context.Context, variableSetID, variableID string, opts *VariableUpdateOptions) (*VariableSetVariable, error)
	DeleteVariable(ctx context.Context, variableSetID, variableID string) error
}

// StateVersionsClient reads workspace state versions.
type StateVersionsClient interface {
	List(ctx context.Context, organization, workspace string, opts *ListOptions) (*Page[StateVersion], error)
	Read(ctx context.Context, stateVersionID string) (*StateVersion, error)
	ReadCurrent(ctx context.Context, workspaceID string) (*StateVersion, error)
}

// StateVersionOutputsClient reads the outputs of a state version.
type StateVersionOutputsClient interface {
	List(ctx context.Context, stateVersionID string, opts *ListOptions) (*Page[StateVersionOutput], error)
	Read(ctx context.Context, outputID string) (*StateVersionOutput, error)
}

// NotificationConfigurationsClient manages workspace notification configurations.
type NotificationConfigurationsClient interface {
	List(ctx context.Context, workspaceID string, opts *ListOptions) (*Page[NotificationConfiguration], error)
	Read(ctx context.Context, notificationConfigurationID string) (*NotificationConfiguration, error)
	Create(ctx context.Context, workspaceID string, opts *NotificationConfigurationCreateOptions) (*NotificationConfiguration, error)
	Update(ctx context.Context, notificationConfigurationID string, opts *NotificationConfigurationUpdateOptions) (*NotificationConfiguration, error)
	Delete(ctx context.Context, notificationConfigurationID string) error
	Verify(ctx context.Context, notificationConfigurationID string) (*NotificationConfiguration, error)
}

// PolicySetsClient manages policy sets.
type PolicySetsClient interface {
	List(ctx context.Context, organization string, opts *ListOptions) (*Page[PolicySet], error)
	Read(ctx context.Context, policySetID string) (*PolicySet, error)
	Create(ctx context.Context, organization string, opts *PolicySetCreateOptions) (*PolicySet, error)
	Update(ctx context.Context, policySetID string, opts *PolicySetUpdateOptions) (*PolicySet, error)
	Delete(ctx context.Context, policySetID string) error
}

// RegistryModulesClient manages private registry modules.
type RegistryModulesClient interface {
	List(ctx context.Context, organization string, opts *ListOptions) (*Page[RegistryModule], error)
	Read(ctx context.Context, organization, name, provider string) (*RegistryModule, error)
	Create(ctx context.Context, organization string, opts *RegistryModuleCreateOptions) (*RegistryModule, error)
	Delete(ctx context.Context, organization, name string) error
}

// OAuthTokensClient manages VCS OAuth tokens.
type OAuthTokensClient interface {
	List(ctx context.Context, organization string, opts *ListOptions) (*Page[OAuthToken], error)
	Read(ctx context.Context, oauthTokenID string) (*OAuthToken, error)
	Update(ctx context.Context, oauthTokenID string, opts *OAuthTokenUpdateOptions) (*OAuthToken, error)
	Delete(ctx context.Context, oauthTokenID string) error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a tfe.Client.
//
// Address and Token are required; tfeclient.New falls back to the TFE_ADDRESS
// (or TFE_HOST) and TFE_TOKEN environment variables when they are empty. The
// configuration is read once at construction; a built client never mutates it,
// so one Config can safely seed several independent clients.
type Config struct {
	// Address is the base URL of the Terraform Enterprise API, e.g.
	// "https://app.terraform.io". tfeclient.New normalizes this value by
	// trimming a trailing slash and adding "https://" if no scheme is present.
	Address string

	// Token is the bearer token sent in the Authorization header.
	Token string

	// BasePath is the path prefix the API is served under. Defaults to
	// "/api/v2".
	BasePath string

	// Headers are extra headers attached to every request.
	Headers map[string]string

	// HTTPTimeout is the per-request timeout. Most calls should rely on
	// context deadlines; this bounds a call when the context carries none.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of retries for transient failures
	// (429, 5xx, and connection errors). If 0, a default is used.
	RetryMax int

	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Interceptors is an optional chain run around every request, before
	// serialization and after classification.
	Interceptors *InterceptorChain

	// Cache configures the optional read-through response cache for GET
	// requests. Nil disables caching.
	Cache *CacheConfig
}
