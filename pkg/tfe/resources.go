package tfe

import "time"

// Flattened resource models. The json tags are the kebab-case attribute names
// used on the wire; ID fields are carried on the resource identifier, not in
// attributes, and are filled in by the resource clients after decoding.

// Run statuses.
const (
	RunPending        = "pending"
	RunPlanning       = "planning"
	RunPlanned        = "planned"
	RunCostEstimating = "cost_estimating"
	RunPolicyChecking = "policy_checking"
	RunConfirmed      = "confirmed"
	RunApplying       = "applying"
	RunApplied        = "applied"
	RunDiscarded      = "discarded"
	RunErrored        = "errored"
	RunCanceled       = "canceled"
)

// Workspace execution modes.
const (
	ExecutionModeRemote = "remote"
	ExecutionModeLocal  = "local"
	ExecutionModeAgent  = "agent"
)

// Variable categories.
const (
	CategoryTerraform = "terraform"
	CategoryEnv       = "env"
)

// Organization represents a Terraform Enterprise organization.
type Organization struct {
	Name                       string     `json:"name,omitempty"                    yaml:"name,omitempty"`
	Email                      string     `json:"email,omitempty"                   yaml:"email,omitempty"`
	ExternalID                 string     `json:"external-id,omitempty"             yaml:"external-id,omitempty"`
	CreatedAt                  *time.Time `json:"created-at,omitempty"              yaml:"created-at,omitempty"`
	CollaboratorAuthPolicy     string     `json:"collaborator-auth-policy,omitempty" yaml:"collaborator-auth-policy,omitempty"`
	CostEstimationEnabled      bool       `json:"cost-estimation-enabled,omitempty" yaml:"cost-estimation-enabled,omitempty"`
	DefaultExecutionMode       string     `json:"default-execution-mode,omitempty"  yaml:"default-execution-mode,omitempty"`
	SessionTimeout             int        `json:"session-timeout,omitempty"         yaml:"session-timeout,omitempty"`
	SessionRemember            int        `json:"session-remember,omitempty"        yaml:"session-remember,omitempty"`
	SAMLEnabled                bool       `json:"saml-enabled,omitempty"            yaml:"saml-enabled,omitempty"`
	AssessmentsEnforced        bool       `json:"assessments-enforced,omitempty"    yaml:"assessments-enforced,omitempty"`
	AllowForceDeleteWorkspaces bool       `json:"allow-force-delete-workspaces,omitempty" yaml:"allow-force-delete-workspaces,omitempty"`
}

// OrganizationCreateOptions are the attributes for creating an organization.
type OrganizationCreateOptions struct {
	Name                       string  `json:"name"`
	Email                      string  `json:"email"`
	CollaboratorAuthPolicy     *string `json:"collaborator-auth-policy,omitempty"`
	CostEstimationEnabled      *bool   `json:"cost-estimation-enabled,omitempty"`
	DefaultExecutionMode       *string `json:"default-execution-mode,omitempty"`
	SessionTimeout             *int    `json:"session-timeout,omitempty"`
	SessionRemember            *int    `json:"session-remember,omitempty"`
	AllowForceDeleteWorkspaces *bool   `json:"allow-force-delete-workspaces,omitempty"`
}

// OrganizationUpdateOptions are the attributes for updating an organization.
type OrganizationUpdateOptions struct {
	Name                       *string `json:"name,omitempty"`
	Email                      *string `json:"email,omitempty"`
	CollaboratorAuthPolicy     *string `json:"collaborator-auth-policy,omitempty"`
	CostEstimationEnabled      *bool   `json:"cost-estimation-enabled,omitempty"`
	DefaultExecutionMode       *string `json:"default-execution-mode,omitempty"`
	SessionTimeout             *int    `json:"session-timeout,omitempty"`
	SessionRemember            *int    `json:"session-remember,omitempty"`
	AssessmentsEnforced        *bool   `json:"assessments-enforced,omitempty"`
	AllowForceDeleteWorkspaces *bool   `json:"allow-force-delete-workspaces,omitempty"`
}

// Project represents a project grouping workspaces within an organization.
type Project struct {
	ID             string     `json:"-"                         yaml:"id"`
	Name           string     `json:"name,omitempty"            yaml:"name,omitempty"`
	Description    string     `json:"description,omitempty"     yaml:"description,omitempty"`
	Organization   string     `json:"-"                         yaml:"organization,omitempty"`
	WorkspaceCount int        `json:"workspace-count,omitempty" yaml:"workspace-count,omitempty"`
	CreatedAt      *time.Time `json:"created-at,omitempty"  yaml:"created-at,omitempty"`
}

// ProjectCreateOptions are the attributes for creating a project.
type ProjectCreateOptions struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// ProjectUpdateOptions are the attributes for updating a project.
type ProjectUpdateOptions struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Workspace represents a Terraform Enterprise workspace.
type Workspace struct {
	ID               string     `json:"-"                           yaml:"id"`
	Name             string     `json:"name,omitempty"              yaml:"name,omitempty"`
	Description      string     `json:"description,omitempty"       yaml:"description,omitempty"`
	Organization     string     `json:"-"                           yaml:"organization,omitempty"`
	ExecutionMode    string     `json:"execution-mode,omitempty"    yaml:"execution-mode,omitempty"`
	AutoApply        bool       `json:"auto-apply,omitempty"        yaml:"auto-apply,omitempty"`
	TerraformVersion string     `json:"terraform-version,omitempty" yaml:"terraform-version,omitempty"`
	WorkingDirectory string     `json:"working-directory,omitempty" yaml:"working-directory,omitempty"`
	Locked           bool       `json:"locked,omitempty"            yaml:"locked,omitempty"`
	ResourceCount    int        `json:"resource-count,omitempty"    yaml:"resource-count,omitempty"`
	Tags             []string   `json:"tag-names,omitempty"         yaml:"tag-names,omitempty"`
	ProjectID        string     `json:"-"                           yaml:"project-id,omitempty"`
	CreatedAt        *time.Time `json:"created-at,omitempty"        yaml:"created-at,omitempty"`
	UpdatedAt        *time.Time `json:"updated-at,omitempty"        yaml:"updated-at,omitempty"`
}

// WorkspaceCreateOptions are the attributes for creating a workspace.
type WorkspaceCreateOptions struct {
	Name             string   `json:"name"`
	Description      *string  `json:"description,omitempty"`
	ExecutionMode    *string  `json:"execution-mode,omitempty"`
	AutoApply        *bool    `json:"auto-apply,omitempty"`
	TerraformVersion *string  `json:"terraform-version,omitempty"`
	WorkingDirectory *string  `json:"working-directory,omitempty"`
	Tags             []string `json:"tag-names,omitempty"`

	// ProjectID places the workspace in a project via relationships rather
	// than attributes.
	ProjectID string `json:"-"`
}

// WorkspaceUpdateOptions are the attributes for updating a workspace.
type WorkspaceUpdateOptions struct {
	Name             *string  `json:"name,omitempty"`
	Description      *string  `json:"description,omitempty"`
	ExecutionMode    *string  `json:"execution-mode,omitempty"`
	AutoApply        *bool    `json:"auto-apply,omitempty"`
	TerraformVersion *string  `json:"terraform-version,omitempty"`
	WorkingDirectory *string  `json:"working-directory,omitempty"`
	Tags             []string `json:"tag-names,omitempty"`
}

// Run represents a single plan/apply cycle of a workspace.
type Run struct {
	ID          string     `json:"-"                     yaml:"id"`
	Message     string     `json:"message,omitempty"     yaml:"message,omitempty"`
	Status      string     `json:"status,omitempty"      yaml:"status,omitempty"`
	IsDestroy   bool       `json:"is-destroy,omitempty"  yaml:"is-destroy,omitempty"`
	AutoApply   bool       `json:"auto-apply,omitempty"  yaml:"auto-apply,omitempty"`
	Source      string     `json:"source,omitempty"      yaml:"source,omitempty"`
	HasChanges  bool       `json:"has-changes,omitempty" yaml:"has-changes,omitempty"`
	CreatedAt   *time.Time `json:"created-at,omitempty"  yaml:"created-at,omitempty"`
	WorkspaceID string     `json:"-"                     yaml:"workspace-id,omitempty"`
	PlanID      string     `json:"-"                     yaml:"plan-id,omitempty"`
	ApplyID     string     `json:"-"                     yaml:"apply-id,omitempty"`
}

// RunCreateOptions are the attributes for creating a run.
type RunCreateOptions struct {
	Message   *string `json:"message,omitempty"`
	IsDestroy *bool   `json:"is-destroy,omitempty"`
	AutoApply *bool   `json:"auto-apply,omitempty"`

	// WorkspaceID names the target workspace via relationships.
	WorkspaceID string `json:"-"`

	// ConfigurationVersionID pins the run to a configuration version via
	// relationships. Empty uses the workspace's latest.
	ConfigurationVersionID string `json:"-"`
}

// Plan represents the plan phase of a run.
type Plan struct {
	ID                   string     `json:"-"                               yaml:"id"`
	Status               string     `json:"status,omitempty"                yaml:"status,omitempty"`
	HasChanges           bool       `json:"has-changes,omitempty"           yaml:"has-changes,omitempty"`
	ResourceAdditions    int        `json:"resource-additions,omitempty"    yaml:"resource-additions,omitempty"`
	ResourceChanges      int        `json:"resource-changes,omitempty"      yaml:"resource-changes,omitempty"`
	ResourceDestructions int        `json:"resource-destructions,omitempty" yaml:"resource-destructions,omitempty"`
	LogReadURL           string     `json:"log-read-url,omitempty"          yaml:"log-read-url,omitempty"`
	QueuedAt             *time.Time `json:"queued-at,omitempty"             yaml:"queued-at,omitempty"`
}

// Apply represents the apply phase of a run.
type Apply struct {
	ID                   string     `json:"-"                               yaml:"id"`
	Status               string     `json:"status,omitempty"                yaml:"status,omitempty"`
	ResourceAdditions    int        `json:"resource-additions,omitempty"    yaml:"resource-additions,omitempty"`
	ResourceChanges      int        `json:"resource-changes,omitempty"      yaml:"resource-changes,omitempty"`
	ResourceDestructions int        `json:"resource-destructions,omitempty" yaml:"resource-destructions,omitempty"`
	LogReadURL           string     `json:"log-read-url,omitempty"          yaml:"log-read-url,omitempty"`
	QueuedAt             *time.Time `json:"queued-at,omitempty"             yaml:"queued-at,omitempty"`
}

// RunTrigger connects a source workspace to a workspace whose runs it queues.
type RunTrigger struct {
	ID            string     `json:"-"                        yaml:"id"`
	SourceableID  string     `json:"-"                        yaml:"sourceable-id,omitempty"`
	WorkspaceID   string     `json:"-"                        yaml:"workspace-id,omitempty"`
	WorkspaceName string     `json:"workspace-name,omitempty" yaml:"workspace-name,omitempty"`
	SourceName    string     `json:"sourceable-name,omitempty" yaml:"sourceable-name,omitempty"`
	CreatedAt     *time.Time `json:"created-at,omitempty"     yaml:"created-at,omitempty"`
}

// Variable represents a workspace variable.
type Variable struct {
	ID          string `json:"-"                     yaml:"id"`
	Key         string `json:"key,omitempty"         yaml:"key,omitempty"`
	Value       string `json:"value,omitempty"       yaml:"value,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string `json:"category,omitempty"    yaml:"category,omitempty"`
	HCL         bool   `json:"hcl,omitempty"         yaml:"hcl,omitempty"`
	Sensitive   bool   `json:"sensitive,omitempty"   yaml:"sensitive,omitempty"`
	WorkspaceID string `json:"-"                     yaml:"workspace-id,omitempty"`
}

// VariableCreateOptions are the attributes for creating a variable.
type VariableCreateOptions struct {
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
	HCL         *bool   `json:"hcl,omitempty"`
	Sensitive   *bool   `json:"sensitive,omitempty"`
}

// VariableUpdateOptions are the attributes for updating a variable.
type VariableUpdateOptions struct {
	Key         *string `json:"key,omitempty"`
	Value       *string `json:"value,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	HCL         *bool   `json:"hcl,omitempty"`
	Sensitive   *bool   `json:"sensitive,omitempty"`
}

// VariableSet groups variables applied across workspaces.
type VariableSet struct {
	ID             string `json:"-"                         yaml:"id"`
	Name           string `json:"name,omitempty"            yaml:"name,omitempty"`
	Description    string `json:"description,omitempty"     yaml:"description,omitempty"`
	Global         bool   `json:"global,omitempty"          yaml:"global,omitempty"`
	Priority       bool   `json:"priority,omitempty"        yaml:"priority,omitempty"`
	VariableCount  int    `json:"var-count,omitempty"       yaml:"var-count,omitempty"`
	WorkspaceCount int    `json:"workspace-count,omitempty" yaml:"workspace-count,omitempty"`
	Organization   string `json:"-"                         yaml:"organization,omitempty"`
}

// VariableSetCreateOptions are the attributes for creating a variable set.
type VariableSetCreateOptions struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Global      *bool   `json:"global,omitempty"`
	Priority    *bool   `json:"priority,omitempty"`
}

// VariableSetUpdateOptions are the attributes for updating a variable set.
type VariableSetUpdateOptions struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Global      *bool   `json:"global,omitempty"`
	Priority    *bool   `json:"priority,omitempty"`
}

// VariableSetVariable is a variable belonging to a variable set.
type VariableSetVariable struct {
	ID            string `json:"-"                     yaml:"id"`
	Key           string `json:"key,omitempty"         yaml:"key,omitempty"`
	Value         string `json:"value,omitempty"       yaml:"value,omitempty"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	Category      string `json:"category,omitempty"    yaml:"category,omitempty"`
	HCL           bool   `json:"hcl,omitempty"         yaml:"hcl,omitempty"`
	Sensitive     bool   `json:"sensitive,omitempty"   yaml:"sensitive,omitempty"`
	VariableSetID string `json:"-"                     yaml:"variable-set-id,omitempty"`
}

// StateVersion represents one stored state of a workspace.
type StateVersion struct {
	ID                 string     `json:"-"                              yaml:"id"`
	Serial             int64      `json:"serial,omitempty"               yaml:"serial,omitempty"`
	Lineage            string     `json:"lineage,omitempty"              yaml:"lineage,omitempty"`
	TerraformVersion   string     `json:"terraform-version,omitempty"    yaml:"terraform-version,omitempty"`
	ResourcesProcessed bool       `json:"resources-processed,omitempty"  yaml:"resources-processed,omitempty"`
	DownloadURL        string     `json:"hosted-state-download-url,omitempty" yaml:"hosted-state-download-url,omitempty"`
	CreatedAt          *time.Time `json:"created-at,omitempty"           yaml:"created-at,omitempty"`
	WorkspaceID        string     `json:"-"                              yaml:"workspace-id,omitempty"`
}

// StateVersionOutput is a single output value of a state version.
type StateVersionOutput struct {
	ID        string `json:"-"                   yaml:"id"`
	Name      string `json:"name,omitempty"      yaml:"name,omitempty"`
	Sensitive bool   `json:"sensitive,omitempty" yaml:"sensitive,omitempty"`
	Type      string `json:"type,omitempty"      yaml:"type,omitempty"`
	Value     any    `json:"value,omitempty"     yaml:"value,omitempty"`
}

// NotificationConfiguration delivers workspace events to an external
// destination.
type NotificationConfiguration struct {
	ID               string     `json:"-"                          yaml:"id"`
	Name             string     `json:"name,omitempty"             yaml:"name,omitempty"`
	DestinationType  string     `json:"destination-type,omitempty" yaml:"destination-type,omitempty"`
	Enabled          bool       `json:"enabled,omitempty"          yaml:"enabled,omitempty"`
	URL              string     `json:"url,omitempty"              yaml:"url,omitempty"`
	Token            string     `json:"token,omitempty"            yaml:"token,omitempty"`
	Triggers         []string   `json:"triggers,omitempty"         yaml:"triggers,omitempty"`
	DeliveryResponse any        `json:"delivery-responses,omitempty" yaml:"delivery-responses,omitempty"`
	CreatedAt        *time.Time `json:"created-at,omitempty"       yaml:"created-at,omitempty"`
	WorkspaceID      string     `json:"-"                          yaml:"workspace-id,omitempty"`
}

// NotificationConfigurationCreateOptions are the attributes for creating a
// notification configuration.
type NotificationConfigurationCreateOptions struct {
	Name            string   `json:"name"`
	DestinationType string   `json:"destination-type"`
	Enabled         *bool    `json:"enabled,omitempty"`
	URL             *string  `json:"url,omitempty"`
	Token           *string  `json:"token,omitempty"`
	Triggers        []string `json:"triggers,omitempty"`
}

// NotificationConfigurationUpdateOptions are the attributes for updating a
// notification configuration.
type NotificationConfigurationUpdateOptions struct {
	Name     *string  `json:"name,omitempty"`
	Enabled  *bool    `json:"enabled,omitempty"`
	URL      *string  `json:"url,omitempty"`
	Token    *string  `json:"token,omitempty"`
	Triggers []string `json:"triggers,omitempty"`
}

// PolicySet groups policies enforced across workspaces.
type PolicySet struct {
	ID             string     `json:"-"                         yaml:"id"`
	Name           string     `json:"name,omitempty"            yaml:"name,omitempty"`
	Description    string     `json:"description,omitempty"     yaml:"description,omitempty"`
	Kind           string     `json:"kind,omitempty"            yaml:"kind,omitempty"`
	Global         bool       `json:"global,omitempty"          yaml:"global,omitempty"`
	PolicyCount    int        `json:"policy-count,omitempty"    yaml:"policy-count,omitempty"`
	WorkspaceCount int        `json:"workspace-count,omitempty" yaml:"workspace-count,omitempty"`
	CreatedAt      *time.Time `json:"created-at,omitempty"      yaml:"created-at,omitempty"`
	Organization   string     `json:"-"                         yaml:"organization,omitempty"`
}

// PolicySetCreateOptions are the attributes for creating a policy set.
type PolicySetCreateOptions struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Kind        *string `json:"kind,omitempty"`
	Global      *bool   `json:"global,omitempty"`
}

// PolicySetUpdateOptions are the attributes for updating a policy set.
type PolicySetUpdateOptions struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Global      *bool   `json:"global,omitempty"`
}

// RegistryModule is a module in the private registry.
type RegistryModule struct {
	ID           string     `json:"-"                       yaml:"id"`
	Name         string     `json:"name,omitempty"          yaml:"name,omitempty"`
	Provider     string     `json:"provider,omitempty"      yaml:"provider,omitempty"`
	Namespace    string     `json:"namespace,omitempty"     yaml:"namespace,omitempty"`
	RegistryName string     `json:"registry-name,omitempty" yaml:"registry-name,omitempty"`
	Status       string     `json:"status,omitempty"        yaml:"status,omitempty"`
	CreatedAt    *time.Time `json:"created-at,omitempty"    yaml:"created-at,omitempty"`
	Organization string     `json:"-"                       yaml:"organization,omitempty"`
}

// RegistryModuleCreateOptions are the attributes for creating a registry
// module.
type RegistryModuleCreateOptions struct {
	Name         string  `json:"name"`
	Provider     string  `json:"provider"`
	RegistryName *string `json:"registry-name,omitempty"`
}

// OAuthToken is a VCS provider OAuth token.
type OAuthToken struct {
	ID                  string     `json:"-"                                yaml:"id"`
	UID                 string     `json:"uid,omitempty"                    yaml:"uid,omitempty"`
	ServiceProviderUser string     `json:"service-provider-user,omitempty"  yaml:"service-provider-user,omitempty"`
	HasSSHKey           bool       `json:"has-ssh-key,omitempty"            yaml:"has-ssh-key,omitempty"`
	CreatedAt           *time.Time `json:"created-at,omitempty"             yaml:"created-at,omitempty"`
	OAuthClientID       string     `json:"-"                                yaml:"oauth-client-id,omitempty"`
}

// OAuthTokenUpdateOptions are the attributes for updating an OAuth token.
type OAuthTokenUpdateOptions struct {
	PrivateSSHKey *string `json:"ssh-key,omitempty"`
}
