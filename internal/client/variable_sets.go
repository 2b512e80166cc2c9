package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ibm-richard/go-tfe/internal/http"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// VariableSetsClient implements tfe.VariableSetsClient.
type VariableSetsClient struct {
	httpClient *http.Client
}

// NewVariableSetsClient creates a new variable sets client.
func NewVariableSetsClient(httpClient *http.Client) *VariableSetsClient {
	return &VariableSetsClient{httpClient: httpClient}
}

func flattenVariableSet(res *tfe.ResourceObject[tfe.VariableSet]) tfe.VariableSet {
	varset := res.Attributes
	varset.ID = res.ID
	varset.Organization = res.RelatedID("organization")

	return varset
}

func flattenVariableSetVariable(variableSetID string) func(*tfe.ResourceObject[tfe.VariableSetVariable]) tfe.VariableSetVariable {
	return func(res *tfe.ResourceObject[tfe.VariableSetVariable]) tfe.VariableSetVariable {
		variable := res.Attributes
		variable.ID = res.ID
		variable.VariableSetID = variableSetID

		return variable
	}
}

// List implements tfe.VariableSetsClient.List.
func (c *VariableSetsClient) List(ctx context.Context, organization string, opts *tfe.ListOptions) (*tfe.Page[tfe.VariableSet], error) {
	if organization == "" {
		return nil, tfe.ErrInvalidOrg
	}

	path := "/organizations/" + url.PathEscape(organization) + "/varsets"

	resp, err := c.httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing variable sets: %w", err)
	}

	doc, err := decodeList[tfe.VariableSet](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing variable sets list: %w", err)
	}

	return buildPage(doc, flattenVariableSet), nil
}

// Read implements tfe.VariableSetsClient.Read.
func (c *VariableSetsClient) Read(ctx context.Context, variableSetID string) (*tfe.VariableSet, error) {
	resp, err := c.httpClient.Get(ctx, "/varsets/"+url.PathEscape(variableSetID), nil)
	if err != nil {
		return nil, fmt.Errorf("reading variable set: %w", err)
	}

	res, err := decodeResource[tfe.VariableSet](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing variable set: %w", err)
	}

	varset := flattenVariableSet(res)

	return &varset, nil
}

// Create implements tfe.VariableSetsClient.Create.
func (c *VariableSetsClient) Create(ctx context.Context, organization string, opts *tfe.VariableSetCreateOptions) (*tfe.VariableSet, error) {
	if organization == "" {
		return nil, tfe.ErrInvalidOrg
	}

	body := tfe.Document[tfe.ResourceObject[*tfe.VariableSetCreateOptions]]{
		Data: tfe.ResourceObject[*tfe.VariableSetCreateOptions]{
			Type:       "varsets",
			Attributes: opts,
		},
	}

	path := "/organizations/" + url.PathEscape(organization) + "/varsets"

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating variable set: %w", err)
	}

	res, err := decodeResource[tfe.VariableSet](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing variable set: %w", err)
	}

	varset := flattenVariableSet(res)

	return &varset, nil
}

// Update implements tfe.VariableSetsClient.Update.
func (c *VariableSetsClient) Update(ctx context.Context, variableSetID string, opts *tfe.VariableSetUpdateOptions) (*tfe.VariableSet, error) {
	body := tfe.Document[tfe.ResourceObject[*tfe.VariableSetUpdateOptions]]{
		Data: tfe.ResourceObject[*tfe.VariableSetUpdateOptions]{
			Type:       "varsets",
			Attributes: opts,
		},
	}

	resp, err := c.httpClient.Patch(ctx, "/varsets/"+url.PathEscape(variableSetID), body)
	if err != nil {
		return nil, fmt.Errorf("updating variable set: %w", err)
	}

	res, err := decodeResource[tfe.VariableSet](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing variable set: %w", err)
	}

	varset := flattenVariableSet(res)

	return &varset, nil
}

// Delete implements tfe.VariableSetsClient.Delete.
func (c *VariableSetsClient) Delete(ctx context.Context, variableSetID string) error {
	_, err := c.httpClient.Delete(ctx, "/varsets/"+url.PathEscape(variableSetID))
	if err != nil {
		return fmt.Errorf("deleting variable set: %w", err)
	}

	return nil
}

// ApplyToWorkspaces implements tfe.VariableSetsClient.ApplyToWorkspaces.
func (c *VariableSetsClient) ApplyToWorkspaces(ctx context.Context, variableSetID string, workspaceIDs []string) error {
	body := workspaceRelationships(workspaceIDs)
	path := "/varsets/" + url.PathEscape(variableSetID) + "/relationships/workspaces"

	_, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return fmt.Errorf("applying variable set to workspaces: %w", err)
	}

	return nil
}

// RemoveFromWorkspaces implements tfe.VariableSetsClient.RemoveFromWorkspaces.
func (c *VariableSetsClient) RemoveFromWorkspaces(ctx context.Context, variableSetID string, workspaceIDs []string) error {
	body := workspaceRelationships(workspaceIDs)
	path := "/varsets/" + url.PathEscape(variableSetID) + "/relationships/workspaces"

	req := &http.Request{
		Method: "DELETE",
		Path:   path,
		Body:   body,
	}

	_, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("removing variable set from workspaces: %w", err)
	}

	return nil
}

func workspaceRelationships(workspaceIDs []string) tfe.ToManyRelationship {
	rel := tfe.ToManyRelationship{Data: make([]tfe.RelationshipData, 0, len(workspaceIDs))}
	for _, id := range workspaceIDs {
		rel.Data = append(rel.Data, tfe.RelationshipData{ID: id, Type: "workspaces"})
	}

	return rel
}

// ListVariables implements tfe.VariableSetsClient.ListVariables.
func (c *VariableSetsClient) ListVariables(ctx context.Context, variableSetID string, opts *tfe.ListOptions) (*tfe.Page[tfe.VariableSetVariable], error) {
	path := "/varsets/" + url.PathEscape(variableSetID) + "/relationships/vars"

	resp, err := c.httpClient.Get(ctx, path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing variable set variables: %w", err)
	}

	doc, err := decodeList[tfe.VariableSetVariable](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing variable set variables list: %w", err)
	}

	return buildPage(doc, flattenVariableSetVariable(variableSetID)), nil
}

// CreateVariable implements tfe.VariableSetsClient.CreateVariable.
func (c *VariableSetsClient) CreateVariable(ctx context.Context, variableSetID string, opts *tfe.VariableCreateOptions) (*tfe.VariableSetVariable, error) {
	body := tfe.Document[tfe.ResourceObject[*tfe.VariableCreateOptions]]{
		Data: tfe.ResourceObject[*tfe.VariableCreateOptions]{
			Type:       "vars",
			Attributes: opts,
		},
	}

	path := "/varsets/" + url.PathEscape(variableSetID) + "/relationships/vars"

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("creating variable set variable: %w", err)
	}

	res, err := decodeResource[tfe.VariableSetVariable](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing variable set variable: %w", err)
	}

	variable := flattenVariableSetVariable(variableSetID)(res)

	return &variable, nil
}

// UpdateVariable implements tfe.VariableSetsClient.UpdateVariable.
func (c *VariableSetsClient) UpdateVariable(ctx context.Context, variableSetID, variableID string, opts *tfe.VariableUpdateOptions) (*tfe.VariableSetVariable, error) {
	body := tfe.Document[tfe.ResourceObject[*tfe.VariableUpdateOptions]]{
		Data: tfe.ResourceObject[*tfe.VariableUpdateOptions]{
			ID:         variableID,
			Type:       "vars",
			Attributes: opts,
		},
	}

	path := "/varsets/" + url.PathEscape(variableSetID) + "/relationships/vars/" + url.PathEscape(variableID)

	resp, err := c.httpClient.Patch(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("updating variable set variable: %w", err)
	}

	res, err := decodeResource[tfe.VariableSetVariable](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing variable set variable: %w", err)
	}

	variable := flattenVariableSetVariable(variableSetID)(res)

	return &variable, nil
}

// DeleteVariable implements tfe.VariableSetsClient.DeleteVariable.
func (c *VariableSetsClient) DeleteVariable(ctx context.Context, variableSetID, variableID string) error {
	path := "/varsets/" + url.PathEscape(variableSetID) + "/relationships/vars/" + url.PathEscape(variableID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting variable set variable: %w", err)
	}

	return nil
}
