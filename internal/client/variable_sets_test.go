package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/ibm-richard/go-tfe/internal/client"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

func variableSetDocument(id, name string) tfe.Document[tfe.ResourceObject[tfe.VariableSet]] {
	return tfe.Document[tfe.ResourceObject[tfe.VariableSet]]{
		Data: tfe.ResourceObject[tfe.VariableSet]{
			ID:         id,
			Type:       "varsets",
			Attributes: tfe.VariableSet{Name: name},
			Relationships: map[string]tfe.Relationship{
				"organization": *tfe.NewRelationship("organizations", "acme"),
			},
		},
	}
}

func TestVariableSetsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/organizations/acme/varsets", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		response := tfe.ListDocument[tfe.VariableSet]{
			Data: []tfe.ResourceObject[tfe.VariableSet]{
				variableSetDocument("varset-1", "aws-credentials").Data,
			},
			Meta: tfe.Meta{Pagination: &tfe.Pagination{CurrentPage: 1, TotalPages: 1, TotalCount: 1}},
		}

		_ = json.NewEncoder(writer).Encode(response)
	}))
	defer server.Close()

	c := NewTestClient(server.URL)

	page, err := c.VariableSets().List(context.Background(), "acme", nil)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, "varset-1", page.Items[0].ID)
	assert.Equal(t, "acme", page.Items[0].Organization)
}

func TestVariableSetsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/organizations/acme/varsets", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body tfe.Document[tfe.ResourceObject[tfe.VariableSetCreateOptions]]

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "varsets", body.Data.Type)
		assert.Equal(t, "aws-credentials", body.Data.Attributes.Name)

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(variableSetDocument("varset-1", "aws-credentials"))
	}))
	defer server.Close()

	c := NewTestClient(server.URL)

	varset, err := c.VariableSets().Create(context.Background(), "acme", &tfe.VariableSetCreateOptions{
		Name: "aws-credentials",
	})
	require.NoError(t, err)
	assert.Equal(t, "varset-1", varset.ID)
}

func TestVariableSetsClient_ApplyToWorkspaces(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/varsets/varset-1/relationships/workspaces", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body tfe.ToManyRelationship

		_ = json.NewDecoder(request.Body).Decode(&body)
		require.Len(t, body.Data, 2)
		assert.Equal(t, "ws-1", body.Data[0].ID)
		assert.Equal(t, "workspaces", body.Data[0].Type)

		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewTestClient(server.URL)

	err := c.VariableSets().ApplyToWorkspaces(context.Background(), "varset-1", []string{"ws-1", "ws-2"})
	require.NoError(t, err)
}

func TestVariableSetsClient_RemoveFromWorkspaces(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/varsets/varset-1/relationships/workspaces", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)

		var body tfe.ToManyRelationship

		_ = json.NewDecoder(request.Body).Decode(&body)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "ws-2", body.Data[0].ID)

		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewTestClient(server.URL)

	err := c.VariableSets().RemoveFromWorkspaces(context.Background(), "varset-1", []string{"ws-2"})
	require.NoError(t, err)
}

func TestVariableSetsClient_Variables(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch {
		case request.Method == "GET":
			assert.Equal(t, "/varsets/varset-1/relationships/vars", request.URL.Path)

			response := tfe.ListDocument[tfe.VariableSetVariable]{
				Data: []tfe.ResourceObject[tfe.VariableSetVariable]{
					{ID: "var-1", Type: "vars", Attributes: tfe.VariableSetVariable{Key: "AWS_REGION", Category: tfe.CategoryEnv}},
				},
				Meta: tfe.Meta{Pagination: &tfe.Pagination{CurrentPage: 1, TotalPages: 1, TotalCount: 1}},
			}

			_ = json.NewEncoder(writer).Encode(response)
		case request.Method == "POST":
			assert.Equal(t, "/varsets/varset-1/relationships/vars", request.URL.Path)

			response := tfe.Document[tfe.ResourceObject[tfe.VariableSetVariable]]{
				Data: tfe.ResourceObject[tfe.VariableSetVariable]{
					ID:         "var-2",
					Type:       "vars",
					Attributes: tfe.VariableSetVariable{Key: "AWS_PROFILE", Category: tfe.CategoryEnv},
				},
			}

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(response)
		case request.Method == "DELETE":
			assert.Equal(t, "/varsets/varset-1/relationships/vars/var-1", request.URL.Path)
			writer.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	c := NewTestClient(server.URL)

	page, err := c.VariableSets().ListVariables(context.Background(), "varset-1", nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "AWS_REGION", page.Items[0].Key)
	assert.Equal(t, "varset-1", page.Items[0].VariableSetID)

	variable, err := c.VariableSets().CreateVariable(context.Background(), "varset-1", &tfe.VariableCreateOptions{
		Key:      "AWS_PROFILE",
		Value:    "prod",
		Category: tfe.CategoryEnv,
	})
	require.NoError(t, err)
	assert.Equal(t, "var-2", variable.ID)

	require.NoError(t, c.VariableSets().DeleteVariable(context.Background(), "varset-1", "var-1"))
}
