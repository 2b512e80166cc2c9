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

func variableDocument(id, key, value string) tfe.Document[tfe.ResourceObject[tfe.Variable]] {
	return tfe.Document[tfe.ResourceObject[tfe.Variable]]{
		Data: tfe.ResourceObject[tfe.Variable]{
			ID:   id,
			Type: "vars",
			Attributes: tfe.Variable{
				Key:      key,
				Value:    value,
				Category: tfe.CategoryTerraform,
			},
		},
	}
}

func TestVariablesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/workspaces/ws-1/vars", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		response := tfe.ListDocument[tfe.Variable]{
			Data: []tfe.ResourceObject[tfe.Variable]{
				variableDocument("var-1", "region", "eu-west-1").Data,
				variableDocument("var-2", "instance_type", "m5.large").Data,
			},
			Meta: tfe.Meta{Pagination: &tfe.Pagination{CurrentPage: 1, TotalPages: 1, TotalCount: 2}},
		}

		_ = json.NewEncoder(writer).Encode(response)
	}))
	defer server.Close()

	c := NewTestClient(server.URL)

	page, err := c.Variables().List(context.Background(), "ws-1", nil)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, "region", page.Items[0].Key)
	assert.Equal(t, "ws-1", page.Items[0].WorkspaceID)
}

func TestVariablesClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/workspaces/ws-1/vars", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body tfe.Document[tfe.ResourceObject[tfe.VariableCreateOptions]]

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "vars", body.Data.Type)
		assert.Equal(t, "region", body.Data.Attributes.Key)
		assert.Equal(t, tfe.CategoryTerraform, body.Data.Attributes.Category)

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(variableDocument("var-1", "region", "eu-west-1"))
	}))
	defer server.Close()

	c := NewTestClient(server.URL)

	variable, err := c.Variables().Create(context.Background(), "ws-1", &tfe.VariableCreateOptions{
		Key:      "region",
		Value:    "eu-west-1",
		Category: tfe.CategoryTerraform,
	})
	require.NoError(t, err)
	assert.Equal(t, "var-1", variable.ID)
	assert.Equal(t, "eu-west-1", variable.Value)
}

func TestVariablesClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/workspaces/ws-1/vars/var-1", request.URL.Path)
		assert.Equal(t, "PATCH", request.Method)

		var body tfe.Document[tfe.ResourceObject[tfe.VariableUpdateOptions]]

		_ = json.NewDecoder(request.Body).Decode(&body)
		assert.Equal(t, "var-1", body.Data.ID)
		require.NotNil(t, body.Data.Attributes.Value)
		assert.Equal(t, "us-east-1", *body.Data.Attributes.Value)

		_ = json.NewEncoder(writer).Encode(variableDocument("var-1", "region", "us-east-1"))
	}))
	defer server.Close()

	c := NewTestClient(server.URL)

	value := "us-east-1"

	variable, err := c.Variables().Update(context.Background(), "ws-1", "var-1", &tfe.VariableUpdateOptions{Value: &value})
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", variable.Value)
}

func TestVariablesClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/workspaces/ws-1/vars/var-1", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewTestClient(server.URL)

	require.NoError(t, c.Variables().Delete(context.Background(), "ws-1", "var-1"))
}

func TestVariablesClient_MissingWorkspace(t *testing.T) {
	t.Parallel()

	c := NewTestClient("http://127.0.0.1:0")

	_, err := c.Variables().List(context.Background(), "", nil)
	require.ErrorIs(t, err, tfe.ErrWorkspaceRequired)

	_, err = c.Variables().Create(context.Background(), "", &tfe.VariableCreateOptions{Key: "k", Value: "v", Category: tfe.CategoryEnv})
	require.ErrorIs(t, err, tfe.ErrWorkspaceRequired)
}
