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

func TestRunTriggersClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/workspaces/ws-1/run-triggers", request.URL.Path)
		assert.Equal(t, "inbound", request.URL.Query().Get("filter[run-trigger][type]"))

		response := tfe.ListDocument[tfe.RunTrigger]{
			Data: []tfe.ResourceObject[tfe.RunTrigger]{
				{
					ID:         "rt-1",
					Type:       "run-triggers",
					Attributes: tfe.RunTrigger{WorkspaceName: "downstream", SourceName: "upstream"},
					Relationships: map[string]tfe.Relationship{
						"workspace":  *tfe.NewRelationship("workspaces", "ws-1"),
						"sourceable": *tfe.NewRelationship("workspaces", "ws-2"),
					},
				},
			},
			Meta: tfe.Meta{Pagination: &tfe.Pagination{CurrentPage: 1, TotalPages: 1, TotalCount: 1}},
		}

		_ = json.NewEncoder(writer).Encode(response)
	}))
	defer server.Close()

	c := NewTestClient(server.URL)

	page, err := c.RunTriggers().List(context.Background(), "ws-1", "inbound", nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "ws-2", page.Items[0].SourceableID)
	assert.Equal(t, "upstream", page.Items[0].SourceName)
}

func TestRunTriggersClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/workspaces/ws-1/run-triggers", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body map[string]any

		_ = json.NewDecoder(request.Body).Decode(&body)
		data, ok := body["data"].(map[string]any)
		require.True(t, ok)

		relationships, ok := data["relationships"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, relationships, "sourceable")

		response := tfe.Document[tfe.ResourceObject[tfe.RunTrigger]]{
			Data: tfe.ResourceObject[tfe.RunTrigger]{
				ID:   "rt-1",
				Type: "run-triggers",
				Relationships: map[string]tfe.Relationship{
					"workspace":  *tfe.NewRelationship("workspaces", "ws-1"),
					"sourceable": *tfe.NewRelationship("workspaces", "ws-2"),
				},
			},
		}

		writer.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(writer).Encode(response)
	}))
	defer server.Close()

	c := NewTestClient(server.URL)

	trigger, err := c.RunTriggers().Create(context.Background(), "ws-1", "ws-2")
	require.NoError(t, err)
	assert.Equal(t, "rt-1", trigger.ID)
	assert.Equal(t, "ws-2", trigger.SourceableID)
}

func TestRunTriggersClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/run-triggers/rt-1", request.URL.Path)
		assert.Equal(t, "DELETE", request.Method)
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewTestClient(server.URL)

	require.NoError(t, c.RunTriggers().Delete(context.Background(), "rt-1"))
}
