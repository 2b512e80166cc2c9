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

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *tfe.Config
		wantErr error
	}{
		{
			name:    "nil config",
			config:  nil,
			wantErr: tfe.ErrConfigRequired,
		},
		{
			name:    "missing address",
			config:  &tfe.Config{Token: "t"},
			wantErr: tfe.ErrAddressRequired,
		},
		{
			name:    "missing token",
			config:  &tfe.Config{Address: "https://tfe.example.com"},
			wantErr: tfe.ErrTokenRequired,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(testCase.config)
			require.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestNew_UsesBasePath(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v2/organizations/acme", request.URL.Path)
		assert.Equal(t, "Bearer secret-token", request.Header.Get("Authorization"))

		response := tfe.Document[tfe.ResourceObject[tfe.Organization]]{
			Data: tfe.ResourceObject[tfe.Organization]{
				ID:         "acme",
				Type:       "organizations",
				Attributes: tfe.Organization{Name: "acme"},
			},
		}

		_ = json.NewEncoder(writer).Encode(response)
	}))
	defer server.Close()

	c, err := New(&tfe.Config{
		Address: server.URL,
		Token:   "secret-token",
	})
	require.NoError(t, err)

	org, err := c.Organizations().Read(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, "acme", org.Name)
}

func TestNew_CustomBasePath(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/tfe/api/v2/organizations", request.URL.Path)

		response := tfe.ListDocument[tfe.Organization]{
			Meta: tfe.Meta{Pagination: &tfe.Pagination{CurrentPage: 1, TotalPages: 1}},
		}

		_ = json.NewEncoder(writer).Encode(response)
	}))
	defer server.Close()

	c, err := New(&tfe.Config{
		Address:  server.URL,
		Token:    "secret-token",
		BasePath: "/tfe/api/v2",
	})
	require.NoError(t, err)

	page, err := c.Organizations().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestNew_WithMemoryCache(t *testing.T) {
	t.Parallel()

	hits := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hits++

		response := tfe.Document[tfe.ResourceObject[tfe.Organization]]{
			Data: tfe.ResourceObject[tfe.Organization]{
				ID:         "acme",
				Type:       "organizations",
				Attributes: tfe.Organization{Name: "acme"},
			},
		}

		_ = json.NewEncoder(writer).Encode(response)
	}))
	defer server.Close()

	c, err := New(&tfe.Config{
		Address: server.URL,
		Token:   "secret-token",
		Cache:   tfe.DefaultCacheConfig(),
	})
	require.NoError(t, err)

	_, err = c.Organizations().Read(context.Background(), "acme")
	require.NoError(t, err)

	_, err = c.Organizations().Read(context.Background(), "acme")
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
}

func TestNew_WithInterceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "trace-123", request.Header.Get("X-Request-ID"))

		response := tfe.Document[tfe.ResourceObject[tfe.Organization]]{
			Data: tfe.ResourceObject[tfe.Organization]{
				ID:         "acme",
				Type:       "organizations",
				Attributes: tfe.Organization{Name: "acme"},
			},
		}

		_ = json.NewEncoder(writer).Encode(response)
	}))
	defer server.Close()

	chain := tfe.NewInterceptorChain()
	chain.AddRequestInterceptor(tfe.HeaderInterceptor(map[string]string{"X-Request-ID": "trace-123"}))

	responses := 0
	chain.AddResponseInterceptor(func(ctx context.Context, req *tfe.InterceptedRequest, resp *tfe.InterceptedResponse) error {
		responses++

		return nil
	})

	c, err := New(&tfe.Config{
		Address:      server.URL,
		Token:        "secret-token",
		Interceptors: chain,
	})
	require.NoError(t, err)

	_, err = c.Organizations().Read(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, 1, responses)
}

func TestNew_CacheClearedOnWrite(t *testing.T) {
	t.Parallel()

	getHits := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method == http.MethodGet {
			getHits++
		}

		response := tfe.Document[tfe.ResourceObject[tfe.Organization]]{
			Data: tfe.ResourceObject[tfe.Organization]{
				ID:         "acme",
				Type:       "organizations",
				Attributes: tfe.Organization{Name: "acme"},
			},
		}

		_ = json.NewEncoder(writer).Encode(response)
	}))
	defer server.Close()

	c, err := New(&tfe.Config{
		Address: server.URL,
		Token:   "secret-token",
		Cache:   tfe.DefaultCacheConfig(),
	})
	require.NoError(t, err)

	ctx := context.Background()

	// Two reads, one request: the second is served from cache.
	_, err = c.Organizations().Read(ctx, "acme")
	require.NoError(t, err)
	_, err = c.Organizations().Read(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, 1, getHits)

	// A write clears the cache, so the next read goes to the server.
	_, err = c.Organizations().Update(ctx, "acme", &tfe.OrganizationUpdateOptions{})
	require.NoError(t, err)

	_, err = c.Organizations().Read(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, 2, getHits)
}
