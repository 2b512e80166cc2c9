package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/ibm-richard/go-tfe/internal/http"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v2/organizations", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/vnd.api+json", request.Header.Get("Accept"))

			response := map[string]string{"id": "org-1", "name": "test-org"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "test-token")

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/api/v2/organizations",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "org-1", result["id"])
		assert.Equal(t, "test-org", result["name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v2/organizations", request.URL.Path)
			assert.Equal(t, "2", request.URL.Query().Get("page[number]"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "")

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/api/v2/organizations",
			Query:  url.Values{"page[number]": []string{"2"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/vnd.api+json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "test-org", body["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "")

		req := &internalhttp.Request{
			Method: "POST",
			Path:   "/api/v2/organizations",
			Body:   map[string]string{"name": "test-org"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "")

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/api/v2/organizations",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := internalhttp.NewClient(server.URL, "", internalhttp.WithLogger(logger), internalhttp.WithDebug(true))

		req := &internalhttp.Request{
			Method: "GET",
			Path:   "/api/v2/organizations",
		}

		_, err := client.Do(context.Background(), req)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_ErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		body       string
		check      func(t *testing.T, err error)
	}{
		{
			name:       "401 is an auth error",
			statusCode: http.StatusUnauthorized,
			body:       `{"errors":[{"status":"401","title":"unauthorized"}]}`,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, tfe.IsUnauthorized(err))
			},
		},
		{
			name:       "403 is an auth error",
			statusCode: http.StatusForbidden,
			body:       `{"errors":[{"status":"403","title":"forbidden"}]}`,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, tfe.IsUnauthorized(err))
			},
		},
		{
			name:       "404 is a not found error",
			statusCode: http.StatusNotFound,
			body:       `{"errors":[{"status":"404","title":"not found"}]}`,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, tfe.IsNotFound(err))
			},
		},
		{
			name:       "422 preserves field detail",
			statusCode: http.StatusUnprocessableEntity,
			body:       `{"errors":[{"status":"422","title":"invalid attribute","detail":"Name has already been taken","source":{"pointer":"/data/attributes/name"}}]}`,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, tfe.IsValidation(err))

				var verr *tfe.ValidationError
				require.ErrorAs(t, err, &verr)
				fields := verr.FieldErrors()
				assert.Contains(t, fields, "name")
				assert.Contains(t, fields["name"][0], "already been taken")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			attempts := 0

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				attempts++

				writer.WriteHeader(testCase.statusCode)
				_, _ = writer.Write([]byte(testCase.body))
			}))
			defer server.Close()

			client := internalhttp.NewClient(server.URL, "", internalhttp.WithRetryConfig(3, 10*time.Millisecond, 50*time.Millisecond))

			resp, err := client.Get(context.Background(), "/api/v2/test", nil)
			require.Error(t, err)
			assert.Equal(t, testCase.statusCode, resp.StatusCode)
			assert.Equal(t, 1, attempts, "non-retryable status must surface on the first attempt")
			testCase.check(t, err)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("succeeds after rate limiting subsides", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts <= 3 {
				writer.WriteHeader(http.StatusTooManyRequests)
			} else {
				writer.WriteHeader(http.StatusOK)
				_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
			}
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "", internalhttp.WithRetryConfig(3, 5*time.Millisecond, 20*time.Millisecond))

		resp, err := client.Get(context.Background(), "/api/v2/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 4, attempts, "three retries after the initial attempt")
	})

	t.Run("retries on 5xx errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++
			if attempts < 3 {
				writer.WriteHeader(http.StatusInternalServerError)
			} else {
				writer.WriteHeader(http.StatusOK)
			}
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "", internalhttp.WithRetryConfig(3, 5*time.Millisecond, 20*time.Millisecond))

		resp, err := client.Get(context.Background(), "/api/v2/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, attempts)
	})

	t.Run("exhausted retries surface a rate limit error", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.Header().Set("Retry-After", "0.01")
			writer.WriteHeader(http.StatusTooManyRequests)
			_, _ = writer.Write([]byte(`{"errors":[{"status":"429","title":"rate limited"}]}`))
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "", internalhttp.WithRetryConfig(2, 5*time.Millisecond, 20*time.Millisecond))

		_, err := client.Get(context.Background(), "/api/v2/test", nil)
		require.Error(t, err)
		assert.True(t, tfe.IsRateLimited(err))
		assert.Equal(t, 3, attempts)

		var rlErr *tfe.RateLimitError
		require.ErrorAs(t, err, &rlErr)
		assert.Equal(t, 10*time.Millisecond, rlErr.RetryAfter)
	})

	t.Run("exhausted retries surface a server error", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "", internalhttp.WithRetryConfig(2, 5*time.Millisecond, 20*time.Millisecond))

		_, err := client.Get(context.Background(), "/api/v2/test", nil)
		require.Error(t, err)
		assert.True(t, tfe.IsServerError(err))
		assert.Equal(t, 3, attempts)
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "", internalhttp.WithRetryConfig(3, 5*time.Millisecond, 20*time.Millisecond))

		resp, err := client.Get(context.Background(), "/api/v2/test", nil)
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, 1, attempts) // Should not retry
	})

	t.Run("deadline mid-retry aborts remaining attempts", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := internalhttp.NewClient(server.URL, "", internalhttp.WithRetryConfig(10, 50*time.Millisecond, 100*time.Millisecond))

		ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
		defer cancel()

		start := time.Now()
		_, err := client.Get(ctx, "/api/v2/test", nil)
		require.Error(t, err)
		assert.True(t, tfe.IsTimeout(err))
		assert.Less(t, time.Since(start), 2*time.Second, "must not sit out the full retry budget")
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*internalhttp.Client, context.Context) (*internalhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *internalhttp.Client, ctx context.Context) (*internalhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *internalhttp.Client, ctx context.Context) (*internalhttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *internalhttp.Client, ctx context.Context) (*internalhttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *internalhttp.Client, ctx context.Context) (*internalhttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *internalhttp.Client, ctx context.Context) (*internalhttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := internalhttp.NewClient(server.URL, "")
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_ResponseCache(t *testing.T) {
	t.Parallel()

	attempts := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		attempts++

		writer.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(writer).Encode(map[string]string{"id": "ws-1"})
	}))
	defer server.Close()

	cache := tfe.NewMemoryCache(10)
	defer func() { _ = cache.Close() }()

	client := internalhttp.NewClient(server.URL, "", internalhttp.WithCache(cache, time.Minute))

	resp, err := client.Get(context.Background(), "/api/v2/workspaces/ws-1", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, attempts)

	cached, err := client.Get(context.Background(), "/api/v2/workspaces/ws-1", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, attempts, "second read must be served from cache")
	assert.Equal(t, resp.Body, cached.Body)
	assert.Equal(t, "HIT", cached.Headers.Get("X-Cache"))

	// A different URL is a different key.
	_, err = client.Get(context.Background(), "/api/v2/workspaces/ws-2", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "stamped", request.Header.Get("X-Request-Source"))
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	chain := tfe.NewInterceptorChain()
	chain.AddRequestInterceptor(tfe.HeaderInterceptor(map[string]string{"X-Request-Source": "stamped"}))

	var observedStatus int

	chain.AddResponseInterceptor(func(ctx context.Context, req *tfe.InterceptedRequest, resp *tfe.InterceptedResponse) error {
		observedStatus = resp.StatusCode

		return nil
	})

	client := internalhttp.NewClient(server.URL, "", internalhttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/api/v2/test", nil)
	require.NoError(t, err)
	assert.Equal(t, 200, observedStatus)
}
