package client

import (
	"github.com/ibm-richard/go-tfe/internal/http"
)

// NewTestClient creates a client pointed at the given base URL with a fixed
// test token. The base URL is used as-is, without the /api/v2 prefix, so test
// servers can assert bare paths.
func NewTestClient(baseURL string) *Client {
	client := &Client{
		httpClient: http.NewClient(baseURL, "test-token"),
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}
