// Package constants holds shared defaults for the client and CLI.
package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// API defaults.
const (
	// DefaultBasePath is the path prefix the API is served under.
	DefaultBasePath = "/api/v2"

	// DefaultAddress is the HCP Terraform endpoint used when no address is
	// configured.
	DefaultAddress = "https://app.terraform.io"

	// StandardPageSize is the default page size for list operations.
	StandardPageSize = 20

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 100
)

// ContentTypeJSONAPI is the media type for JSON:API request and response
// bodies.
const ContentTypeJSONAPI = "application/vnd.api+json"
