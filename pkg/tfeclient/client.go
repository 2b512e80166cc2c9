// Package tfeclient provides the main entry point for creating Terraform
// Enterprise API clients.
package tfeclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/ibm-richard/go-tfe/internal/client"
	"github.com/ibm-richard/go-tfe/internal/constants"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// New creates a new Terraform Enterprise API client. A nil config uses the
// environment alone. The address falls back to TFE_ADDRESS (or TFE_HOST) and
// then to the public Terraform Cloud endpoint; the token falls back to
// TFE_TOKEN and is required.
func New(config *tfe.Config) (tfe.Client, error) {
	cfg := tfe.Config{}
	if config != nil {
		cfg = *config
	}

	if cfg.Address == "" {
		cfg.Address = addressFromEnv()
	}

	if cfg.Token == "" {
		cfg.Token = os.Getenv("TFE_TOKEN")
	}

	if cfg.Token == "" {
		return nil, tfe.ErrTokenRequired
	}

	address, err := normalizeAddress(cfg.Address)
	if err != nil {
		return nil, err
	}

	cfg.Address = address

	tfeClient, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return tfeClient, nil
}

// NewWithToken creates a client for the given address and token.
func NewWithToken(address, token string) (tfe.Client, error) {
	return New(&tfe.Config{Address: address, Token: token})
}

// NewFromEnv creates a client purely from TFE_ADDRESS/TFE_HOST and TFE_TOKEN.
func NewFromEnv() (tfe.Client, error) {
	return New(nil)
}

func addressFromEnv() string {
	if address := os.Getenv("TFE_ADDRESS"); address != "" {
		return address
	}

	if host := os.Getenv("TFE_HOST"); host != "" {
		return host
	}

	return constants.DefaultAddress
}

// normalizeAddress trims a trailing slash and defaults the scheme to https.
func normalizeAddress(address string) (string, error) {
	address = strings.TrimSuffix(strings.TrimSpace(address), "/")
	if address == "" {
		return "", tfe.ErrAddressRequired
	}

	if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		if strings.Contains(address, "://") {
			return "", fmt.Errorf("%w: %s", tfe.ErrInvalidAddress, address)
		}

		address = "https://" + address
	}

	return address, nil
}
