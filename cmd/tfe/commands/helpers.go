// Package commands implements the subcommands of the tfe CLI.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ibm-richard/go-tfe/pkg/tfe"
	"github.com/ibm-richard/go-tfe/pkg/tfeclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// YAML formatting.
	defaultYAMLIndent = 2

	// Common values.
	Yes    = "yes"
	No     = "no"
	Masked = "***"

	// Date layouts for table output.
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Common static errors used throughout the commands package.
var (
	ErrNoAddressConfigured = errors.New("no address configured, run 'tfe login' or set TFE_ADDRESS")
	ErrNoTokenConfigured   = errors.New("no token configured, run 'tfe login' or set TFE_TOKEN")
	ErrDeletionAborted     = errors.New("deletion aborted")
)

// CreateClient builds a client from the resolved CLI configuration: flags
// first, then the config file, then TFE_* environment variables.
func CreateClient() (tfe.Client, error) {
	config := &tfe.Config{
		Address: viper.GetString("address"),
		Token:   viper.GetString("token"),
	}

	client, err := tfeclient.New(config)
	if err != nil {
		if errors.Is(err, tfe.ErrTokenRequired) {
			return nil, ErrNoTokenConfigured
		}

		return nil, err
	}

	return client, nil
}

// StandardJSONRenderer writes data to stdout as indented JSON.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data to stdout as YAML.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}

	return t.Format(dateLayout)
}

func formatDateTime(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}

	return t.Format(dateTimeLayout)
}

func boolWord(b bool) string {
	if b {
		return Yes
	}

	return No
}

// listOptionsFromFlags builds list options from the shared --per-page and
// --page flags.
func listOptionsFromFlags(page, perPage int) *tfe.ListOptions {
	opts := tfe.NewListOptions()
	opts.PageNumber = page
	opts.PageSize = perPage

	return opts
}

func pageFooter(pagination *tfe.Pagination, allPages bool) {
	if pagination == nil || allPages {
		return
	}

	if pagination.TotalPages > 1 {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing page %d of %d. Use --all to fetch all pages.\n",
			pagination.CurrentPage, pagination.TotalPages)
	}
}
