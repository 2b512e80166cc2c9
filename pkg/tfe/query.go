package tfe

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ListOptions controls pagination, filtering, and sideloading for list
// operations. The zero value requests the server defaults.
type ListOptions struct {
	// PageNumber is the page to request, 1-based. 0 means the first page.
	PageNumber int

	// PageSize is the number of items per page. 0 means the server default.
	PageSize int

	// Search filters by name substring (search[name]).
	Search string

	// Include names related resources to sideload (include=a,b).
	Include []string

	// Filters maps filter expressions to values, keyed without the outer
	// "filter[...]", e.g. "workspace[name]" or "status".
	Filters map[string]string
}

// NewListOptions creates empty list options.
func NewListOptions() *ListOptions {
	return &ListOptions{Filters: make(map[string]string)}
}

// WithPage returns a copy of the options pinned to the given page number.
// The receiver may be nil.
func (o *ListOptions) WithPage(page int) *ListOptions {
	opts := ListOptions{}
	if o != nil {
		opts = *o
	}

	opts.PageNumber = page

	return &opts
}

// ToValues converts the options to URL query values.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	if o.PageNumber > 0 {
		values.Set("page[number]", strconv.Itoa(o.PageNumber))
	}

	if o.PageSize > 0 {
		values.Set("page[size]", strconv.Itoa(o.PageSize))
	}

	if o.Search != "" {
		values.Set("search[name]", o.Search)
	}

	if len(o.Include) > 0 {
		values.Set("include", strings.Join(o.Include, ","))
	}

	for key, value := range o.Filters {
		values.Set(filterKey(key), value)
	}

	return values
}

// filterKey wraps a filter expression in the outer filter[...] segment.
// "status" becomes "filter[status]"; nested keys like "workspace[name]"
// become "filter[workspace][name]".
func filterKey(key string) string {
	if i := strings.Index(key, "["); i >= 0 {
		return fmt.Sprintf("filter[%s]%s", key[:i], key[i:])
	}

	return fmt.Sprintf("filter[%s]", key)
}
