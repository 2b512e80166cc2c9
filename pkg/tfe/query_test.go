package tfe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

func TestListOptions_ToValues(t *testing.T) {
	t.Parallel()

	opts := &tfe.ListOptions{
		PageNumber: 3,
		PageSize:   50,
		Search:     "prod",
		Include:    []string{"organization", "current-run"},
		Filters:    map[string]string{"workspace[name]": "prod-eu"},
	}

	values := opts.ToValues()
	assert.Equal(t, "3", values.Get("page[number]"))
	assert.Equal(t, "50", values.Get("page[size]"))
	assert.Equal(t, "prod", values.Get("search[name]"))
	assert.Equal(t, "organization,current-run", values.Get("include"))
	assert.Equal(t, "prod-eu", values.Get("filter[workspace][name]"))
}

func TestListOptions_ToValues_ZeroValue(t *testing.T) {
	t.Parallel()

	assert.Empty(t, (&tfe.ListOptions{}).ToValues())

	var nilOpts *tfe.ListOptions

	assert.Empty(t, nilOpts.ToValues())
}

func TestListOptions_WithPage(t *testing.T) {
	t.Parallel()

	opts := &tfe.ListOptions{PageSize: 20, Search: "prod"}

	pinned := opts.WithPage(4)
	require.NotSame(t, opts, pinned)
	assert.Equal(t, 4, pinned.PageNumber)
	assert.Equal(t, 20, pinned.PageSize)
	assert.Equal(t, "prod", pinned.Search)
	assert.Equal(t, 0, opts.PageNumber)
}

func TestListOptions_WithPage_NilReceiver(t *testing.T) {
	t.Parallel()

	var opts *tfe.ListOptions

	pinned := opts.WithPage(2)
	require.NotNil(t, pinned)
	assert.Equal(t, 2, pinned.PageNumber)
}

func TestNewListOptions(t *testing.T) {
	t.Parallel()

	opts := tfe.NewListOptions()
	require.NotNil(t, opts.Filters)

	opts.Filters["status"] = "applied"
	assert.Equal(t, "applied", opts.ToValues().Get("filter[status]"))
}
