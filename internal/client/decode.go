package client

import (
	"encoding/json"

	"github.com/ibm-richard/go-tfe/internal/http"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// decodeResource unmarshals a single-resource JSON:API document.
func decodeResource[A any](resp *http.Response) (*tfe.ResourceObject[A], error) {
	var doc tfe.Document[tfe.ResourceObject[A]]

	err := json.Unmarshal(resp.Body, &doc)
	if err != nil {
		return nil, &tfe.DecodeError{Err: err}
	}

	return &doc.Data, nil
}

// decodeList unmarshals a paginated JSON:API list document.
func decodeList[A any](resp *http.Response) (*tfe.ListDocument[A], error) {
	var doc tfe.ListDocument[A]

	err := json.Unmarshal(resp.Body, &doc)
	if err != nil {
		return nil, &tfe.DecodeError{Err: err}
	}

	return &doc, nil
}

// buildPage flattens a list document into a page using the given per-resource
// flattener. A missing meta.pagination block is treated as a single page.
func buildPage[A, T any](doc *tfe.ListDocument[A], flatten func(*tfe.ResourceObject[A]) T) *tfe.Page[T] {
	page := &tfe.Page[T]{
		Items: make([]T, 0, len(doc.Data)),
	}

	for i := range doc.Data {
		page.Items = append(page.Items, flatten(&doc.Data[i]))
	}

	if doc.Meta.Pagination != nil {
		page.Pagination = *doc.Meta.Pagination
	} else {
		page.Pagination = tfe.Pagination{
			CurrentPage: 1,
			TotalPages:  1,
			TotalCount:  len(doc.Data),
		}
	}

	return page
}
