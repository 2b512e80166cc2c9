package tfe

// JSON:API envelope types shared by every resource client. Attributes use
// kebab-case wire names per the Terraform Enterprise API.

// Relationship represents a to-one relationship.
type Relationship struct {
	Data *RelationshipData `json:"data,omitempty" yaml:"data,omitempty"`
}

// RelationshipData identifies a related resource.
type RelationshipData struct {
	ID   string `json:"id"   yaml:"id"`
	Type string `json:"type" yaml:"type"`
}

// ToManyRelationship represents a to-many relationship.
type ToManyRelationship struct {
	Data []RelationshipData `json:"data" yaml:"data"`
}

// NewRelationship builds a to-one relationship for the given resource.
func NewRelationship(typ, id string) *Relationship {
	return &Relationship{Data: &RelationshipData{ID: id, Type: typ}}
}

// ResourceObject is a single JSON:API resource: identifier, typed attributes,
// and relationships.
type ResourceObject[A any] struct {
	ID            string                  `json:"id,omitempty"            yaml:"id,omitempty"`
	Type          string                  `json:"type"                    yaml:"type"`
	Attributes    A                       `json:"attributes"              yaml:"attributes"`
	Relationships map[string]Relationship `json:"relationships,omitempty" yaml:"relationships,omitempty"`
	Links         map[string]any          `json:"links,omitempty"         yaml:"links,omitempty"`
}

// RelatedID returns the ID of the named to-one relationship, or "".
func (r *ResourceObject[A]) RelatedID(name string) string {
	rel, ok := r.Relationships[name]
	if !ok || rel.Data == nil {
		return ""
	}

	return rel.Data.ID
}

// Document wraps a single resource for request and response bodies.
type Document[T any] struct {
	Data T `json:"data" yaml:"data"`
}

// Pagination is the meta.pagination block of a list response. NextPage is nil
// on the final page; that is the iteration termination signal.
type Pagination struct {
	CurrentPage  int  `json:"current-page"  yaml:"current-page"`
	PreviousPage *int `json:"prev-page"     yaml:"prev-page"`
	NextPage     *int `json:"next-page"     yaml:"next-page"`
	TotalPages   int  `json:"total-pages"   yaml:"total-pages"`
	TotalCount   int  `json:"total-count"   yaml:"total-count"`
}

// DocumentLinks are the top-level links of a list response.
type DocumentLinks struct {
	Self  string  `json:"self,omitempty"  yaml:"self,omitempty"`
	First string  `json:"first,omitempty" yaml:"first,omitempty"`
	Last  string  `json:"last,omitempty"  yaml:"last,omitempty"`
	Next  *string `json:"next,omitempty"  yaml:"next,omitempty"`
	Prev  *string `json:"prev,omitempty"  yaml:"prev,omitempty"`
}

// Meta is the top-level meta block of a list response.
type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

// ListDocument is a paginated JSON:API list response.
type ListDocument[A any] struct {
	Data  []ResourceObject[A] `json:"data"            yaml:"data"`
	Meta  Meta                `json:"meta,omitempty"  yaml:"meta,omitempty"`
	Links *DocumentLinks      `json:"links,omitempty" yaml:"links,omitempty"`
}

// Page holds one page of flattened resources along with the pagination
// metadata needed to fetch the next one.
type Page[T any] struct {
	Items      []T        `json:"items"      yaml:"items"`
	Pagination Pagination `json:"pagination" yaml:"pagination"`
}

// HasNextPage reports whether another page follows this one.
func (p *Page[T]) HasNextPage() bool {
	return p.Pagination.NextPage != nil
}
