// Package resource exposes the open-world resource model: a Resource wraps
// one subject of a shared triple store and the discovery documents extend it
// with the lookups the discovery chain needs.
package resource

import (
	"github.com/geoknoesis/rdf-go/rdf"
	"github.com/google/uuid"

	"github.com/viant/oslc/graph"
	"github.com/viant/oslc/schema"
)

// Resource is a mutable view over one subject of a shared store. Properties
// follow the open-world assumption: a missing property is an explicit
// "absent" result, never an error.
type Resource struct {
	store    *graph.Store
	subject  rdf.Term
	etag     string
	queryURI string
}

// New wraps the given subject URI over a store.
func New(store *graph.Store, uri string) *Resource {
	return &Resource{store: store, subject: rdf.IRI{Value: uri}}
}

// NewLocal creates a resource with a locally-scoped anonymous subject, used
// to stage properties before a create. The identifier never reaches a
// server; the created resource comes back with a server-assigned URI.
func NewLocal(store *graph.Store) *Resource {
	return &Resource{store: store, subject: rdf.BlankNode{ID: uuid.NewString()}}
}

// URI returns the canonical subject URI, or "" for a local resource.
func (r *Resource) URI() string {
	if iri, ok := r.subject.(rdf.IRI); ok {
		return iri.Value
	}
	return ""
}

// Subject returns the underlying subject term.
func (r *Resource) Subject() rdf.Term { return r.subject }

// Store returns the backing store shared with any sibling resources.
func (r *Resource) Store() *graph.Store { return r.store }

// ETag returns the concurrency token captured from the last read, if any.
func (r *Resource) ETag() string { return r.etag }

// SetETag records the concurrency token.
func (r *Resource) SetETag(etag string) { r.etag = etag }

// QueryURI returns the original request URI when the resource was fetched
// through a URL carrying query parameters; the canonical subject keeps only
// origin and path.
func (r *Resource) QueryURI() string { return r.queryURI }

// SetQueryURI records the original request URI.
func (r *Resource) SetQueryURI(uri string) { r.queryURI = uri }

// Get returns all values of a property in store order. ok is false when the
// subject carries no statement for the property.
func (r *Resource) Get(property string) ([]string, bool) {
	objects := r.store.Objects(r.subject, property)
	if len(objects) == 0 {
		return nil, false
	}
	values := make([]string, 0, len(objects))
	for _, o := range objects {
		values = append(values, termValue(o))
	}
	return values, true
}

// GetFirst unwraps a property to its first value.
func (r *Resource) GetFirst(property string) (string, bool) {
	values, ok := r.Get(property)
	if !ok {
		return "", false
	}
	return values[0], true
}

// Set replaces every existing value of the property with the given literal
// values. Callers extending a multi-valued property read, modify and set the
// full value list.
func (r *Resource) Set(property string, values ...string) {
	r.store.Remove(r.subject, property)
	for _, v := range values {
		r.store.Add(r.subject, property, rdf.Literal{Lexical: v})
	}
}

// SetLink replaces every existing value of the property with URI references.
func (r *Resource) SetLink(property string, uris ...string) {
	r.store.Remove(r.subject, property)
	for _, u := range uris {
		r.store.Add(r.subject, property, rdf.IRI{Value: u})
	}
}

// Unset deletes the property entirely.
func (r *Resource) Unset(property string) {
	r.store.Remove(r.subject, property)
}

// LinkTypes returns the set of properties whose values are URI references
// rather than literals, distinguishing navigable links from data fields.
func (r *Resource) LinkTypes() map[string]bool {
	links := map[string]bool{}
	for _, t := range r.store.StatementsAbout(r.subject) {
		if t.O != nil && t.O.Kind() == rdf.TermIRI {
			links[t.P.Value] = true
		}
	}
	return links
}

// Properties returns a flattened projection of every statement about the
// subject, for introspection and serialization.
func (r *Resource) Properties() map[string][]string {
	props := map[string][]string{}
	for _, t := range r.store.StatementsAbout(r.subject) {
		props[t.P.Value] = append(props[t.P.Value], termValue(t.O))
	}
	return props
}

// Title returns the dcterms title.
func (r *Resource) Title() (string, bool) { return r.GetFirst(schema.PropTitle) }

// SetTitle sets the dcterms title.
func (r *Resource) SetTitle(title string) { r.Set(schema.PropTitle, title) }

// Description returns the dcterms description.
func (r *Resource) Description() (string, bool) { return r.GetFirst(schema.PropDescription) }

// SetDescription sets the dcterms description.
func (r *Resource) SetDescription(description string) { r.Set(schema.PropDescription, description) }

// Identifier returns the dcterms identifier.
func (r *Resource) Identifier() (string, bool) { return r.GetFirst(schema.PropIdentifier) }

// SetIdentifier sets the dcterms identifier.
func (r *Resource) SetIdentifier(identifier string) { r.Set(schema.PropIdentifier, identifier) }

// ShortTitle returns the short title.
func (r *Resource) ShortTitle() (string, bool) { return r.GetFirst(schema.PropShortTitle) }

// SetShortTitle sets the short title.
func (r *Resource) SetShortTitle(shortTitle string) { r.Set(schema.PropShortTitle, shortTitle) }

func termValue(t rdf.Term) string {
	switch v := t.(type) {
	case rdf.IRI:
		return v.Value
	case rdf.Literal:
		return v.Lexical
	case rdf.BlankNode:
		return "_:" + v.ID
	}
	if t == nil {
		return ""
	}
	return t.String()
}
