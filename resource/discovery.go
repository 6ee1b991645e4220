package resource

import (
	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/viant/oslc/graph"
	"github.com/viant/oslc/schema"
)

// RootServicesDocument is the entry point of discovery: it maps a lifecycle
// domain to its service provider catalog.
type RootServicesDocument struct {
	*Resource
}

// NewRootServices wraps a fetched rootservices document.
func NewRootServices(store *graph.Store, uri string) *RootServicesDocument {
	return &RootServicesDocument{Resource: New(store, uri)}
}

// CatalogURI resolves the catalog for a domain. ok is false when either
// the domain tag is unknown or the document does not advertise it.
func (d *RootServicesDocument) CatalogURI(domain schema.Domain) (string, bool) {
	predicate, ok := domain.CatalogPredicate()
	if !ok {
		return "", false
	}
	return d.GetFirst(predicate)
}

// ServiceProviderCatalog lists service providers for one domain, keyed by
// human-readable title.
type ServiceProviderCatalog struct {
	*Resource
}

// NewCatalog wraps a fetched service provider catalog.
func NewCatalog(store *graph.Store, uri string) *ServiceProviderCatalog {
	return &ServiceProviderCatalog{Resource: New(store, uri)}
}

// ServiceProviderURI looks up a provider by exact literal title match.
// Matching is case-sensitive and keeps whitespace, the protocol's literal
// comparison semantics.
func (c *ServiceProviderCatalog) ServiceProviderURI(title string) (string, bool) {
	for _, member := range c.Store().Objects(c.Subject(), schema.PropServiceProvider) {
		memberTitle := c.Store().Objects(member, schema.PropTitle)
		for _, t := range memberTitle {
			if lit, ok := t.(rdf.Literal); ok && lit.Lexical == title {
				if iri, ok := member.(rdf.IRI); ok {
					return iri.Value, true
				}
			}
		}
	}
	return "", false
}

// ServiceProvider describes the query and creation endpoints a project
// exposes per resource type.
type ServiceProvider struct {
	*Resource
}

// NewServiceProvider wraps a fetched service provider document.
func NewServiceProvider(store *graph.Store, uri string) *ServiceProvider {
	return &ServiceProvider{Resource: New(store, uri)}
}

// QueryBase resolves the query endpoint for a resource type. The service
// list is unordered; the first capability advertising the type wins.
func (p *ServiceProvider) QueryBase(resourceType string) (string, bool) {
	return p.capability(schema.PropQueryCapability, schema.PropQueryBase, resourceType)
}

// CreationFactory resolves the creation endpoint for a resource type.
func (p *ServiceProvider) CreationFactory(resourceType string) (string, bool) {
	return p.capability(schema.PropCreationFactory, schema.PropCreation, resourceType)
}

func (p *ServiceProvider) capability(capabilityProp, endpointProp, resourceType string) (string, bool) {
	store := p.Store()
	for _, service := range store.Objects(p.Subject(), schema.PropService) {
		for _, capability := range store.Objects(service, capabilityProp) {
			if !advertises(store, capability, resourceType) {
				continue
			}
			for _, endpoint := range store.Objects(capability, endpointProp) {
				if iri, ok := endpoint.(rdf.IRI); ok {
					return iri.Value, true
				}
			}
		}
	}
	return "", false
}

func advertises(store *graph.Store, capability rdf.Term, resourceType string) bool {
	for _, t := range store.Objects(capability, schema.PropResourceType) {
		if iri, ok := t.(rdf.IRI); ok && iri.Value == resourceType {
			return true
		}
	}
	return false
}
