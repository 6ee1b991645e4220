package schema

// Namespace prefixes for the vocabularies the client consumes. Full
// namespace tables live with the server; only predicates the discovery
// chain, query engine and resource accessors dereference are declared here.
const (
	NsDCTerms  = "http://purl.org/dc/terms/"
	NsOSLC     = "http://open-services.net/ns/core#"
	NsRDF      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NsRDFS     = "http://www.w3.org/2000/01/rdf-schema#"
	NsFOAF     = "http://xmlns.com/foaf/0.1/"
	NsJazzDisc = "http://jazz.net/xmlns/prod/jazz/discovery/1.0/"
)

// Cross-domain resource properties.
const (
	PropTitle       = NsDCTerms + "title"
	PropDescription = NsDCTerms + "description"
	PropIdentifier  = NsDCTerms + "identifier"
	PropShortTitle  = NsOSLC + "shortTitle"
	PropType        = NsRDF + "type"
	PropMember      = NsRDFS + "member"
	PropName        = NsFOAF + "name"
)

// Discovery predicates.
const (
	PropServiceProvider = NsOSLC + "serviceProvider"
	PropService         = NsOSLC + "service"
	PropQueryCapability = NsOSLC + "queryCapability"
	PropCreationFactory = NsOSLC + "creationFactory"
	PropQueryBase       = NsOSLC + "queryBase"
	PropCreation        = NsOSLC + "creation"
	PropResourceType    = NsOSLC + "resourceType"
	PropNextPage        = NsOSLC + "nextPage"
)

// Domain selects the lifecycle category of a service provider catalog.
type Domain string

const (
	DomainCM Domain = "CM"
	DomainRM Domain = "RM"
	DomainQM Domain = "QM"
)

// Rootservices predicates mapping a domain to its catalog URI.
const (
	PropCMServiceProviders = "http://open-services.net/xmlns/cm/1.0/cmServiceProviders"
	PropRMServiceProviders = "http://open-services.net/xmlns/rm/1.0/rmServiceProviders"
	PropQMServiceProviders = "http://open-services.net/xmlns/qm/1.0/qmServiceProviders"
)

// CatalogPredicate returns the rootservices predicate for a domain.
func (d Domain) CatalogPredicate() (string, bool) {
	switch d {
	case DomainCM:
		return PropCMServiceProviders, true
	case DomainRM:
		return PropRMServiceProviders, true
	case DomainQM:
		return PropQMServiceProviders, true
	}
	return "", false
}
