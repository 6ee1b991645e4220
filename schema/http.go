package schema

// Protocol and header constants shared by the transport and the client.
const (
	CoreVersion       = "2.0"
	HeaderCoreVersion = "OSLC-Core-Version"

	// HeaderConfigContext carries an optional tenant/workspace context.
	HeaderConfigContext = "Configuration-Context"

	// HeaderFormAuthMsg marks responses of servers that require
	// session-based form authentication.
	HeaderFormAuthMsg     = "X-Com-Ibm-Team-Repository-Web-Auth-Msg"
	FormAuthRequired      = "authrequired"
	FormAuthFailed        = "authfailed"
	FormLoginSegment      = "j_security_check"
	HeaderCSRFPrevent     = "X-Jazz-Csrf-Prevent"
	CSRFSentinel          = "oslc-go-client"
	SessionCookie         = "JSESSIONID"
	HeaderIfMatch         = "If-Match"
	HeaderETag            = "Etag"
	HeaderLocation        = "Location"
	HeaderAuthorization   = "Authorization"
	HeaderWWWAuthenticate = "WWW-Authenticate"
)

// Media types the client negotiates and dispatches on.
const (
	MediaRDFXML = "application/rdf+xml"
	MediaTurtle = "text/turtle"
	MediaJSONLD = "application/ld+json"
	MediaJSON   = "application/json"
	MediaXML    = "application/xml"
	MediaHTML   = "text/html"
	MediaAtom   = "application/atom+xml"
	MediaRSS    = "application/rss+xml"
	MediaForm   = "application/x-www-form-urlencoded"
)

// AcceptList is the fixed content-negotiation list, RDF/XML preferred.
const AcceptList = MediaRDFXML + ", " +
	MediaTurtle + ";q=0.9, " +
	MediaJSONLD + ";q=0.8, " +
	MediaJSON + ";q=0.7, " +
	MediaXML + ";q=0.5"

// Query-string parameters of the query protocol.
const (
	ParamPrefix  = "oslc.prefix"
	ParamSelect  = "oslc.select"
	ParamWhere   = "oslc.where"
	ParamOrderBy = "oslc.orderBy"
	ParamPaging  = "oslc.paging"
)
