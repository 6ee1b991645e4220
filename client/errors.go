package client

import "fmt"

// DiscoveryError reports a failed step of the discovery chain. Steps are
// not retried at this layer; retries happen only inside the transport's
// auth negotiation.
type DiscoveryError struct {
	Step   string
	URL    string
	Detail string
}

const (
	stepRootServices    = "rootservices"
	stepCatalog         = "catalog"
	stepServiceProvider = "serviceProvider"
)

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovery step %s failed for %s: %s", e.Step, e.URL, e.Detail)
}

// CapabilityError reports a service provider without a query or creation
// capability for the requested resource type, or a missing discovery.
type CapabilityError struct {
	Kind         string
	ResourceType string
	Detail       string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("no %s capability for resource type %s: %s", e.Kind, e.ResourceType, e.Detail)
}

// TransportError reports a network failure or a non-2xx status. The raw
// response body is included to aid diagnosis against the server's own
// error payload.
type TransportError struct {
	URL    string
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("request to %s failed with status %d: %s", e.URL, e.Status, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }
