// Package transport implements the http.RoundTripper that transparently
// satisfies the three authentication challenge protocols of the lifecycle
// server family: session-based form login, token-realm bearer exchange and
// basic authentication. A challenged request is replayed exactly once after
// a successful exchange; a second rejection is surfaced to the caller.
package transport
