package client

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/viant/oslc/client/auth/transport"
)

// Option represents a client option.
type Option func(c *Client)

// WithNegotiator sets the auth-negotiating transport.
func WithNegotiator(negotiator *transport.RoundTripper) Option {
	return func(c *Client) {
		c.negotiator = negotiator
	}
}

// WithHTTPClient replaces the whole HTTP client; the caller then owns
// timeout and transport wiring.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds each request; a timed-out request surfaces as a
// TransportError.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithNameCacheSize caps the name-resolution cache; <= 0 means unbounded.
func WithNameCacheSize(size int) Option {
	return func(c *Client) {
		c.nameCache = size
	}
}
