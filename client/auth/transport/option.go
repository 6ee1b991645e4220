package transport

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/viant/oslc/client/auth"
)

type Option func(*RoundTripper)

// WithCredentials sets the credentials used by every challenge responder.
func WithCredentials(credentials *auth.Credentials) Option {
	return func(t *RoundTripper) {
		t.credentials = credentials
	}
}

// WithTransport sets the inner transport.
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = transport
	}
}

// WithCookieJar sets the session cookie jar.
func WithCookieJar(jar http.CookieJar) Option {
	return func(t *RoundTripper) {
		t.jar = jar
	}
}

// WithChallenges replaces the challenge chain; order is priority order.
func WithChallenges(challenges ...Challenge) Option {
	return func(t *RoundTripper) {
		t.challenges = challenges
	}
}

// WithConfigContext sets the tenant/workspace context header value.
func WithConfigContext(context string) Option {
	return func(t *RoundTripper) {
		t.configContext = context
	}
}

// WithAccept overrides the content-negotiation list.
func WithAccept(accept string) Option {
	return func(t *RoundTripper) {
		t.accept = accept
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(t *RoundTripper) {
		t.logger = logger
	}
}
