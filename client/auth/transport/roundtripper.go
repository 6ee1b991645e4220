package transport

import (
	"net/http"
	"net/http/cookiejar"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/viant/oslc/client/auth"
	"github.com/viant/oslc/internal/collection"
	"github.com/viant/oslc/schema"
)

// RoundTripper wraps an inner http.RoundTripper with the response-driven
// authentication negotiation the protocol's server family requires. Each
// response is evaluated once against an ordered challenge list; the first
// challenge that detects a match performs its exchange and the original
// request is replayed exactly once. A rejected replay is returned as-is;
// callers treat it as fatal.
type RoundTripper struct {
	transport     http.RoundTripper
	jar           http.CookieJar
	credentials   *auth.Credentials
	challenges    []Challenge
	tokens        *collection.SyncMap[string, *oauth2.Token]
	configContext string
	accept        string
	logger        *zap.Logger
}

// New creates a negotiating RoundTripper. Without options it uses the
// default transport, an in-memory cookie jar and the standard challenge
// chain (form login, token realm, basic auth).
func New(options ...Option) (*RoundTripper, error) {
	ret := &RoundTripper{
		transport: http.DefaultTransport,
		tokens:    collection.NewSyncMap[string, *oauth2.Token](0),
		accept:    schema.AcceptList,
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		ret.jar = jar
	}
	ret.transport = WrapWithCookieJar(ret.transport, ret.jar)
	if len(ret.challenges) == 0 {
		ret.challenges = []Challenge{
			&formChallenge{},
			&tokenChallenge{},
			&basicChallenge{},
		}
	}
	return ret, nil
}

// Jar exposes the cookie jar so callers can derive session-bound headers.
func (r *RoundTripper) Jar() http.CookieJar { return r.jar }

// SessionID returns the server session cookie for the request URL, or "".
func (r *RoundTripper) SessionID(req *http.Request) string {
	for _, c := range r.jar.Cookies(req.URL) {
		if c.Name == schema.SessionCookie {
			return c.Value
		}
	}
	return ""
}

// RoundTrip sends the request with the protocol's fixed headers, resolves
// at most one authentication challenge and replays the original request.
func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	probe := r.prepare(req)
	resp, err := r.transport.RoundTrip(probe)
	if err != nil {
		return nil, err
	}
	for _, challenge := range r.challenges {
		if !challenge.Detect(resp) {
			continue
		}
		resp.Body.Close()
		r.logger.Debug("authentication challenge",
			zap.String("kind", challenge.Kind()),
			zap.String("url", req.URL.String()),
			zap.Int("status", resp.StatusCode))
		retry, err := challenge.Respond(req.Context(), r, resp, r.prepare(req))
		if err != nil {
			return nil, err
		}
		return r.transport.RoundTrip(retry)
	}
	return resp, nil
}

// prepare clones the request and attaches the fixed content-negotiation,
// protocol-version and tenant-context headers, plus any cached bearer token
// still valid for the request host.
func (r *RoundTripper) prepare(req *http.Request) *http.Request {
	ret := clone(req)
	if ret.Header.Get("Accept") == "" {
		ret.Header.Set("Accept", r.accept)
	}
	ret.Header.Set(schema.HeaderCoreVersion, schema.CoreVersion)
	if r.configContext != "" {
		ret.Header.Set(schema.HeaderConfigContext, r.configContext)
	}
	if token, ok := r.tokens.Get(ret.URL.Host); ok {
		if token.Valid() {
			ret.Header.Set(schema.HeaderAuthorization, "Bearer "+token.AccessToken)
		} else {
			r.tokens.Delete(ret.URL.Host)
		}
	}
	return ret
}
