package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/viant/oslc/schema"
)

// Challenge pairs a detector with a responder. Detection is evaluated once
// per response in priority order; a responder performs its credential
// exchange and returns the request to replay.
type Challenge interface {
	Kind() string
	Detect(resp *http.Response) bool
	Respond(ctx context.Context, rt *RoundTripper, resp *http.Response, retry *http.Request) (*http.Request, error)
}

// AuthExchangeError reports a failed credential exchange; it aborts the
// enclosing operation.
type AuthExchangeError struct {
	Kind   string
	URL    string
	Status int
	Err    error
}

func (e *AuthExchangeError) Error() string {
	msg := fmt.Sprintf("%s authentication against %s failed", e.Kind, e.URL)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AuthExchangeError) Unwrap() error { return e.Err }

// formChallenge resolves session-based form authentication: the server
// marks the response with a header and expects a form login POST against a
// fixed sibling endpoint of the original request path.
type formChallenge struct{}

func (c *formChallenge) Kind() string { return "form" }

func (c *formChallenge) Detect(resp *http.Response) bool {
	return strings.EqualFold(resp.Header.Get(schema.HeaderFormAuthMsg), schema.FormAuthRequired)
}

func (c *formChallenge) Respond(ctx context.Context, rt *RoundTripper, resp *http.Response, retry *http.Request) (*http.Request, error) {
	if rt.credentials == nil {
		return nil, &AuthExchangeError{Kind: c.Kind(), URL: retry.URL.String(), Err: errNoCredentials}
	}
	loginURL := loginEndpoint(retry.URL)
	form := url.Values{}
	form.Set("username", rt.credentials.Username)
	form.Set("password", rt.credentials.Password)
	login, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &AuthExchangeError{Kind: c.Kind(), URL: loginURL, Err: err}
	}
	login.Header.Set("Content-Type", schema.MediaForm)
	loginResp, err := rt.transport.RoundTrip(login)
	if err != nil {
		return nil, &AuthExchangeError{Kind: c.Kind(), URL: loginURL, Err: err}
	}
	defer loginResp.Body.Close()
	io.Copy(io.Discard, loginResp.Body)
	if strings.EqualFold(loginResp.Header.Get(schema.HeaderFormAuthMsg), schema.FormAuthFailed) {
		return nil, &AuthExchangeError{Kind: c.Kind(), URL: loginURL, Status: loginResp.StatusCode, Err: errRejected}
	}
	if loginResp.StatusCode < http.StatusMultipleChoices || loginResp.StatusCode >= http.StatusBadRequest {
		return nil, &AuthExchangeError{Kind: c.Kind(), URL: loginURL, Status: loginResp.StatusCode, Err: errRejected}
	}
	// session cookie captured by the jar; replay relies on it
	return retry, nil
}

// tokenChallenge resolves an unauthorized response whose challenge header
// names a token endpoint: credentials are posted there and the raw body is
// used as a bearer token on the replay. Tokens are cached per host;
// JWT-shaped tokens carry their own expiry.
type tokenChallenge struct{}

func (c *tokenChallenge) Kind() string { return "token" }

func (c *tokenChallenge) Detect(resp *http.Response) bool {
	return resp.StatusCode == http.StatusUnauthorized &&
		strings.Contains(resp.Header.Get(schema.HeaderWWWAuthenticate), "token_uri=")
}

func (c *tokenChallenge) Respond(ctx context.Context, rt *RoundTripper, resp *http.Response, retry *http.Request) (*http.Request, error) {
	if rt.credentials == nil {
		return nil, &AuthExchangeError{Kind: c.Kind(), URL: retry.URL.String(), Err: errNoCredentials}
	}
	endpoint, err := parseTokenEndpoint(resp)
	if err != nil {
		return nil, &AuthExchangeError{Kind: c.Kind(), URL: retry.URL.String(), Err: err}
	}
	form := url.Values{}
	form.Set("username", rt.credentials.Username)
	form.Set("password", rt.credentials.Password)
	exchange, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &AuthExchangeError{Kind: c.Kind(), URL: endpoint, Err: err}
	}
	exchange.Header.Set("Content-Type", schema.MediaForm)
	tokenResp, err := rt.transport.RoundTrip(exchange)
	if err != nil {
		return nil, &AuthExchangeError{Kind: c.Kind(), URL: endpoint, Err: err}
	}
	defer tokenResp.Body.Close()
	body, err := io.ReadAll(tokenResp.Body)
	if err != nil {
		return nil, &AuthExchangeError{Kind: c.Kind(), URL: endpoint, Err: err}
	}
	if tokenResp.StatusCode < http.StatusOK || tokenResp.StatusCode >= http.StatusMultipleChoices {
		return nil, &AuthExchangeError{Kind: c.Kind(), URL: endpoint, Status: tokenResp.StatusCode, Err: errRejected}
	}
	token := strings.TrimSpace(string(body))
	rt.tokens.Put(retry.URL.Host, &oauth2.Token{AccessToken: token, Expiry: tokenExpiry(token)})
	retry.Header.Set(schema.HeaderAuthorization, "Bearer "+token)
	return retry, nil
}

// basicChallenge is the fallback for a bare unauthorized status.
type basicChallenge struct{}

func (c *basicChallenge) Kind() string { return "basic" }

func (c *basicChallenge) Detect(resp *http.Response) bool {
	return resp.StatusCode == http.StatusUnauthorized
}

func (c *basicChallenge) Respond(ctx context.Context, rt *RoundTripper, resp *http.Response, retry *http.Request) (*http.Request, error) {
	if rt.credentials == nil {
		return nil, &AuthExchangeError{Kind: c.Kind(), URL: retry.URL.String(), Err: errNoCredentials}
	}
	retry.SetBasicAuth(rt.credentials.Username, rt.credentials.Password)
	return retry, nil
}

var (
	errNoCredentials = fmt.Errorf("no credentials configured")
	errRejected      = fmt.Errorf("credentials rejected")
)

// loginEndpoint replaces the final segment of the request path with the
// fixed form-login endpoint.
func loginEndpoint(u *url.URL) string {
	login := *u
	login.Path = path.Join(path.Dir(u.Path), schema.FormLoginSegment)
	login.RawQuery = ""
	login.Fragment = ""
	return login.String()
}

// tokenExpiry extracts the exp claim from JWT-shaped tokens so stale cache
// entries are dropped rather than replayed. Opaque tokens get no expiry and
// stay cached until a server rejects them.
func tokenExpiry(raw string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
