package transport

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/oslc/client/auth"
	"github.com/viant/oslc/schema"
)

// mockTransport scripts inner responses and records every request it sees.
type mockTransport struct {
	requests []*http.Request
	respond  func(req *http.Request, call int) *http.Response
}

func (m *mockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	m.requests = append(m.requests, req)
	return m.respond(req, len(m.requests)), nil
}

func response(status int, body string, header http.Header) *http.Response {
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{StatusCode: status, Header: header, Body: io.NopCloser(strings.NewReader(body))}
}

func newTestRoundTripper(t *testing.T, mock *mockTransport, options ...Option) *RoundTripper {
	t.Helper()
	options = append([]Option{
		WithTransport(mock),
		WithCredentials(&auth.Credentials{Username: "jazz", Password: "secret"}),
	}, options...)
	rt, err := New(options...)
	require.NoError(t, err)
	return rt
}

func TestRoundTripper_FixedHeaders(t *testing.T) {
	mock := &mockTransport{respond: func(req *http.Request, call int) *http.Response {
		return response(http.StatusOK, "", nil)
	}}
	rt := newTestRoundTripper(t, mock, WithConfigContext("workspace-7"))

	req, _ := http.NewRequest(http.MethodGet, "http://srv.example/ccm/rootservices", nil)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	sent := mock.requests[0]
	assert.Equal(t, schema.AcceptList, sent.Header.Get("Accept"))
	assert.Equal(t, schema.CoreVersion, sent.Header.Get(schema.HeaderCoreVersion))
	assert.Equal(t, "workspace-7", sent.Header.Get(schema.HeaderConfigContext))
}

func TestRoundTripper_FormChallenge(t *testing.T) {
	mock := &mockTransport{}
	mock.respond = func(req *http.Request, call int) *http.Response {
		switch call {
		case 1:
			header := http.Header{}
			header.Set(schema.HeaderFormAuthMsg, schema.FormAuthRequired)
			return response(http.StatusOK, "", header)
		case 2:
			return response(http.StatusFound, "", nil)
		default:
			return response(http.StatusOK, "authenticated", nil)
		}
	}
	rt := newTestRoundTripper(t, mock)

	req, _ := http.NewRequest(http.MethodGet, "http://srv.example/ccm/rootservices", nil)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, mock.requests, 3)
	login := mock.requests[1]
	assert.Equal(t, http.MethodPost, login.Method)
	assert.Equal(t, "http://srv.example/ccm/"+schema.FormLoginSegment, login.URL.String())
	body, _ := io.ReadAll(login.Body)
	assert.Contains(t, string(body), "username=jazz")
	assert.Contains(t, string(body), "password=secret")
	// original request replayed once
	assert.Equal(t, "http://srv.example/ccm/rootservices", mock.requests[2].URL.String())
}

func TestRoundTripper_FormChallengeWinsOverUnauthorized(t *testing.T) {
	mock := &mockTransport{}
	mock.respond = func(req *http.Request, call int) *http.Response {
		switch call {
		case 1:
			header := http.Header{}
			header.Set(schema.HeaderFormAuthMsg, schema.FormAuthRequired)
			header.Set(schema.HeaderWWWAuthenticate, `Bearer realm="x", token_uri="http://auth.example/token"`)
			return response(http.StatusUnauthorized, "", header)
		case 2:
			return response(http.StatusFound, "", nil)
		default:
			return response(http.StatusOK, "", nil)
		}
	}
	rt := newTestRoundTripper(t, mock)

	req, _ := http.NewRequest(http.MethodGet, "http://srv.example/ccm/rootservices", nil)
	_, err := rt.RoundTrip(req)
	require.NoError(t, err)

	require.Len(t, mock.requests, 3)
	assert.Equal(t, "http://srv.example/ccm/"+schema.FormLoginSegment, mock.requests[1].URL.String())
	assert.Empty(t, mock.requests[2].Header.Get(schema.HeaderAuthorization))
}

func TestRoundTripper_TokenChallenge(t *testing.T) {
	mock := &mockTransport{}
	mock.respond = func(req *http.Request, call int) *http.Response {
		switch call {
		case 1:
			header := http.Header{}
			header.Set(schema.HeaderWWWAuthenticate, `Bearer realm="jsa", token_uri="http://auth.example/token"`)
			return response(http.StatusUnauthorized, "", header)
		case 2:
			return response(http.StatusOK, "tok-123", nil)
		default:
			return response(http.StatusOK, "", nil)
		}
	}
	rt := newTestRoundTripper(t, mock)

	req, _ := http.NewRequest(http.MethodGet, "http://srv.example/ccm/query", nil)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, mock.requests, 3)
	assert.Equal(t, "http://auth.example/token", mock.requests[1].URL.String())
	assert.Equal(t, "Bearer tok-123", mock.requests[2].Header.Get(schema.HeaderAuthorization))

	// the acquired token is reused on subsequent requests without a new probe
	next, _ := http.NewRequest(http.MethodGet, "http://srv.example/ccm/other", nil)
	_, err = rt.RoundTrip(next)
	require.NoError(t, err)
	require.Len(t, mock.requests, 4)
	assert.Equal(t, "Bearer tok-123", mock.requests[3].Header.Get(schema.HeaderAuthorization))
}

func TestRoundTripper_TokenExchangeFailure(t *testing.T) {
	mock := &mockTransport{}
	mock.respond = func(req *http.Request, call int) *http.Response {
		if call == 1 {
			header := http.Header{}
			header.Set(schema.HeaderWWWAuthenticate, `Bearer realm="jsa", token_uri="http://auth.example/token"`)
			return response(http.StatusUnauthorized, "", header)
		}
		return response(http.StatusForbidden, "bad credentials", nil)
	}
	rt := newTestRoundTripper(t, mock)

	req, _ := http.NewRequest(http.MethodGet, "http://srv.example/ccm/query", nil)
	_, err := rt.RoundTrip(req)
	require.Error(t, err)

	var exchangeErr *AuthExchangeError
	require.True(t, errors.As(err, &exchangeErr))
	assert.Equal(t, http.StatusForbidden, exchangeErr.Status)
}

func TestRoundTripper_BasicFallback(t *testing.T) {
	mock := &mockTransport{}
	mock.respond = func(req *http.Request, call int) *http.Response {
		if call == 1 {
			return response(http.StatusUnauthorized, "", nil)
		}
		return response(http.StatusOK, "", nil)
	}
	rt := newTestRoundTripper(t, mock)

	req, _ := http.NewRequest(http.MethodGet, "http://srv.example/ccm/query", nil)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, mock.requests, 2)
	username, password, ok := mock.requests[1].BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "jazz", username)
	assert.Equal(t, "secret", password)
}

func TestRoundTripper_SingleRetry(t *testing.T) {
	mock := &mockTransport{}
	mock.respond = func(req *http.Request, call int) *http.Response {
		return response(http.StatusUnauthorized, "still denied", nil)
	}
	rt := newTestRoundTripper(t, mock)

	req, _ := http.NewRequest(http.MethodGet, "http://srv.example/ccm/query", nil)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)

	// rejected replay is returned as-is, no negotiation loop
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Len(t, mock.requests, 2)
}

func TestRoundTripper_NoChallengePassThrough(t *testing.T) {
	mock := &mockTransport{respond: func(req *http.Request, call int) *http.Response {
		return response(http.StatusNotFound, "missing", nil)
	}}
	rt := newTestRoundTripper(t, mock)

	req, _ := http.NewRequest(http.MethodGet, "http://srv.example/ccm/query", nil)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Len(t, mock.requests, 1)
}

func TestRoundTripper_NoCredentials(t *testing.T) {
	mock := &mockTransport{respond: func(req *http.Request, call int) *http.Response {
		return response(http.StatusUnauthorized, "", nil)
	}}
	rt, err := New(WithTransport(mock))
	require.NoError(t, err)

	req, _ := http.NewRequest(http.MethodGet, "http://srv.example/ccm/query", nil)
	_, err = rt.RoundTrip(req)
	var exchangeErr *AuthExchangeError
	require.True(t, errors.As(err, &exchangeErr))
}
