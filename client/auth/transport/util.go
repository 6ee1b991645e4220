package transport

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/viant/oslc/schema"
)

func clone(r *http.Request) *http.Request {
	cloned := r.Clone(r.Context())
	// deep-copy body for idempotent replay of writes
	if r.Body != nil {
		buf, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewBuffer(buf))
		cloned.Body = io.NopCloser(bytes.NewBuffer(buf))
	}
	return cloned
}

// parseTokenEndpoint extracts the token endpoint named by a token-realm
// challenge, e.g. WWW-Authenticate: Bearer realm="jsa", token_uri="https://…".
func parseTokenEndpoint(resp *http.Response) (string, error) {
	authenticateHeader := resp.Header.Get(schema.HeaderWWWAuthenticate)
	authenticateHeader = strings.TrimPrefix(authenticateHeader, "Bearer ")
	var endpoint string
	for _, part := range strings.Split(authenticateHeader, ",") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "token_uri=") {
			endpoint = strings.Trim(strings.TrimPrefix(part, "token_uri="), "\"")
			break
		}
	}
	if endpoint == "" {
		return "", errors.New("WWW-Authenticate missing token_uri param")
	}
	return endpoint, nil
}
