package transport

import (
	"net/http"
)

// cookieWrap attaches cookies from a jar before delegating to the inner
// RoundTripper and stores response cookies back. Sessions established by a
// form login therefore persist even though the negotiator issues requests
// through the RoundTripper directly rather than an http.Client.
type cookieWrap struct {
	inner http.RoundTripper
	jar   http.CookieJar
}

// WrapWithCookieJar wraps inner so cookies from jar are sent and updated on
// each exchange.
func WrapWithCookieJar(inner http.RoundTripper, jar http.CookieJar) http.RoundTripper {
	if jar == nil || inner == nil {
		return inner
	}
	return &cookieWrap{inner: inner, jar: jar}
}

func (w *cookieWrap) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	for _, c := range w.jar.Cookies(clone.URL) {
		clone.AddCookie(c)
	}
	resp, err := w.inner.RoundTrip(clone)
	if err != nil {
		return nil, err
	}
	w.jar.SetCookies(clone.URL, resp.Cookies())
	return resp, nil
}
