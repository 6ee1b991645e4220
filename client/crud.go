package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/viant/oslc/graph"
	"github.com/viant/oslc/resource"
	"github.com/viant/oslc/schema"
)

// ReadResult dispatches a fetched representation by content type: a parsed
// markup document, a raw syndication-feed payload, or (the default
// assumption) an RDF graph wrapped as a resource.
type ReadResult struct {
	ContentType string
	Resource    *resource.Resource
	Document    *html.Node
	Feed        []byte
}

// Read fetches one resource. RDF responses capture the ETag and, for URLs
// carrying query parameters, keep the canonical subject at origin+path with
// the full request URL recorded separately.
func (c *Client) Read(ctx context.Context, uri string) (*ReadResult, error) {
	resp, err := c.get(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	result := &ReadResult{ContentType: contentType}
	switch {
	case mediaTypeIs(contentType, schema.MediaHTML):
		doc, err := html.Parse(resp.Body)
		if err != nil {
			return nil, &TransportError{URL: uri, Err: err}
		}
		result.Document = doc
	case mediaTypeIs(contentType, schema.MediaAtom) || mediaTypeIs(contentType, schema.MediaRSS):
		payload, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &TransportError{URL: uri, Err: err}
		}
		result.Feed = payload
	default:
		store := graph.New()
		if err := c.decode(ctx, store, resp, uri); err != nil {
			return nil, err
		}
		canonical, queryURI := canonicalURI(uri)
		res := resource.New(store, canonical)
		res.SetQueryURI(queryURI)
		res.SetETag(resp.Header.Get(schema.HeaderETag))
		result.Resource = res
	}
	return result, nil
}

// Create stages the resource's triples at the creation factory discovered
// for resourceType and re-reads the server-assigned location, returning the
// canonical created resource.
func (c *Client) Create(ctx context.Context, resourceType string, res *resource.Resource) (*resource.Resource, error) {
	provider, ok := c.ServiceProvider()
	if !ok {
		return nil, &CapabilityError{Kind: "creation", ResourceType: resourceType, Detail: "no service provider discovered; call Use first"}
	}
	factory, ok := provider.CreationFactory(resourceType)
	if !ok {
		return nil, &CapabilityError{Kind: "creation", ResourceType: resourceType, Detail: "service provider advertises no creation factory"}
	}
	var body bytes.Buffer
	if err := res.Store().Encode(res.Subject(), &body); err != nil {
		return nil, &TransportError{URL: factory, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, factory, &body)
	if err != nil {
		return nil, &TransportError{URL: factory, Err: err}
	}
	req.Header.Set("Content-Type", schema.MediaRDFXML)
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	location := resp.Header.Get(schema.HeaderLocation)
	if location == "" {
		return nil, &TransportError{URL: factory, Status: resp.StatusCode, Body: "created response carries no location"}
	}
	c.logger.Debug("resource created", zap.String("factory", factory), zap.String("location", location))
	created, err := c.Read(ctx, location)
	if err != nil {
		return nil, err
	}
	return created.Resource, nil
}

// Update puts the resource's triples back to its own URI. A held
// concurrency token is sent as a match precondition; a stale token
// surfaces as a TransportError with the server's precondition status.
func (c *Client) Update(ctx context.Context, res *resource.Resource) error {
	uri := res.URI()
	var body bytes.Buffer
	if err := res.Store().Encode(res.Subject(), &body); err != nil {
		return &TransportError{URL: uri, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uri, &body)
	if err != nil {
		return &TransportError{URL: uri, Err: err}
	}
	req.Header.Set("Content-Type", schema.MediaRDFXML)
	if etag := res.ETag(); etag != "" {
		req.Header.Set(schema.HeaderIfMatch, etag)
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if etag := resp.Header.Get(schema.HeaderETag); etag != "" {
		res.SetETag(etag)
	}
	return nil
}

// Delete removes the resource, attaching the CSRF-prevention header the
// server family requires on writes: the session identifier when a session
// cookie is held, a fixed sentinel otherwise.
func (c *Client) Delete(ctx context.Context, uri string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, uri, nil)
	if err != nil {
		return &TransportError{URL: uri, Err: err}
	}
	csrf := schema.CSRFSentinel
	if session := c.negotiator.SessionID(req); session != "" {
		csrf = session
	}
	req.Header.Set(schema.HeaderCSRFPrevent, csrf)
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return nil
}

// canonicalURI strips query parameters: a resource fetched through a URL
// with a query string is addressed by origin and path. The second return
// is the original request URI when stripping occurred, else "".
func canonicalURI(uri string) (string, string) {
	u, err := url.Parse(uri)
	if err != nil || u.RawQuery == "" {
		return uri, ""
	}
	stripped := *u
	stripped.RawQuery = ""
	stripped.Fragment = ""
	return stripped.String(), uri
}

func mediaTypeIs(contentType, mediaType string) bool {
	mt := contentType
	if idx := strings.IndexByte(contentType, ';'); idx >= 0 {
		mt = contentType[:idx]
	}
	return strings.EqualFold(strings.TrimSpace(mt), mediaType)
}
