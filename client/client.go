package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/viant/oslc/client/auth/transport"
	"github.com/viant/oslc/graph"
	"github.com/viant/oslc/resource"
	"github.com/viant/oslc/schema"
)

const defaultNameCacheSize = 1024

// Client orchestrates discovery, query and CRUD against one lifecycle
// server. The discovered service provider and the session state are scoped
// to the client instance; Use must not race in-flight requests.
type Client struct {
	httpClient *http.Client
	negotiator *transport.RoundTripper
	logger     *zap.Logger
	timeout    time.Duration
	nameCache  int

	mu       sync.RWMutex
	provider *resource.ServiceProvider
	names    nameCache
}

// New creates a client. Without options it negotiates auth with no
// credentials, which only suits servers with anonymous read access.
func New(options ...Option) (*Client, error) {
	ret := &Client{
		logger:    zap.NewNop(),
		timeout:   60 * time.Second,
		nameCache: defaultNameCacheSize,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.negotiator == nil {
		negotiator, err := transport.New(transport.WithLogger(ret.logger))
		if err != nil {
			return nil, err
		}
		ret.negotiator = negotiator
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{Transport: ret.negotiator, Timeout: ret.timeout}
	}
	ret.names = newNameCache(ret.nameCache)
	return ret, nil
}

// Use resolves a server/project/domain triple into the project's service
// provider and caches it for subsequent query and CRUD calls. Each step
// fetches one discovery document through the shared auth transport.
func (c *Client) Use(ctx context.Context, serverBaseURL, providerTitle string, domain schema.Domain) (*resource.ServiceProvider, error) {
	rootURL := strings.TrimRight(serverBaseURL, "/") + "/rootservices"
	rootStore := graph.New()
	if err := c.fetch(ctx, rootURL, rootStore); err != nil {
		return nil, err
	}
	roots := resource.NewRootServices(rootStore, rootURL)
	catalogURI, ok := roots.CatalogURI(domain)
	if !ok {
		return nil, &DiscoveryError{Step: stepRootServices, URL: rootURL,
			Detail: "domain " + string(domain) + " not available"}
	}
	c.logger.Debug("resolved catalog", zap.String("domain", string(domain)), zap.String("catalog", catalogURI))

	catalogStore := graph.New()
	if err := c.fetch(ctx, catalogURI, catalogStore); err != nil {
		return nil, err
	}
	catalog := resource.NewCatalog(catalogStore, catalogURI)
	providerURI, ok := catalog.ServiceProviderURI(providerTitle)
	if !ok {
		return nil, &DiscoveryError{Step: stepCatalog, URL: catalogURI,
			Detail: "service provider " + providerTitle + " not found"}
	}
	c.logger.Debug("resolved service provider", zap.String("title", providerTitle), zap.String("provider", providerURI))

	providerStore := graph.New()
	if err := c.fetch(ctx, providerURI, providerStore); err != nil {
		return nil, err
	}
	provider := resource.NewServiceProvider(providerStore, providerURI)

	c.mu.Lock()
	c.provider = provider
	c.mu.Unlock()
	return provider, nil
}

// ServiceProvider returns the provider discovered by the last Use, if any.
func (c *Client) ServiceProvider() (*resource.ServiceProvider, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.provider, c.provider != nil
}

// fetch GETs a URL and decodes the RDF body into store.
func (c *Client) fetch(ctx context.Context, uri string, store *graph.Store) error {
	resp, err := c.get(ctx, uri)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := c.decode(ctx, store, resp, uri); err != nil {
		return err
	}
	return nil
}

// get issues an authenticated GET and maps network failures and non-2xx
// statuses to TransportError. Callers own the response body.
func (c *Client) get(ctx context.Context, uri string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, &TransportError{URL: uri, Err: err}
	}
	return c.do(req)
}

// do sends a prepared request and enforces the 2xx contract.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: req.URL.String(), Err: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return nil, &TransportError{URL: req.URL.String(), Status: resp.StatusCode, Body: string(body)}
	}
	return resp, nil
}

// decode parses a response body into store. Parse failures are logged and
// surfaced; a partial result without a failure signal would hide broken
// server payloads.
func (c *Client) decode(ctx context.Context, store *graph.Store, resp *http.Response, uri string) error {
	if err := store.Decode(ctx, resp.Body, resp.Header.Get("Content-Type"), uri); err != nil {
		c.logger.Warn("response parse failed", zap.String("url", uri), zap.Error(err))
		return err
	}
	return nil
}
