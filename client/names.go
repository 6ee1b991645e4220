package client

import (
	"context"

	"github.com/viant/oslc/internal/collection"
	"github.com/viant/oslc/schema"
)

type nameCache = *collection.SyncMap[string, string]

func newNameCache(capacity int) nameCache {
	return collection.NewSyncMap[string, string](capacity)
}

// ResolveName resolves a resource URI (typically a contributor or owner
// link) to its display name, preferring foaf name over the title. Results
// are cached per URL for the life of the client; the cache is size-capped
// so long-running processes do not grow it without bound. A resource with
// neither property resolves to its own URI.
func (c *Client) ResolveName(ctx context.Context, uri string) (string, error) {
	if name, ok := c.names.Get(uri); ok {
		return name, nil
	}
	result, err := c.Read(ctx, uri)
	if err != nil {
		return "", err
	}
	if result.Resource == nil {
		return "", &TransportError{URL: uri, Body: "non-RDF representation has no name"}
	}
	name, ok := result.Resource.GetFirst(schema.PropName)
	if !ok {
		name, ok = result.Resource.Title()
	}
	if !ok {
		name = uri
	}
	c.names.Put(uri, name)
	return name, nil
}
