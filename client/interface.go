package client

import (
	"context"

	"github.com/viant/oslc/resource"
	"github.com/viant/oslc/schema"
)

// Interface defines the client contract for all exported operations.
type Interface interface {
	// Use resolves a server/project/domain triple into a service provider
	Use(ctx context.Context, serverBaseURL, providerTitle string, domain schema.Domain) (*resource.ServiceProvider, error)

	// Query runs a filtered, fully-paginated query for a resource type
	Query(ctx context.Context, resourceType string, params *QueryParams) (*QueryResult, error)

	// Read fetches one resource representation
	Read(ctx context.Context, uri string) (*ReadResult, error)

	// Create stages a resource at the discovered creation factory
	Create(ctx context.Context, resourceType string, res *resource.Resource) (*resource.Resource, error)

	// Update puts a resource back to its own URI
	Update(ctx context.Context, res *resource.Resource) error

	// Delete removes a resource
	Delete(ctx context.Context, uri string) error

	// ResolveName resolves a resource URI to its display name
	ResolveName(ctx context.Context, uri string) (string, error)
}

// Ensure Client implements Interface
var _ Interface = (*Client)(nil)
