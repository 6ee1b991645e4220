package client

import (
	"context"
	"net/url"

	"github.com/geoknoesis/rdf-go/rdf"
	"go.uber.org/zap"

	"github.com/viant/oslc/graph"
	"github.com/viant/oslc/resource"
	"github.com/viant/oslc/schema"
)

// QueryParams carries the protocol's filter expressions. All fields use the
// protocol's own filter syntax and are forwarded verbatim; the client does
// not parse or validate them.
type QueryParams struct {
	Prefix  string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Select  string `yaml:"select,omitempty" json:"select,omitempty"`
	Where   string `yaml:"where,omitempty" json:"where,omitempty"`
	OrderBy string `yaml:"orderBy,omitempty" json:"orderBy,omitempty"`
}

// QueryResult is the accumulated graph of every result page.
type QueryResult struct {
	store *graph.Store
	pages int
}

// Store exposes the accumulated result graph.
func (r *QueryResult) Store() *graph.Store { return r.store }

// Pages returns the number of pages fetched.
func (r *QueryResult) Pages() int { return r.pages }

// Members decomposes the result graph into one resource per listed member.
// Each resource is backed by an isolated sub-graph holding only its own
// statements.
func (r *QueryResult) Members() []*resource.Resource {
	var members []*resource.Resource
	seen := map[string]bool{}
	for _, member := range r.memberTerms() {
		iri, ok := member.(rdf.IRI)
		if !ok || seen[iri.Value] {
			continue
		}
		seen[iri.Value] = true
		members = append(members, resource.New(r.store.SubjectGraph(member), iri.Value))
	}
	return members
}

func (r *QueryResult) memberTerms() []rdf.Term {
	var out []rdf.Term
	for _, t := range r.store.StatementsWith(schema.PropMember) {
		out = append(out, t.O)
	}
	return out
}

// Query issues a filtered query against the discovered query base for the
// resource type, following next-page links until the full result set is
// accumulated into one graph.
func (c *Client) Query(ctx context.Context, resourceType string, params *QueryParams) (*QueryResult, error) {
	provider, ok := c.ServiceProvider()
	if !ok {
		return nil, &CapabilityError{Kind: "query", ResourceType: resourceType, Detail: "no service provider discovered; call Use first"}
	}
	queryBase, ok := provider.QueryBase(resourceType)
	if !ok {
		return nil, &CapabilityError{Kind: "query", ResourceType: resourceType, Detail: "service provider advertises no query base"}
	}
	pageURL, err := buildQueryURL(queryBase, params)
	if err != nil {
		return nil, &TransportError{URL: queryBase, Err: err}
	}

	result := &QueryResult{store: graph.New()}
	for pageURL != "" {
		if err := c.fetch(ctx, pageURL, result.store); err != nil {
			return nil, err
		}
		result.pages++
		next := ""
		for _, o := range result.store.Objects(rdf.IRI{Value: pageURL}, schema.PropNextPage) {
			if iri, ok := o.(rdf.IRI); ok {
				next = iri.Value
				break
			}
		}
		c.logger.Debug("query page fetched", zap.String("url", pageURL), zap.Bool("more", next != ""))
		pageURL = next
	}
	return result, nil
}

// buildQueryURL merges the filter parameters into the query base URL and
// disables server-side auto paging.
func buildQueryURL(queryBase string, params *QueryParams) (string, error) {
	u, err := url.Parse(queryBase)
	if err != nil {
		return "", err
	}
	q := u.Query()
	if params != nil {
		if params.Prefix != "" {
			q.Set(schema.ParamPrefix, params.Prefix)
		}
		if params.Select != "" {
			q.Set(schema.ParamSelect, params.Select)
		}
		if params.Where != "" {
			q.Set(schema.ParamWhere, params.Where)
		}
		if params.OrderBy != "" {
			q.Set(schema.ParamOrderBy, params.OrderBy)
		}
	}
	q.Set(schema.ParamPaging, "false")
	u.RawQuery = q.Encode()
	return u.String(), nil
}
