package graph

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/geoknoesis/rdf-go/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFor(t *testing.T) {
	testCases := []struct {
		mediaType string
		expect    rdf.Format
	}{
		{"application/rdf+xml", rdf.FormatRDFXML},
		{"application/rdf+xml; charset=UTF-8", rdf.FormatRDFXML},
		{"application/xml", rdf.FormatRDFXML},
		{"text/turtle", rdf.FormatTurtle},
		{"application/ld+json", rdf.FormatJSONLD},
		{"application/json", rdf.FormatJSONLD},
		{"application/n-triples", rdf.FormatNTriples},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, FormatFor(testCase.mediaType), testCase.mediaType)
	}
}

func TestStore_DecodeNTriples(t *testing.T) {
	body := `<http://srv/ccm/resource/1> <http://purl.org/dc/terms/title> "Bug 1" .
<http://srv/ccm/resource/1> <http://purl.org/dc/terms/identifier> "1001" .
`
	store := New()
	err := store.Decode(context.Background(), strings.NewReader(body), "application/n-triples", "http://srv/ccm/resource/1")
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())

	objects := store.Objects(rdf.IRI{Value: "http://srv/ccm/resource/1"}, "http://purl.org/dc/terms/title")
	require.Len(t, objects, 1)
	assert.Equal(t, "Bug 1", objects[0].(rdf.Literal).Lexical)
}

func TestStore_DecodeFailureIsParseError(t *testing.T) {
	store := New()
	err := store.Decode(context.Background(), strings.NewReader("this is not RDF"), "application/n-triples", "http://srv/broken")
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "http://srv/broken", parseErr.URL)
}

func TestStore_EncodeRoundTrip(t *testing.T) {
	store := New()
	subject := rdf.IRI{Value: "http://srv/ccm/resource/1"}
	store.Add(subject, "http://purl.org/dc/terms/title", rdf.Literal{Lexical: "Bug 1"})
	store.Add(subject, "http://example.org/ns#relatedTo", rdf.IRI{Value: "http://srv/ccm/resource/2"})
	// statements about other subjects must not be serialized
	store.Add(rdf.IRI{Value: "http://srv/ccm/resource/2"}, "http://purl.org/dc/terms/title", rdf.Literal{Lexical: "other"})

	var buf strings.Builder
	require.NoError(t, store.Encode(subject, &buf))

	decoded := New()
	require.NoError(t, decoded.Decode(context.Background(), strings.NewReader(buf.String()), "application/rdf+xml", "mem://encoded"))
	assert.Equal(t, 2, decoded.Len())
	titles := decoded.Objects(subject, "http://purl.org/dc/terms/title")
	require.Len(t, titles, 1)
	assert.Equal(t, "Bug 1", titles[0].(rdf.Literal).Lexical)
}
