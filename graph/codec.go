package graph

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"
)

// ParseError reports a response body that could not be parsed as RDF.
type ParseError struct {
	URL       string
	MediaType string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s response from %s: %v", e.MediaType, e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FormatFor maps a response media type to an RDF serialization format.
// Unrecognized types fall back to auto-detection.
func FormatFor(mediaType string) rdf.Format {
	mt := mediaType
	if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
		mt = parsed
	}
	switch strings.ToLower(mt) {
	case "application/rdf+xml", "application/xml", "text/xml":
		return rdf.FormatRDFXML
	case "text/turtle":
		return rdf.FormatTurtle
	case "application/ld+json", "application/json":
		return rdf.FormatJSONLD
	case "application/n-triples":
		return rdf.FormatNTriples
	}
	return rdf.FormatAuto
}

// Decode parses body into the store. The source URL is only used to
// contextualize parse failures.
func (s *Store) Decode(ctx context.Context, body io.Reader, mediaType, sourceURL string) error {
	err := rdf.Parse(ctx, body, FormatFor(mediaType), func(st rdf.Statement) error {
		s.Add(st.S, st.P.Value, st.O)
		return nil
	})
	if err != nil {
		return &ParseError{URL: sourceURL, MediaType: mediaType, Err: err}
	}
	return nil
}

// Encode writes every statement about subject to w as RDF/XML, the
// serialization servers of this protocol family accept on writes.
func (s *Store) Encode(subject rdf.Term, w io.Writer) error {
	writer, err := rdf.NewWriter(w, rdf.FormatRDFXML)
	if err != nil {
		return err
	}
	for _, t := range s.StatementsAbout(subject) {
		if err := writer.Write(rdf.Statement{S: t.S, P: t.P, O: t.O}); err != nil {
			return err
		}
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	return writer.Close()
}
