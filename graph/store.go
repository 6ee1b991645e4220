// Package graph provides the mutable triple store shared by resources read
// from one HTTP response, and the codec between store contents and the RDF
// serializations the protocol negotiates.
package graph

import (
	"sync"

	"github.com/geoknoesis/rdf-go/rdf"
)

// Store is a mutable set of RDF statements. One store backs every resource
// decoded from the same response body; resources mutate it through their
// own subject only.
type Store struct {
	mu         sync.RWMutex
	statements []rdf.Triple
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Add appends a statement.
func (s *Store) Add(subject rdf.Term, predicate string, object rdf.Term) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statements = append(s.statements, rdf.Triple{S: subject, P: rdf.IRI{Value: predicate}, O: object})
}

// Remove drops every statement with the given subject and predicate.
func (s *Store) Remove(subject rdf.Term, predicate string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.statements[:0]
	for _, t := range s.statements {
		if sameTerm(t.S, subject) && t.P.Value == predicate {
			continue
		}
		kept = append(kept, t)
	}
	s.statements = kept
}

// Objects returns the objects of all statements matching subject and
// predicate, in insertion order.
func (s *Store) Objects(subject rdf.Term, predicate string) []rdf.Term {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []rdf.Term
	for _, t := range s.statements {
		if sameTerm(t.S, subject) && t.P.Value == predicate {
			out = append(out, t.O)
		}
	}
	return out
}

// Subjects returns the subjects of all statements matching predicate and
// object.
func (s *Store) Subjects(predicate string, object rdf.Term) []rdf.Term {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []rdf.Term
	for _, t := range s.statements {
		if t.P.Value == predicate && sameTerm(t.O, object) {
			out = append(out, t.S)
		}
	}
	return out
}

// StatementsWith returns every statement carrying the given predicate.
func (s *Store) StatementsWith(predicate string) []rdf.Triple {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []rdf.Triple
	for _, t := range s.statements {
		if t.P.Value == predicate {
			out = append(out, t)
		}
	}
	return out
}

// StatementsAbout returns every statement whose subject matches.
func (s *Store) StatementsAbout(subject rdf.Term) []rdf.Triple {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []rdf.Triple
	for _, t := range s.statements {
		if sameTerm(t.S, subject) {
			out = append(out, t)
		}
	}
	return out
}

// SubjectGraph copies every statement about subject into a fresh store, so
// a decomposed query member only sees its own triples.
func (s *Store) SubjectGraph(subject rdf.Term) *Store {
	sub := New()
	for _, t := range s.StatementsAbout(subject) {
		sub.Add(t.S, t.P.Value, t.O)
	}
	return sub
}

// Len returns the number of statements held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.statements)
}

func sameTerm(a, b rdf.Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Kind() == b.Kind() && a.String() == b.String()
}
