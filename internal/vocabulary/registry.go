package vocabulary

import (
	"fmt"
	"sort"

	"github.com/PuerkitoBio/goquery"

	"ArticleMetadata/internal/ports"
)

// Vocabulary builds a metadata accessor for one markup convention (schema.org, OpenGraph, etc.).
type Vocabulary interface {
	Name() string
	Accessor(doc *goquery.Document) ports.MetadataAccessor
}

// Registry resolves configured vocabulary names to implementations.
type Registry struct {
	vocabularies map[string]Vocabulary
}

// NewRegistry returns a registry with no vocabularies; the zero value works too.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register makes v resolvable under its name. A later registration under the
// same name wins, so a vocabulary can be swapped out in tests.
func (r *Registry) Register(v Vocabulary) {
	if r.vocabularies == nil {
		r.vocabularies = make(map[string]Vocabulary)
	}
	r.vocabularies[v.Name()] = v
}

// Resolve looks a vocabulary up by name; the error lists what is registered.
func (r *Registry) Resolve(name string) (Vocabulary, error) {
	v, ok := r.vocabularies[name]
	if !ok {
		return nil, fmt.Errorf("vocabulary %s is not registered (have %v)", name, r.Names())
	}
	return v, nil
}

// Names lists registered vocabularies in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.vocabularies))
	for name := range r.vocabularies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
