// Package provider answers icon lookups against backing catalogs and
// aggregates several providers into an ordered registry.
package provider

import (
	"fmt"
	"sort"

	"github.com/louisbranch/iconkit/internal/icons/catalog"
	"github.com/louisbranch/iconkit/internal/icons/name"
	"github.com/louisbranch/iconkit/internal/icons/node"
)

// Provider answers membership and lookup queries for canonical icon names.
// Implementations must be safe for concurrent use and must report absence
// through the boolean results rather than errors or panics.
type Provider interface {
	HasIcon(name string) bool
	Icon(name string) ([]node.Node, bool)
}

// Lister is implemented by providers that can enumerate their icons.
type Lister interface {
	Names() []string
}

// CatalogProvider serves icons from a catalog.
type CatalogProvider struct {
	icons catalog.Catalog
}

// NewCatalogProvider wraps c. The provider keeps a reference to c, so the
// catalog must not change afterwards.
func NewCatalogProvider(c catalog.Catalog) *CatalogProvider {
	if c == nil {
		c = catalog.Catalog{}
	}
	return &CatalogProvider{icons: c}
}

// Pick builds a provider exposing only the named icons of c, so callers can
// ship a subset of a large catalog. Every name must exist in c.
func Pick(c catalog.Catalog, names ...string) (*CatalogProvider, error) {
	subset := make(catalog.Catalog, len(names))
	for _, requested := range names {
		canonical := name.Canonical(requested)
		nodes, ok := c[canonical]
		if !ok {
			return nil, fmt.Errorf("pick %q: %w", requested, ErrNotFound)
		}
		subset[canonical] = nodes
	}
	return &CatalogProvider{icons: subset}, nil
}

// HasIcon reports whether the catalog holds the canonical name.
func (p *CatalogProvider) HasIcon(name string) bool {
	_, ok := p.icons[name]
	return ok
}

// Icon returns the nodes for the canonical name. Repeated calls return the
// same slice.
func (p *CatalogProvider) Icon(name string) ([]node.Node, bool) {
	nodes, ok := p.icons[name]
	return nodes, ok
}

// Names returns the provider's icon names in sorted order.
func (p *CatalogProvider) Names() []string {
	return catalog.Names(p.icons)
}

// Len returns the number of icons served.
func (p *CatalogProvider) Len() int {
	return len(p.icons)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
