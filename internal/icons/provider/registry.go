package provider

import (
	"errors"
	"fmt"

	"github.com/louisbranch/iconkit/internal/icons/name"
	"github.com/louisbranch/iconkit/internal/icons/node"
	apperrors "github.com/louisbranch/iconkit/internal/platform/errors"
)

// ErrNotFound reports that no provider holds a requested icon.
var ErrNotFound = errors.New("no registered provider has the icon")

// Registry is an ordered, read-only set of providers. Lookups scan providers
// in registration order and the first provider holding an icon wins.
type Registry struct {
	providers []Provider
}

// NewRegistry builds a registry queried in the given order.
func NewRegistry(providers ...Provider) (*Registry, error) {
	list := make([]Provider, 0, len(providers))
	for i, p := range providers {
		if p == nil {
			return nil, fmt.Errorf("provider %d is required", i)
		}
		list = append(list, p)
	}
	return &Registry{providers: list}, nil
}

// Resolve canonicalizes requested and returns the nodes of the first provider
// that has it. A miss returns an ICON_NOT_FOUND error naming requested.
func (r *Registry) Resolve(requested string) ([]node.Node, error) {
	canonical := name.Canonical(requested)
	if r != nil && canonical != "" {
		for _, p := range r.providers {
			if !p.HasIcon(canonical) {
				continue
			}
			if nodes, ok := p.Icon(canonical); ok {
				return nodes, nil
			}
		}
	}
	return nil, apperrors.WrapWithMetadata(
		apperrors.CodeIconNotFound,
		fmt.Sprintf("icon %q not found", requested),
		map[string]string{"Name": requested, "Canonical": canonical},
		ErrNotFound,
	)
}

// Has reports whether any provider holds requested.
func (r *Registry) Has(requested string) bool {
	_, err := r.Resolve(requested)
	return err == nil
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.providers)
}

// Names returns the sorted union of icon names across providers that
// implement Lister.
func (r *Registry) Names() []string {
	set := make(map[string]struct{})
	if r != nil {
		for _, p := range r.providers {
			lister, ok := p.(Lister)
			if !ok {
				continue
			}
			for _, n := range lister.Names() {
				set[n] = struct{}{}
			}
		}
	}
	return sortedKeys(set)
}
