package icons

import (
	"github.com/louisbranch/iconkit/internal/icons/lucide"
	"github.com/louisbranch/iconkit/internal/icons/provider"
)

// NewRegistry builds the application registry: the custom providers in the
// given order, then the core icon id aliases, then the built-in Lucide
// catalog. Custom icons therefore shadow both aliases and built-ins.
func NewRegistry(custom ...provider.Provider) (*provider.Registry, error) {
	builtin := provider.NewCatalogProvider(lucide.Catalog())
	providers := make([]provider.Provider, 0, len(custom)+2)
	providers = append(providers, custom...)
	providers = append(providers, NewAliasProvider(builtin), builtin)
	return provider.NewRegistry(providers...)
}
