package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
	domainRepos "github.com/rios0rios0/hubsync/internal/domain/repositories"
)

// ResolverRegistry manages the registered logo resolution strategies.
type ResolverRegistry struct {
	resolvers map[entities.ResolutionMode]domainRepos.LogoResolver
}

// NewResolverRegistry creates an empty resolver registry.
func NewResolverRegistry() *ResolverRegistry {
	return &ResolverRegistry{
		resolvers: make(map[entities.ResolutionMode]domainRepos.LogoResolver),
	}
}

// Register adds a resolver under its mode.
func (r *ResolverRegistry) Register(resolver domainRepos.LogoResolver) {
	r.resolvers[resolver.Mode()] = resolver
}

// Get returns the resolver for the given mode.
func (r *ResolverRegistry) Get(mode entities.ResolutionMode) (domainRepos.LogoResolver, error) {
	resolver, ok := r.resolvers[mode]
	if !ok {
		return nil, fmt.Errorf("unknown logo resolution mode: %q", mode)
	}
	return resolver, nil
}

// Modes returns the registered modes in sorted order.
func (r *ResolverRegistry) Modes() []string {
	modes := make([]string, 0, len(r.resolvers))
	for mode := range r.resolvers {
		modes = append(modes, string(mode))
	}
	sort.Strings(modes)
	return modes
}
