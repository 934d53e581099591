package repositories

import (
	domainRepos "github.com/rios0rios0/hubsync/internal/domain/repositories"
	"github.com/rios0rios0/hubsync/internal/infrastructure/repositories/dockerhub"
	"github.com/rios0rios0/hubsync/internal/infrastructure/repositories/logos"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// One Docker Hub client serves both repository interfaces
	if err := container.Provide(dockerhub.NewClient); err != nil {
		return err
	}
	if err := container.Provide(func(impl *dockerhub.Client) domainRepos.AuthRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *dockerhub.Client) domainRepos.HubRepository {
		return impl
	}); err != nil {
		return err
	}

	// Register resolver registry with both logo resolution strategies
	if err := container.Provide(func() *ResolverRegistry {
		reg := NewResolverRegistry()
		reg.Register(logos.NewExplicitResolver())
		reg.Register(logos.NewHeuristicResolver())
		return reg
	}); err != nil {
		return err
	}

	return nil
}
