//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
	"github.com/rios0rios0/hubsync/internal/domain/repositories"
)

// StubLogoResolver is a stub implementation of repositories.LogoResolver.
type StubLogoResolver struct {
	ResolverMode entities.ResolutionMode
	Candidate    *entities.LogoCandidate
	ResolveErr   error

	// spy: requests received
	Requests []entities.LogoRequest
}

var _ repositories.LogoResolver = (*StubLogoResolver)(nil)

func (s *StubLogoResolver) Mode() entities.ResolutionMode { return s.ResolverMode }

func (s *StubLogoResolver) Resolve(
	_ context.Context, req entities.LogoRequest,
) (*entities.LogoCandidate, error) {
	s.Requests = append(s.Requests, req)
	return s.Candidate, s.ResolveErr
}
