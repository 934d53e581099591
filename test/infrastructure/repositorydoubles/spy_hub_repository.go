//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
	"github.com/rios0rios0/hubsync/internal/domain/repositories"
)

// SpyHubRepository implements repositories.HubRepository as a configurable spy.
type SpyHubRepository struct {
	// --- UpdateDescription ---
	UpdateDescriptionErr error
	Descriptions         []entities.Description

	// --- UploadLogo ---
	UploadLogoErr error
	Logos         []entities.LogoCandidate

	// spy: shared inputs
	BaseURLs     []string
	Tokens       []string
	Repositories []entities.Repository
}

var _ repositories.HubRepository = (*SpyHubRepository)(nil)

func (s *SpyHubRepository) UpdateDescription(
	_ context.Context, baseURL, token string, repo entities.Repository, desc entities.Description,
) error {
	s.record(baseURL, token, repo)
	s.Descriptions = append(s.Descriptions, desc)
	return s.UpdateDescriptionErr
}

func (s *SpyHubRepository) UploadLogo(
	_ context.Context, baseURL, token string, repo entities.Repository, logo entities.LogoCandidate,
) error {
	s.record(baseURL, token, repo)
	s.Logos = append(s.Logos, logo)
	return s.UploadLogoErr
}

func (s *SpyHubRepository) record(baseURL, token string, repo entities.Repository) {
	s.BaseURLs = append(s.BaseURLs, baseURL)
	s.Tokens = append(s.Tokens, token)
	s.Repositories = append(s.Repositories, repo)
}
