//go:build integration || unit || test

// Package repositorydoubles provides hand-crafted test doubles for the
// repository interfaces.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
	"github.com/rios0rios0/hubsync/internal/domain/repositories"
)

// LoginResult is one scripted answer of SpyAuthRepository.
type LoginResult struct {
	Token string
	Err   error
}

// SpyAuthRepository implements repositories.AuthRepository as a configurable spy.
// Results are returned in order; the last one repeats once they run out.
type SpyAuthRepository struct {
	Results []LoginResult

	// spy: inputs received
	LoginCalls  int
	BaseURLs    []string
	Credentials []entities.Credential
}

var _ repositories.AuthRepository = (*SpyAuthRepository)(nil)

func (s *SpyAuthRepository) Login(
	_ context.Context, baseURL string, cred entities.Credential,
) (string, error) {
	s.LoginCalls++
	s.BaseURLs = append(s.BaseURLs, baseURL)
	s.Credentials = append(s.Credentials, cred)

	if len(s.Results) == 0 {
		return "", nil
	}
	idx := s.LoginCalls - 1
	if idx >= len(s.Results) {
		idx = len(s.Results) - 1
	}
	return s.Results[idx].Token, s.Results[idx].Err
}
