package repositories

import (
	"context"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
)

// AuthRepository exchanges a credential for a Docker Hub bearer token.
type AuthRepository interface {
	// Login performs a single login attempt against the given base URL.
	// Failures are *entities.AuthError or entities.ErrMalformedResponse.
	Login(ctx context.Context, baseURL string, cred entities.Credential) (string, error)
}
