package repositories

import (
	"context"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
)

// LogoResolver finds the logo file for a repository.
// A nil candidate with a nil error means there is no logo to upload.
type LogoResolver interface {
	// Mode returns the resolution mode this resolver implements.
	Mode() entities.ResolutionMode

	// Resolve returns the chosen candidate, or nil when there is none.
	Resolve(ctx context.Context, req entities.LogoRequest) (*entities.LogoCandidate, error)
}
