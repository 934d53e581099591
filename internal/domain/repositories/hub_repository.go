package repositories

import (
	"context"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
)

// HubRepository publishes listing metadata for a Docker Hub repository.
// Every call is a single attempt against baseURL; retrying is up to the caller.
type HubRepository interface {
	// UpdateDescription PATCHes the short and full description.
	// A non-2xx answer is returned as *entities.PublishError.
	UpdateDescription(
		ctx context.Context,
		baseURL string,
		token string,
		repo entities.Repository,
		desc entities.Description,
	) error

	// UploadLogo POSTs the candidate file to the media service.
	// Every failure is returned as *entities.UploadError.
	UploadLogo(
		ctx context.Context,
		baseURL string,
		token string,
		repo entities.Repository,
		logo entities.LogoCandidate,
	) error
}
