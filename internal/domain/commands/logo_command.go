package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
	"github.com/rios0rios0/hubsync/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/hubsync/internal/infrastructure/repositories"
)

// Logo is the interface for the logo command.
type Logo interface {
	Execute(ctx context.Context, opts LogoOptions) (entities.LogoResult, error)
}

// LogoOptions holds the inputs of a logo upload.
type LogoOptions struct {
	Repository entities.Repository
	Mode       entities.ResolutionMode
	MatchFile  string // explicit mode
	Prefix     string // heuristic mode
	LogosDir   string
	Token      string
	BaseURL    string
}

// LogoCommand resolves a logo file with the selected strategy and uploads it.
// Finding no logo is a skip, not a failure.
type LogoCommand struct {
	hub       repositories.HubRepository
	resolvers *infraRepos.ResolverRegistry
}

// NewLogoCommand creates a new LogoCommand with the given hub repository and resolvers.
func NewLogoCommand(
	hub repositories.HubRepository,
	resolvers *infraRepos.ResolverRegistry,
) *LogoCommand {
	return &LogoCommand{
		hub:       hub,
		resolvers: resolvers,
	}
}

// Execute resolves and uploads the logo.
func (it *LogoCommand) Execute(ctx context.Context, opts LogoOptions) (entities.LogoResult, error) {
	if err := opts.Repository.Validate(); err != nil {
		return entities.LogoResult{}, err
	}
	if opts.Token == "" {
		return entities.LogoResult{}, entities.ErrMissingToken
	}

	resolver, err := it.resolvers.Get(opts.Mode)
	if err != nil {
		return entities.LogoResult{}, err
	}

	candidate, err := resolver.Resolve(ctx, entities.LogoRequest{
		Repository: opts.Repository,
		LogosDir:   opts.LogosDir,
		MatchFile:  opts.MatchFile,
		Prefix:     opts.Prefix,
	})
	if err != nil {
		return entities.LogoResult{}, err
	}

	if candidate == nil {
		logger.Warnf("No logo resolved for %s, skipping logo upload", opts.Repository)
		return entities.LogoResult{Skipped: true}, nil
	}

	logger.Infof("Uploading logo for %s: %s", opts.Repository, candidate.Path)

	if uploadErr := it.hub.UploadLogo(ctx, opts.BaseURL, opts.Token, opts.Repository, *candidate); uploadErr != nil {
		return entities.LogoResult{Candidate: candidate}, uploadErr
	}

	logger.Infof("Successfully uploaded logo for %s", opts.Repository)
	return entities.LogoResult{Candidate: candidate}, nil
}
