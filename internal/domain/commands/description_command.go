package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
	"github.com/rios0rios0/hubsync/internal/domain/repositories"
)

// Description is the interface for the description command.
type Description interface {
	Execute(ctx context.Context, opts DescriptionOptions) error
}

// DescriptionOptions holds the inputs of a description upload.
type DescriptionOptions struct {
	Repository    entities.Repository
	ModelCardPath string // full description (markdown)
	ShortDescPath string // short description (plain text)
	Token         string
	BaseURL       string
}

// DescriptionCommand validates the two description files and PATCHes them to
// the repository in a single attempt.
type DescriptionCommand struct {
	hub repositories.HubRepository
}

// NewDescriptionCommand creates a new DescriptionCommand with the given hub repository.
func NewDescriptionCommand(hub repositories.HubRepository) *DescriptionCommand {
	return &DescriptionCommand{hub: hub}
}

// Execute reads, validates and uploads the description.
func (it *DescriptionCommand) Execute(ctx context.Context, opts DescriptionOptions) error {
	if err := opts.Repository.Validate(); err != nil {
		return err
	}

	contents, err := readDescriptionFiles(opts.ModelCardPath, opts.ShortDescPath)
	if err != nil {
		return err
	}
	fullDescription, shortDescription := contents[0], contents[1]

	if opts.Token == "" {
		return entities.ErrMissingToken
	}

	desc := entities.Description{
		Short: strings.TrimSpace(shortDescription),
		Full:  fullDescription,
	}
	if originalLen, truncated := desc.TruncateShort(); truncated {
		logger.Warnf(
			"Short description truncated from %d to %d chars",
			originalLen, entities.MaxShortDescriptionLength,
		)
	}

	logger.Infof("Uploading description for %s", opts.Repository)

	if updateErr := it.hub.UpdateDescription(ctx, opts.BaseURL, opts.Token, opts.Repository, desc); updateErr != nil {
		return updateErr
	}

	logger.Infof("Successfully uploaded description for %s", opts.Repository)
	logger.Infof("Short description: %s", desc.Short)
	logger.Infof("Full description: %d chars", len(desc.Full))
	logger.Info(opts.Repository.PageURL(opts.BaseURL))

	return nil
}

// readDescriptionFiles returns the raw content of each path. Every path must
// exist before any of them is checked for content that is only whitespace.
func readDescriptionFiles(paths ...string) ([]string, error) {
	contents := make([]string, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &entities.FileError{Kind: entities.ErrMissingFile, Path: path}
			}
			return nil, fmt.Errorf("failed to read %q: %w", path, err)
		}
		contents = append(contents, string(data))
	}

	for i, content := range contents {
		if strings.TrimSpace(content) == "" {
			return nil, &entities.FileError{Kind: entities.ErrEmptyFile, Path: paths[i]}
		}
	}
	return contents, nil
}
