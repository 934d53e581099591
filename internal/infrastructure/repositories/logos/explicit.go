package logos

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
)

const noneAnswer = "none"

// ExplicitResolver reads the logo file name from a match file written by the
// logo-resolver step. The name is looked up in the logos directory first and
// then relative to the working directory.
type ExplicitResolver struct{}

// NewExplicitResolver creates a new ExplicitResolver.
func NewExplicitResolver() *ExplicitResolver {
	return &ExplicitResolver{}
}

// Mode returns entities.ResolutionExplicit.
func (r *ExplicitResolver) Mode() entities.ResolutionMode {
	return entities.ResolutionExplicit
}

// Resolve returns nil when there is no match file, the file says "none" or is
// empty, or the named logo does not exist.
func (r *ExplicitResolver) Resolve(
	_ context.Context,
	req entities.LogoRequest,
) (*entities.LogoCandidate, error) {
	if req.MatchFile == "" {
		logger.Info("No logo match file given")
		return nil, nil //nolint:nilnil // no logo is a valid outcome
	}

	data, err := os.ReadFile(req.MatchFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warnf("Logo match file not found: %s", req.MatchFile)
			return nil, nil //nolint:nilnil // no logo is a valid outcome
		}
		return nil, fmt.Errorf("failed to read logo match file %q: %w", req.MatchFile, err)
	}

	name := strings.TrimSpace(string(data))
	if name == "" || strings.EqualFold(name, noneAnswer) {
		logger.Info("Logo resolver returned 'none', no matching logo")
		return nil, nil //nolint:nilnil // no logo is a valid outcome
	}

	for _, path := range []string{filepath.Join(req.LogosDir, name), name} {
		if isRegularFile(path) {
			logger.Infof("Logo resolved from match file: %s", path)
			candidate := entities.NewLogoCandidate(path)
			return &candidate, nil
		}
	}

	logger.Warnf("Logo file not found: %s", name)
	return nil, nil //nolint:nilnil // no logo is a valid outcome
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
