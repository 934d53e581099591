package logos

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
)

// versionSuffix matches a trailing version such as "3" or "3.1".
var versionSuffix = regexp.MustCompile(`[0-9]+(\.[0-9]+)?$`)

// HeuristicResolver picks a logo from the logos directory by file name.
// Candidates are named "{prefix}-*"; the first prefix in the chain that
// matches anything wins, and its matches are ranked by LogoCandidate.Better.
type HeuristicResolver struct{}

// NewHeuristicResolver creates a new HeuristicResolver.
func NewHeuristicResolver() *HeuristicResolver {
	return &HeuristicResolver{}
}

// Mode returns entities.ResolutionHeuristic.
func (r *HeuristicResolver) Mode() entities.ResolutionMode {
	return entities.ResolutionHeuristic
}

// Resolve returns the best candidate of the first matching prefix, or nil.
func (r *HeuristicResolver) Resolve(
	_ context.Context,
	req entities.LogoRequest,
) (*entities.LogoCandidate, error) {
	for _, prefix := range prefixChain(req.Repository.Name, req.Prefix) {
		matches, err := r.match(req.LogosDir, prefix)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			logger.Debugf("No logo matches prefix %q", prefix)
			continue
		}

		best := pickBest(matches)
		logger.Infof("Logo auto-detected with prefix %q: %s (%d candidates)", prefix, best.Path, len(matches))
		return &best, nil
	}

	logger.Warnf("No logo found in %s for %s", req.LogosDir, req.Repository.Name)
	return nil, nil //nolint:nilnil // no logo is a valid outcome
}

func (r *HeuristicResolver) match(logosDir, prefix string) ([]entities.LogoCandidate, error) {
	pattern := filepath.Join(logosDir, escapeGlob(prefix)+"-*")

	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search logos with %q: %w", pattern, err)
	}

	candidates := make([]entities.LogoCandidate, 0, len(paths))
	for _, path := range paths {
		if isRegularFile(path) {
			candidates = append(candidates, entities.NewLogoCandidate(path))
		}
	}
	return candidates, nil
}

// prefixChain lists the prefixes to try, highest priority first: the override,
// the full name, the name without its version suffix and the first hyphen
// segment. Empty and repeated prefixes are dropped.
func prefixChain(name, override string) []string {
	raw := []string{
		override,
		name,
		stripVersion(name),
		strings.SplitN(name, "-", 2)[0],
	}

	seen := make(map[string]bool, len(raw))
	chain := make([]string, 0, len(raw))
	for _, prefix := range raw {
		if prefix == "" || seen[prefix] {
			continue
		}
		seen[prefix] = true
		chain = append(chain, prefix)
	}
	return chain
}

// stripVersion turns "qwen3" into "qwen" and "llama3.1" into "llama".
func stripVersion(name string) string {
	return strings.TrimSuffix(versionSuffix.ReplaceAllString(name, ""), "-")
}

func pickBest(candidates []entities.LogoCandidate) entities.LogoCandidate {
	best := candidates[0]
	for _, candidate := range candidates[1:] {
		if candidate.Better(best) {
			best = candidate
		}
	}
	return best
}

func escapeGlob(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`)
	return replacer.Replace(s)
}
