package entities

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

const defaultContentType = "application/octet-stream"

// ResolutionMode selects how the logo file for a repository is found.
type ResolutionMode string

const (
	// ResolutionExplicit reads the logo file name from a match file written by
	// the logo-resolver step of the workflow.
	ResolutionExplicit ResolutionMode = "explicit"
	// ResolutionHeuristic matches files in the logos directory by name prefix.
	ResolutionHeuristic ResolutionMode = "heuristic"
)

// ParseResolutionMode accepts "explicit" or "heuristic" in any case.
func ParseResolutionMode(raw string) (ResolutionMode, error) {
	switch mode := ResolutionMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case ResolutionExplicit, ResolutionHeuristic:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown logo resolution mode %q (expected %q or %q)",
			raw, ResolutionExplicit, ResolutionHeuristic)
	}
}

// sizeHints are the size markers found in logo file names, largest first.
//
//nolint:gochecknoglobals // read-only lookup table
var sizeHints = []struct {
	marker string
	size   int
}{
	{marker: "280x", size: 280},
	{marker: "120x", size: 120},
	{marker: "32x", size: 32},
}

// LogoCandidate is a logo file chosen for upload.
type LogoCandidate struct {
	Path        string
	ContentType string
	SVG         bool
	SizeHint    int // 0 when the file name carries no size marker
}

// NewLogoCandidate infers the content type, format and size hint from the path.
func NewLogoCandidate(path string) LogoCandidate {
	base := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(base))

	return LogoCandidate{
		Path:        path,
		ContentType: ContentTypeFor(path),
		SVG:         ext == ".svg",
		SizeHint:    sizeHintFor(base),
	}
}

// FileName is the base name of the candidate path.
func (c LogoCandidate) FileName() string {
	return filepath.Base(c.Path)
}

// Better reports whether c ranks above other: SVG first, then the larger size
// hint, then the lexicographically greater file name.
func (c LogoCandidate) Better(other LogoCandidate) bool {
	if c.SVG != other.SVG {
		return c.SVG
	}
	if c.SizeHint != other.SizeHint {
		return c.SizeHint > other.SizeHint
	}
	return c.FileName() > other.FileName()
}

// ContentTypeFor maps a file extension to a media type, without parameters.
func ContentTypeFor(path string) string {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if contentType == "" {
		return defaultContentType
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		return mediaType
	}
	return contentType
}

func sizeHintFor(name string) int {
	for _, hint := range sizeHints {
		if strings.Contains(name, hint.marker) {
			return hint.size
		}
	}
	return 0
}

// LogoRequest carries the inputs of one logo resolution.
type LogoRequest struct {
	Repository Repository
	LogosDir   string
	MatchFile  string // explicit mode only; may be empty
	Prefix     string // heuristic mode only; may be empty
}

// LogoResult is the outcome of the logo command.
type LogoResult struct {
	Skipped   bool
	Candidate *LogoCandidate
}
