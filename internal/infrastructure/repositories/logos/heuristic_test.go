//go:build unit

package logos_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
	"github.com/rios0rios0/hubsync/internal/infrastructure/repositories/logos"
)

func TestHeuristicResolverResolve(t *testing.T) {
	t.Parallel()

	t.Run("should prefer the svg over larger raster files", func(t *testing.T) {
		t.Parallel()

		// given
		logosDir := t.TempDir()
		touch(t, logosDir, "qwen-logo-280x.png", "png")
		svg := touch(t, logosDir, "qwen-logo.svg", "<svg/>")
		touch(t, logosDir, "qwen-logo-32x.png", "png")
		resolver := logos.NewHeuristicResolver()

		// when
		candidate, err := resolver.Resolve(context.Background(), entities.LogoRequest{
			Repository: entities.Repository{Namespace: "ai", Name: "qwen3"},
			LogosDir:   logosDir,
		})

		// then
		require.NoError(t, err)
		require.NotNil(t, candidate)
		assert.Equal(t, svg, candidate.Path)
	})

	t.Run("should fall back to the first hyphen segment and pick the largest size", func(t *testing.T) {
		t.Parallel()

		// given
		logosDir := t.TempDir()
		touch(t, logosDir, "granite-logo-32x.png", "png")
		best := touch(t, logosDir, "granite-logo-120x.png", "png")
		touch(t, logosDir, "gemma-logo-280x.png", "png")
		resolver := logos.NewHeuristicResolver()

		// when
		candidate, err := resolver.Resolve(context.Background(), entities.LogoRequest{
			Repository: entities.Repository{Namespace: "ai", Name: "granite-4.0-h-micro"},
			LogosDir:   logosDir,
		})

		// then
		require.NoError(t, err)
		require.NotNil(t, candidate)
		assert.Equal(t, best, candidate.Path)
		assert.Equal(t, 120, candidate.SizeHint)
	})

	t.Run("should stop at the first prefix with matches", func(t *testing.T) {
		t.Parallel()

		// given
		logosDir := t.TempDir()
		override := touch(t, logosDir, "alibaba-logo.png", "png")
		touch(t, logosDir, "qwen-logo.svg", "<svg/>")
		resolver := logos.NewHeuristicResolver()

		// when
		candidate, err := resolver.Resolve(context.Background(), entities.LogoRequest{
			Repository: entities.Repository{Namespace: "ai", Name: "qwen3"},
			LogosDir:   logosDir,
			Prefix:     "alibaba",
		})

		// then
		require.NoError(t, err)
		require.NotNil(t, candidate)
		assert.Equal(t, override, candidate.Path)
	})

	t.Run("should ignore directories and return nil without matches", func(t *testing.T) {
		t.Parallel()

		// given
		logosDir := t.TempDir()
		touch(t, filepath.Join(logosDir, "smollm-assets"), "readme.txt", "x")
		resolver := logos.NewHeuristicResolver()

		// when
		candidate, err := resolver.Resolve(context.Background(), entities.LogoRequest{
			Repository: entities.Repository{Namespace: "ai", Name: "smollm2"},
			LogosDir:   logosDir,
		})

		// then
		require.NoError(t, err)
		assert.Nil(t, candidate)
	})
}

func TestPrefixChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		repo     string
		override string
		want     []string
	}{
		{name: "versioned name", repo: "qwen3", want: []string{"qwen3", "qwen"}},
		{name: "override goes first", repo: "qwen3", override: "alibaba", want: []string{"alibaba", "qwen3", "qwen"}},
		{
			name: "hyphenated name",
			repo: "granite-4.0-h-micro",
			want: []string{"granite-4.0-h-micro", "granite"},
		},
		{name: "dotted version", repo: "llama3.1", want: []string{"llama3.1", "llama"}},
		{name: "no version", repo: "mistral", want: []string{"mistral"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given, when
			got := logos.PrefixChain(tt.repo, tt.override)

			// then
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "qwen", logos.StripVersion("qwen3"))
	assert.Equal(t, "llama", logos.StripVersion("llama3.1"))
	assert.Equal(t, "phi", logos.StripVersion("phi-4"))
	assert.Equal(t, "mistral", logos.StripVersion("mistral"))
}
