//go:build unit

package commands_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/hubsync/internal/domain/commands"
	"github.com/rios0rios0/hubsync/internal/domain/entities"
	doubles "github.com/rios0rios0/hubsync/test/infrastructure/repositorydoubles"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func descriptionOptions(modelCard, shortDesc string) commands.DescriptionOptions {
	return commands.DescriptionOptions{
		Repository:    entities.Repository{Namespace: "ai", Name: "qwen3"},
		ModelCardPath: modelCard,
		ShortDescPath: shortDesc,
		Token:         "jwt-token",
		BaseURL:       "https://hub.example.test",
	}
}

func TestDescriptionCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should upload both descriptions", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		modelCard := writeFile(t, dir, "qwen3.md", "# Qwen3\n\nA model.\n")
		shortDesc := writeFile(t, dir, "short.txt", "  Qwen3 language models  \n")
		spy := &doubles.SpyHubRepository{}
		cmd := commands.NewDescriptionCommand(spy)

		// when
		err := cmd.Execute(context.Background(), descriptionOptions(modelCard, shortDesc))

		// then
		require.NoError(t, err)
		require.Len(t, spy.Descriptions, 1)
		assert.Equal(t, "Qwen3 language models", spy.Descriptions[0].Short)
		assert.Equal(t, "# Qwen3\n\nA model.\n", spy.Descriptions[0].Full)
		assert.Equal(t, []string{"jwt-token"}, spy.Tokens)
		assert.Equal(t, []string{"https://hub.example.test"}, spy.BaseURLs)
		assert.Equal(t, entities.Repository{Namespace: "ai", Name: "qwen3"}, spy.Repositories[0])
	})

	t.Run("should truncate a 150 character short description to 100", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		modelCard := writeFile(t, dir, "card.md", "# Card")
		shortDesc := writeFile(t, dir, "short.txt", strings.Repeat("a", 150))
		spy := &doubles.SpyHubRepository{}
		cmd := commands.NewDescriptionCommand(spy)

		// when
		err := cmd.Execute(context.Background(), descriptionOptions(modelCard, shortDesc))

		// then
		require.NoError(t, err)
		require.Len(t, spy.Descriptions, 1)
		assert.Len(t, spy.Descriptions[0].Short, entities.MaxShortDescriptionLength)
	})

	t.Run("should fail with missing file before any network call", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		shortDesc := writeFile(t, dir, "short.txt", "short")
		missing := filepath.Join(dir, "missing.md")
		spy := &doubles.SpyHubRepository{}
		cmd := commands.NewDescriptionCommand(spy)

		// when
		err := cmd.Execute(context.Background(), descriptionOptions(missing, shortDesc))

		// then
		require.ErrorIs(t, err, entities.ErrMissingFile)
		var fileErr *entities.FileError
		require.ErrorAs(t, err, &fileErr)
		assert.Equal(t, missing, fileErr.Path)
		assert.Empty(t, spy.Descriptions)
	})

	t.Run("should fail with empty file naming the short description path", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		modelCard := writeFile(t, dir, "card.md", "# Card")
		shortDesc := writeFile(t, dir, "short.txt", " \n\t\n")
		spy := &doubles.SpyHubRepository{}
		cmd := commands.NewDescriptionCommand(spy)

		// when
		err := cmd.Execute(context.Background(), descriptionOptions(modelCard, shortDesc))

		// then
		require.ErrorIs(t, err, entities.ErrEmptyFile)
		assert.Contains(t, err.Error(), shortDesc)
		assert.Empty(t, spy.Descriptions)
	})

	t.Run("should fail without token after validating files", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		opts := descriptionOptions(
			writeFile(t, dir, "card.md", "# Card"),
			writeFile(t, dir, "short.txt", "short"),
		)
		opts.Token = ""
		spy := &doubles.SpyHubRepository{}
		cmd := commands.NewDescriptionCommand(spy)

		// when
		err := cmd.Execute(context.Background(), opts)

		// then
		require.ErrorIs(t, err, entities.ErrMissingToken)
		assert.Empty(t, spy.Descriptions)
	})

	t.Run("should return the publish error from the hub", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		publishErr := entities.NewPublishError(403, `{"detail":"forbidden"}`)
		spy := &doubles.SpyHubRepository{UpdateDescriptionErr: publishErr}
		cmd := commands.NewDescriptionCommand(spy)

		// when
		err := cmd.Execute(context.Background(), descriptionOptions(
			writeFile(t, dir, "card.md", "# Card"),
			writeFile(t, dir, "short.txt", "short"),
		))

		// then
		var got *entities.PublishError
		require.True(t, errors.As(err, &got))
		assert.Equal(t, 403, got.StatusCode)
		assert.Len(t, spy.Descriptions, 1)
	})

	t.Run("should reject an empty namespace", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyHubRepository{}
		cmd := commands.NewDescriptionCommand(spy)
		opts := descriptionOptions("card.md", "short.txt")
		opts.Repository.Namespace = ""

		// when
		err := cmd.Execute(context.Background(), opts)

		// then
		require.Error(t, err)
		assert.Empty(t, spy.Descriptions)
	})
}

func TestReadDescriptionFiles(t *testing.T) {
	t.Parallel()

	t.Run("should keep the raw content of non-empty files", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		card := writeFile(t, dir, "card.md", "\n# Title\n")
		short := writeFile(t, dir, "short.txt", " short ")

		// when
		contents, err := commands.ReadDescriptionFiles(card, short)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"\n# Title\n", " short "}, contents)
	})

	t.Run("should report a missing file before an empty one", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		emptyCard := writeFile(t, dir, "card.md", "  \n")
		missingShort := filepath.Join(dir, "short.txt")

		// when
		_, err := commands.ReadDescriptionFiles(emptyCard, missingShort)

		// then
		var fileErr *entities.FileError
		require.ErrorAs(t, err, &fileErr)
		assert.Equal(t, entities.ErrMissingFile, fileErr.Kind)
		assert.Equal(t, missingShort, fileErr.Path)
	})
}
