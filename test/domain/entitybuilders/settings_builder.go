//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/hubsync/internal/domain/entities"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	baseURL     string
	stageURL    string
	maxAttempts int
	baseDelay   time.Duration
	logoMode    string
	logosDir    string
}

// NewSettingsBuilder creates a new settings builder with sensible defaults.
func NewSettingsBuilder() *SettingsBuilder {
	b := &SettingsBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.setDefaults()
	return b
}

// WithBaseURL sets the production base URL.
func (b *SettingsBuilder) WithBaseURL(url string) *SettingsBuilder {
	b.baseURL = url
	return b
}

// WithStageURL sets the staging base URL.
func (b *SettingsBuilder) WithStageURL(url string) *SettingsBuilder {
	b.stageURL = url
	return b
}

// WithMaxAttempts sets the login attempt limit.
func (b *SettingsBuilder) WithMaxAttempts(attempts int) *SettingsBuilder {
	b.maxAttempts = attempts
	return b
}

// WithBaseDelay sets the first retry delay.
func (b *SettingsBuilder) WithBaseDelay(delay time.Duration) *SettingsBuilder {
	b.baseDelay = delay
	return b
}

// WithLogoMode sets the default logo resolution mode.
func (b *SettingsBuilder) WithLogoMode(mode entities.ResolutionMode) *SettingsBuilder {
	b.logoMode = string(mode)
	return b
}

// WithLogosDir sets the logos directory.
func (b *SettingsBuilder) WithLogosDir(dir string) *SettingsBuilder {
	b.logosDir = dir
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		Hub: entities.HubSettings{
			BaseURL:  b.baseURL,
			StageURL: b.stageURL,
		},
		Auth: entities.AuthSettings{
			MaxAttempts: b.maxAttempts,
			BaseDelay:   b.baseDelay,
		},
		Logo: entities.LogoSettings{
			Mode:      b.logoMode,
			Directory: b.logosDir,
		},
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.setDefaults()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		baseURL:     b.baseURL,
		stageURL:    b.stageURL,
		maxAttempts: b.maxAttempts,
		baseDelay:   b.baseDelay,
		logoMode:    b.logoMode,
		logosDir:    b.logosDir,
	}
}

func (b *SettingsBuilder) setDefaults() {
	b.baseURL = "https://hub.example.test"
	b.stageURL = "https://hub-stage.example.test"
	b.maxAttempts = entities.DefaultMaxAttempts
	b.baseDelay = time.Millisecond
	b.logoMode = string(entities.ResolutionExplicit)
	b.logosDir = entities.DefaultLogosDir
}
