package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL     = "https://hub.docker.com"
	DefaultStageURL    = "https://hub-stage.docker.com"
	DefaultTimeout     = 30 * time.Second
	DefaultMaxAttempts = 3
	MaxAttemptsLimit   = 10
	DefaultBaseDelay   = 2 * time.Second
	DefaultLogosDir    = "logos"
)

// Settings is the top-level configuration for hubsync.
type Settings struct {
	Hub  HubSettings  `yaml:"hub"`
	Auth AuthSettings `yaml:"auth"`
	Logo LogoSettings `yaml:"logo"`
}

// HubSettings describes the Docker Hub endpoints.
type HubSettings struct {
	BaseURL  string `yaml:"base_url"`
	StageURL string `yaml:"stage_url"`
}

// AuthSettings holds the login retry policy.
type AuthSettings struct {
	MaxAttempts int           `yaml:"max_attempts"`
	BaseDelay   time.Duration `yaml:"base_delay"`
}

// LogoSettings holds the logo resolution defaults.
type LogoSettings struct {
	Mode      string `yaml:"mode"` // "explicit" or "heuristic"
	Directory string `yaml:"directory"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Hub: HubSettings{
			BaseURL:  DefaultBaseURL,
			StageURL: DefaultStageURL,
		},
		Auth: AuthSettings{
			MaxAttempts: DefaultMaxAttempts,
			BaseDelay:   DefaultBaseDelay,
		},
		Logo: LogoSettings{
			Mode:      string(ResolutionExplicit),
			Directory: DefaultLogosDir,
		},
	}
}

// NewSettings reads and parses a configuration file, expanding environment
// variables and filling the gaps with defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}
	settings.expandEnv()
	settings.fillDefaults()

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// LoadSettings loads the given file, or the first one found in the default
// locations, or falls back to the defaults when there is none.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debug("No config file found, using defaults")
			return DefaultSettings(), nil //nolint:nilerr // a missing config file is not an error
		}
		path = found
	}

	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".hubsync.yaml",
		".hubsync.yml",
		"hubsync.yaml",
		"hubsync.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// BaseURLFor returns the staging URL when stage is set.
func (s *Settings) BaseURLFor(stage bool) string {
	if stage {
		return s.Hub.StageURL
	}
	return s.Hub.BaseURL
}

// Validate checks the values a config file may have broken.
func (s *Settings) Validate() error {
	if s.Auth.MaxAttempts < 1 || s.Auth.MaxAttempts > MaxAttemptsLimit {
		return fmt.Errorf("auth.max_attempts must be between 1 and %d, got %d",
			MaxAttemptsLimit, s.Auth.MaxAttempts)
	}
	if s.Auth.BaseDelay < 0 {
		return fmt.Errorf("auth.base_delay must not be negative, got %s", s.Auth.BaseDelay)
	}
	if _, err := ParseResolutionMode(s.Logo.Mode); err != nil {
		return fmt.Errorf("logo.mode: %w", err)
	}
	return nil
}

func (s *Settings) fillDefaults() {
	defaults := DefaultSettings()
	if s.Hub.BaseURL == "" {
		s.Hub.BaseURL = defaults.Hub.BaseURL
	}
	if s.Hub.StageURL == "" {
		s.Hub.StageURL = defaults.Hub.StageURL
	}
	if s.Logo.Mode == "" {
		s.Logo.Mode = defaults.Logo.Mode
	}
	if s.Logo.Directory == "" {
		s.Logo.Directory = defaults.Logo.Directory
	}
}

// expandEnv resolves ${VAR} placeholders in the string values.
func (s *Settings) expandEnv() {
	for _, field := range []*string{
		&s.Hub.BaseURL,
		&s.Hub.StageURL,
		&s.Logo.Mode,
		&s.Logo.Directory,
	} {
		*field = expandEnvVars(*field)
	}
}

func expandEnvVars(value string) string {
	return envVarPattern.ReplaceAllStringFunc(value, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
