package controllers

import "os"

const (
	envHubUser  = "HUB_USER"
	envHubPAT   = "HUB_PAT"
	envHubToken = "DOCKER_HUB_TOKEN"
)

// EnvReader defines an interface for environment variable access, so the
// controllers are the only place the process environment is read.
type EnvReader interface {
	Getenv(key string) string
}

// OSEnvReader implements EnvReader using the standard os package.
type OSEnvReader struct{}

// NewOSEnvReader creates a new OSEnvReader.
func NewOSEnvReader() *OSEnvReader {
	return &OSEnvReader{}
}

// Getenv returns the value of the environment variable named by the key.
func (*OSEnvReader) Getenv(key string) string {
	return os.Getenv(key)
}
