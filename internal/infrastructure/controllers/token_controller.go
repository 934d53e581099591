package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/hubsync/internal/domain/commands"
	"github.com/rios0rios0/hubsync/internal/domain/entities"
)

// TokenController handles the "token" subcommand.
type TokenController struct {
	command commands.Token
	env     EnvReader
}

// NewTokenController creates a new TokenController.
func NewTokenController(command commands.Token, env EnvReader) *TokenController {
	return &TokenController{command: command, env: env}
}

// GetBind returns the Cobra command metadata for the token controller.
func (it *TokenController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "token",
		Short: "Get a Docker Hub bearer token",
		Long: `Log in to Docker Hub with HUB_USER and HUB_PAT and print the bearer token.

The token is the only thing written to stdout, so it can be captured with
  export DOCKER_HUB_TOKEN="$(hubsync token)"
Transient server errors (500, 502, 503, 504) and network errors are retried
with exponential backoff.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags adds the token-specific flags to the given Cobra command.
func (it *TokenController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("stage", false, "Use the Docker Hub staging environment")
}

// Execute logs in and prints the token.
func (it *TokenController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	stage, _ := cmd.Flags().GetBool("stage")

	token, err := it.command.Execute(ctx, commands.TokenOptions{
		Credential: entities.Credential{
			Username: it.env.Getenv(envHubUser),
			Password: it.env.Getenv(envHubPAT),
		},
		BaseURL:     settings.BaseURLFor(stage),
		MaxAttempts: settings.Auth.MaxAttempts,
		BaseDelay:   settings.Auth.BaseDelay,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
