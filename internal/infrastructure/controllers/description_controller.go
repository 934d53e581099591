package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/hubsync/internal/domain/commands"
	"github.com/rios0rios0/hubsync/internal/domain/entities"
)

// DescriptionController handles the "description" subcommand.
type DescriptionController struct {
	command commands.Description
	env     EnvReader
}

// NewDescriptionController creates a new DescriptionController.
func NewDescriptionController(command commands.Description, env EnvReader) *DescriptionController {
	return &DescriptionController{command: command, env: env}
}

// GetBind returns the Cobra command metadata for the description controller.
func (it *DescriptionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "description <namespace> <repository> <model_card_path> <short_description_path>",
		Short: "Upload the repository description",
		Long: `Upload a model card as the full description and a short description file
as the short description of a Docker Hub repository.

The short description is cut to 100 characters. Requires DOCKER_HUB_TOKEN.`,
		Args: cobra.ExactArgs(4), //nolint:mnd // namespace, repository, two paths
	}
}

// AddFlags adds no flags; the description command only takes positional arguments.
func (it *DescriptionController) AddFlags(_ *cobra.Command) {}

// Execute validates the arguments and uploads the description.
func (it *DescriptionController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	repo, err := entities.NewRepository(args[0], args[1])
	if err != nil {
		return err
	}

	return it.command.Execute(ctx, commands.DescriptionOptions{
		Repository:    repo,
		ModelCardPath: args[2],
		ShortDescPath: args[3],
		Token:         it.env.Getenv(envHubToken),
		BaseURL:       settings.Hub.BaseURL,
	})
}
