package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/hubsync/internal/domain/commands"
	"github.com/rios0rios0/hubsync/internal/domain/entities"
)

// LogoController handles the "logo" subcommand.
type LogoController struct {
	command commands.Logo
	env     EnvReader
}

// NewLogoController creates a new LogoController.
func NewLogoController(command commands.Logo, env EnvReader) *LogoController {
	return &LogoController{command: command, env: env}
}

// GetBind returns the Cobra command metadata for the logo controller.
func (it *LogoController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "logo <namespace> <repository> [logo_match_file | logo_prefix]",
		Short: "Upload the repository logo",
		Long: `Find a logo for a Docker Hub repository and upload it to the media service.

Resolution modes:
  explicit   the optional argument is a match file holding a logo file name
             (looked up in the logos directory, then the working directory);
             an empty file or "none" means there is no logo
  heuristic  logos are matched by file name prefix; the optional argument
             overrides the first prefix tried

When no logo is found the upload is skipped and the command succeeds.
Requires DOCKER_HUB_TOKEN.`,
		Args: cobra.RangeArgs(2, 3), //nolint:mnd // namespace, repository, optional input
	}
}

// AddFlags adds the logo-specific flags to the given Cobra command.
func (it *LogoController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", "", "Logo resolution mode: explicit or heuristic (default from config, else explicit)")
	cmd.Flags().String("match-file", "", "Match file with the logo file name (explicit mode)")
	cmd.Flags().String("prefix", "", "Logo file name prefix override (heuristic mode)")
	cmd.Flags().String("logos-dir", "", "Directory holding the logo files (default from config, else logos)")
}

// Execute resolves and uploads the logo.
func (it *LogoController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	repo, err := entities.NewRepository(args[0], args[1])
	if err != nil {
		return err
	}

	rawMode, _ := cmd.Flags().GetString("mode")
	if rawMode == "" {
		rawMode = settings.Logo.Mode
	}
	mode, err := entities.ParseResolutionMode(rawMode)
	if err != nil {
		return err
	}

	logosDir, _ := cmd.Flags().GetString("logos-dir")
	if logosDir == "" {
		logosDir = settings.Logo.Directory
	}

	matchFile, _ := cmd.Flags().GetString("match-file")
	prefix, _ := cmd.Flags().GetString("prefix")
	if len(args) > 2 { //nolint:mnd // third positional argument
		switch mode {
		case entities.ResolutionExplicit:
			matchFile = args[2]
		case entities.ResolutionHeuristic:
			prefix = args[2]
		}
	}

	result, err := it.command.Execute(ctx, commands.LogoOptions{
		Repository: repo,
		Mode:       mode,
		MatchFile:  matchFile,
		Prefix:     prefix,
		LogosDir:   logosDir,
		Token:      it.env.Getenv(envHubToken),
		BaseURL:    settings.Hub.BaseURL,
	})
	if err != nil {
		return err
	}

	if result.Skipped {
		logger.Infof("Logo upload skipped for %s", repo)
	}
	return nil
}
