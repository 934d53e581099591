package controllers

import (
	"github.com/rios0rios0/hubsync/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Environment access lives at this layer only
	if err := container.Provide(func() EnvReader {
		return NewOSEnvReader()
	}); err != nil {
		return err
	}

	// Register controller constructors
	if err := container.Provide(NewTokenController); err != nil {
		return err
	}
	if err := container.Provide(NewDescriptionController); err != nil {
		return err
	}
	if err := container.Provide(NewLogoController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	tokenController *TokenController,
	descriptionController *DescriptionController,
	logoController *LogoController,
) *[]entities.Controller {
	return &[]entities.Controller{
		tokenController,
		descriptionController,
		logoController,
	}
}
