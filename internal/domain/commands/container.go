package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewTokenCommand); err != nil {
		return err
	}
	if err := container.Provide(NewDescriptionCommand); err != nil {
		return err
	}
	if err := container.Provide(NewLogoCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *TokenCommand) Token {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *DescriptionCommand) Description {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *LogoCommand) Logo {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
