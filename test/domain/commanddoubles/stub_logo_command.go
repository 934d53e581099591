//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/hubsync/internal/domain/commands"
	"github.com/rios0rios0/hubsync/internal/domain/entities"
)

// StubLogoCommand is a stub implementation of commands.Logo.
type StubLogoCommand struct {
	ExecuteCallCount int
	Result           entities.LogoResult
	ExecuteErr       error
	LastOpts         commands.LogoOptions
}

var _ commands.Logo = (*StubLogoCommand)(nil)

func (s *StubLogoCommand) Execute(
	_ context.Context,
	opts commands.LogoOptions,
) (entities.LogoResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Result, s.ExecuteErr
}
