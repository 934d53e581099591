//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/hubsync/internal/domain/commands"
)

// StubDescriptionCommand is a stub implementation of commands.Description.
type StubDescriptionCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.DescriptionOptions
}

var _ commands.Description = (*StubDescriptionCommand)(nil)

func (s *StubDescriptionCommand) Execute(
	_ context.Context,
	opts commands.DescriptionOptions,
) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
