//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/hubsync/internal/domain/commands"
)

// StubTokenCommand is a stub implementation of commands.Token.
type StubTokenCommand struct {
	ExecuteCallCount int
	Token            string
	ExecuteErr       error
	LastOpts         commands.TokenOptions
}

var _ commands.Token = (*StubTokenCommand)(nil)

func (s *StubTokenCommand) Execute(
	_ context.Context,
	opts commands.TokenOptions,
) (string, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Token, s.ExecuteErr
}
