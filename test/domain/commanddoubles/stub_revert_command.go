//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitrevert/internal/domain/commands"
	"github.com/rios0rios0/gitrevert/internal/domain/entities"
)

// StubRevertCommand is a stub implementation of commands.Revert.
type StubRevertCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *entities.BatchResult
	LastOpts         commands.RevertOptions
}

var _ commands.Revert = (*StubRevertCommand)(nil)

func (s *StubRevertCommand) Execute(
	_ context.Context,
	opts commands.RevertOptions,
) (*entities.BatchResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if s.Result == nil {
		return &entities.BatchResult{}, nil
	}
	return s.Result, nil
}
