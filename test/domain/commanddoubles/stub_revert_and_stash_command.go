//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitrevert/internal/domain/commands"
	"github.com/rios0rios0/gitrevert/internal/domain/entities"
)

// StubRevertAndStashCommand is a stub implementation of commands.RevertAndStash.
type StubRevertAndStashCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *entities.BatchResult
	LastOpts         commands.StashOptions
}

var _ commands.RevertAndStash = (*StubRevertAndStashCommand)(nil)

func (s *StubRevertAndStashCommand) Execute(
	_ context.Context,
	opts commands.StashOptions,
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
