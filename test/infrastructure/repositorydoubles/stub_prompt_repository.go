//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitrevert/internal/domain/repositories"
)

// StubPromptRepository answers prompts with canned values.
type StubPromptRepository struct {
	// --- Confirm ---
	ConfirmAnswer bool
	ConfirmErr    error
	Questions     []string

	// --- AskMessage ---
	Message      string
	MessageOK    bool
	AskErr       error
	AskedPrompts []string
}

var _ repositories.PromptRepository = (*StubPromptRepository)(nil)

func (s *StubPromptRepository) Confirm(_ context.Context, question string) (bool, error) {
	s.Questions = append(s.Questions, question)
	return s.ConfirmAnswer, s.ConfirmErr
}

func (s *StubPromptRepository) AskMessage(_ context.Context, prompt string) (string, bool, error) {
	s.AskedPrompts = append(s.AskedPrompts, prompt)
	return s.Message, s.MessageOK, s.AskErr
}
