package repositories

import "context"

// PromptRepository is the interactive collaborator that asks the user questions.
type PromptRepository interface {
	// Confirm asks a yes/no question. Anything but an explicit yes is a no.
	Confirm(ctx context.Context, question string) (bool, error)

	// AskMessage asks for a free-form line. ok is false when the user
	// cancelled, which is different from answering with an empty string.
	AskMessage(ctx context.Context, prompt string) (message string, ok bool, err error)
}
