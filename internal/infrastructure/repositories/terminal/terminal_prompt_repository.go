package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/rios0rios0/gitrevert/internal/domain/repositories"
)

// PromptRepository asks questions on a terminal, one line per answer.
type PromptRepository struct {
	in  *bufio.Reader
	out io.Writer
}

var _ repositories.PromptRepository = (*PromptRepository)(nil)

// NewPromptRepository reads answers from stdin and writes questions to stderr,
// leaving stdout to the command's report.
func NewPromptRepository() *PromptRepository {
	return NewPromptRepositoryWithIO(os.Stdin, os.Stderr)
}

// NewPromptRepositoryWithIO creates a PromptRepository on arbitrary streams.
func NewPromptRepositoryWithIO(in io.Reader, out io.Writer) *PromptRepository {
	return &PromptRepository{in: bufio.NewReader(in), out: out}
}

// Confirm accepts "y" and "yes" in any case. End of input means no.
func (it *PromptRepository) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if _, err := color.New(color.FgYellow).Fprintf(it.out, "%s [y/N]: ", question); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	answer, err := it.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// AskMessage returns the line as typed. End of input before any character
// is a cancellation; an empty line is an empty message.
func (it *PromptRepository) AskMessage(ctx context.Context, prompt string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	if _, err := color.New(color.FgCyan).Fprint(it.out, prompt); err != nil {
		return "", false, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := it.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		return "", false, err
	}
	return line, true, nil
}

// readLine returns the next line without its terminator. A last line lacking
// a newline is still returned; io.EOF is reported only when nothing was read.
func (it *PromptRepository) readLine() (string, error) {
	line, err := it.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
