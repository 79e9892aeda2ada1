//go:build unit

package commands_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitrevert/internal/domain/commands"
	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/test/infrastructure/repositorydoubles"
)

func newStashCommand(
	git *repositorydoubles.SpyGitRepository,
	prompt *repositorydoubles.StubPromptRepository,
) *commands.RevertAndStashCommand {
	events := &repositorydoubles.SpyEventPublisher{}
	classifier := commands.NewPresenceClassifier(git, events)
	rewriter := commands.NewStashRewriter(git, repositorydoubles.NewSpySnapshotRepository(), classifier, events)
	return commands.NewRevertAndStashCommand(commands.NewLocator(git), rewriter, git, prompt, events)
}

// newStashRepository prepares a root where a.txt and b.txt changed in HEAD
// and carry uncommitted edits.
func newStashRepository(t *testing.T) (string, *repositorydoubles.SpyGitRepository) {
	t.Helper()

	root := t.TempDir()
	git := repositorydoubles.NewSpyGitRepository(root)
	for _, name := range []string{"a.txt", "b.txt"} {
		git.WithFile(entities.RevisionCurrent, name, "Modified content").
			WithFile(entities.RevisionPrevious, name, "Initial content")
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("Uncommitted changes"), 0o644))
	}
	return root, git
}

func TestRevertAndStashCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should fail the invocation when no path is given", func(t *testing.T) {
		t.Parallel()

		// given
		git := repositorydoubles.NewSpyGitRepository(t.TempDir())
		prompt := &repositorydoubles.StubPromptRepository{}

		// when
		_, err := newStashCommand(git, prompt).Execute(t.Context(), commands.StashOptions{})

		// then
		require.ErrorIs(t, err, entities.ErrNoPaths)
		assert.Empty(t, prompt.AskedPrompts)
	})

	t.Run("should ask for the message once for the whole batch", func(t *testing.T) {
		t.Parallel()

		// given
		root, git := newStashRepository(t)
		prompt := &repositorydoubles.StubPromptRepository{Message: "wip", MessageOK: true}

		// when
		result, err := newStashCommand(git, prompt).Execute(t.Context(), commands.StashOptions{
			Paths: []string{filepath.Join(root, "a.txt"), filepath.Join(root, "b.txt")},
		})

		// then
		require.NoError(t, err)
		assert.Len(t, prompt.AskedPrompts, 1)
		assert.Equal(t, 2, result.Count(entities.OutcomeStashed))
		assert.Equal(t, []string{"wip", "wip"}, git.StashMessages)
	})

	t.Run("should use the given message without prompting, even when empty", func(t *testing.T) {
		t.Parallel()

		// given
		root, git := newStashRepository(t)
		prompt := &repositorydoubles.StubPromptRepository{}

		// when
		result, err := newStashCommand(git, prompt).Execute(t.Context(), commands.StashOptions{
			Paths:      []string{filepath.Join(root, "a.txt")},
			MessageSet: true,
		})

		// then
		require.NoError(t, err)
		assert.Empty(t, prompt.AskedPrompts)
		assert.Equal(t, 1, result.Processed())
		assert.Equal(t, []string{""}, git.StashMessages)
	})

	t.Run("should leave the repository untouched when the prompt is cancelled", func(t *testing.T) {
		t.Parallel()

		// given
		root, git := newStashRepository(t)
		prompt := &repositorydoubles.StubPromptRepository{MessageOK: false}

		// when
		result, err := newStashCommand(git, prompt).Execute(t.Context(), commands.StashOptions{
			Paths: []string{filepath.Join(root, "a.txt")},
		})

		// then
		require.ErrorIs(t, err, entities.ErrCancelled)
		assert.Nil(t, result)
		assert.Empty(t, git.Calls)
		data, readErr := os.ReadFile(filepath.Join(root, "a.txt"))
		require.NoError(t, readErr)
		assert.Equal(t, "Uncommitted changes", string(data))
	})

	t.Run("should propagate a broken prompt", func(t *testing.T) {
		t.Parallel()

		// given
		root, git := newStashRepository(t)
		prompt := &repositorydoubles.StubPromptRepository{AskErr: errors.New("tty gone")}

		// when
		_, err := newStashCommand(git, prompt).Execute(t.Context(), commands.StashOptions{
			Paths: []string{filepath.Join(root, "a.txt")},
		})

		// then
		require.ErrorContains(t, err, "tty gone")
		assert.Empty(t, git.Mutations())
	})

	t.Run("should refuse to run on a git too old for scoped stashes", func(t *testing.T) {
		t.Parallel()

		// given
		root, git := newStashRepository(t)
		git.GitVersion = "v2.12.5"
		prompt := &repositorydoubles.StubPromptRepository{Message: "wip", MessageOK: true}

		// when
		_, err := newStashCommand(git, prompt).Execute(t.Context(), commands.StashOptions{
			Paths: []string{filepath.Join(root, "a.txt")},
		})

		// then
		require.ErrorIs(t, err, entities.ErrUnsupportedGitVersion)
		assert.Empty(t, prompt.AskedPrompts)
		assert.Empty(t, git.Calls)
	})

	t.Run("should propagate a failure to detect the git version", func(t *testing.T) {
		t.Parallel()

		// given
		root, git := newStashRepository(t)
		git.VersionErr = errors.New("git not found")

		// when
		_, err := newStashCommand(git, &repositorydoubles.StubPromptRepository{}).Execute(
			t.Context(),
			commands.StashOptions{Paths: []string{filepath.Join(root, "a.txt")}, MessageSet: true},
		)

		// then
		require.ErrorContains(t, err, "git not found")
	})

	t.Run("should isolate a failing file from the rest of the batch", func(t *testing.T) {
		t.Parallel()

		// given
		root, git := newStashRepository(t)
		prompt := &repositorydoubles.StubPromptRepository{}

		// when
		result, err := newStashCommand(git, prompt).Execute(t.Context(), commands.StashOptions{
			Paths: []string{
				filepath.Join(root, "a.txt"),
				filepath.Join(root, "nowhere.txt"),
				filepath.Join(root, "b.txt"),
			},
			Message:    "wip",
			MessageSet: true,
		})

		// then
		require.NoError(t, err)
		require.Len(t, result.Outcomes, 3)
		assert.Equal(t, entities.OutcomeStashed, result.Outcomes[0].Status)
		assert.Equal(t, entities.OutcomeFailed, result.Outcomes[1].Status)
		require.ErrorIs(t, result.Outcomes[1].Err, entities.ErrNothingToPreserve)
		assert.Equal(t, entities.OutcomeStashed, result.Outcomes[2].Status)
	})
}
