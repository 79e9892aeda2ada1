//go:build unit

package commands_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gitrevert/internal/domain/commands"
	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/test/domain/entitybuilders"
	"github.com/rios0rios0/gitrevert/test/infrastructure/repositorydoubles"
)

func TestPresenceClassifier_Classify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		inCurrent  bool
		inPrevious bool
		expected   entities.PresenceState
	}{
		{name: "should classify a file in both commits", inCurrent: true, inPrevious: true, expected: entities.PresentInBoth},
		{name: "should classify a file added by HEAD", inCurrent: true, expected: entities.PresentOnlyInCurrent},
		{name: "should classify a file deleted by HEAD", inPrevious: true, expected: entities.PresentOnlyInPrevious},
		{name: "should classify a file unknown to both commits", expected: entities.PresentInNeither},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			loc := entitybuilders.NewFileLocationBuilder().WithRelativePath("a.txt").BuildFileLocation()
			git := repositorydoubles.NewSpyGitRepository(loc.Repository.RootPath)
			if tt.inCurrent {
				git.WithFile(entities.RevisionCurrent, "a.txt", "current")
			}
			if tt.inPrevious {
				git.WithFile(entities.RevisionPrevious, "a.txt", "previous")
			}
			events := &repositorydoubles.SpyEventPublisher{}
			classifier := commands.NewPresenceClassifier(git, events)

			// when
			state := classifier.Classify(t.Context(), loc)

			// then
			assert.Equal(t, tt.expected, state)
			assert.Equal(t, []string{"read HEAD a.txt", "read HEAD~1 a.txt"}, git.Calls)
			event, found := events.Find(entities.EventPresenceClassified)
			require.True(t, found)
			assert.Equal(t, tt.expected.String(), event.Data["state"])
		})
	}

	t.Run("should treat a missing parent revision as absent", func(t *testing.T) {
		t.Parallel()

		// given
		loc := entitybuilders.NewFileLocationBuilder().WithRelativePath("a.txt").BuildFileLocation()
		git := repositorydoubles.NewSpyGitRepository(loc.Repository.RootPath).
			WithFile(entities.RevisionCurrent, "a.txt", "root commit")
		git.ReadErrs[entities.RevisionPrevious] = fmt.Errorf("%w: revision HEAD~1", entities.ErrNotFoundAtRevision)
		events := &repositorydoubles.SpyEventPublisher{}
		classifier := commands.NewPresenceClassifier(git, events)

		// when
		state := classifier.Classify(t.Context(), loc)

		// then
		assert.Equal(t, entities.PresentOnlyInCurrent, state)
		_, probeFailed := events.Find(entities.EventProbeFailed)
		assert.False(t, probeFailed)
	})

	t.Run("should treat an unreadable revision as absent and report it", func(t *testing.T) {
		t.Parallel()

		// given
		loc := entitybuilders.NewFileLocationBuilder().WithRelativePath("a.txt").BuildFileLocation()
		git := repositorydoubles.NewSpyGitRepository(loc.Repository.RootPath).
			WithFile(entities.RevisionPrevious, "a.txt", "previous")
		git.ReadErrs[entities.RevisionCurrent] = errors.New("corrupt object")
		events := &repositorydoubles.SpyEventPublisher{}
		classifier := commands.NewPresenceClassifier(git, events)

		// when
		state := classifier.Classify(t.Context(), loc)

		// then
		assert.Equal(t, entities.PresentOnlyInPrevious, state)
		event, found := events.Find(entities.EventProbeFailed)
		require.True(t, found)
		assert.Equal(t, "HEAD", event.Data["revision"])
		assert.Equal(t, "corrupt object", event.Data["error"])
	})

	t.Run("should work without an event publisher", func(t *testing.T) {
		t.Parallel()

		// given
		loc := entitybuilders.NewFileLocationBuilder().BuildFileLocation()
		git := repositorydoubles.NewSpyGitRepository(loc.Repository.RootPath)
		classifier := commands.NewPresenceClassifier(git, nil)

		// when
		state := classifier.Classify(t.Context(), loc)

		// then
		assert.Equal(t, entities.PresentInNeither, state)
	})
}
