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
	"github.com/rios0rios0/gitrevert/test/infrastructure/repositorydoubles"
)

func TestDoctorCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should report the git version and the enclosing repository", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		git := repositorydoubles.NewSpyGitRepository(root)

		// when
		report, err := commands.NewDoctorCommand(git).Execute(t.Context(), root)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.DoctorReport{
			GitVersion:           "v2.43.0",
			ScopedStashSupported: true,
			RepositoryRoot:       root,
		}, report)
	})

	t.Run("should report an empty root outside a repository", func(t *testing.T) {
		t.Parallel()

		// given
		git := repositorydoubles.NewSpyGitRepository(t.TempDir())
		git.GitVersion = "v2.11.0"
		git.LocateErr = fmt.Errorf("%w: /tmp", entities.ErrNotARepository)

		// when
		report, err := commands.NewDoctorCommand(git).Execute(t.Context(), t.TempDir())

		// then
		require.NoError(t, err)
		assert.Empty(t, report.RepositoryRoot)
		assert.False(t, report.ScopedStashSupported)
	})

	t.Run("should fail when git cannot be run", func(t *testing.T) {
		t.Parallel()

		// given
		git := repositorydoubles.NewSpyGitRepository(t.TempDir())
		git.VersionErr = errors.New("executable file not found")

		// when
		_, err := commands.NewDoctorCommand(git).Execute(t.Context(), ".")

		// then
		require.ErrorContains(t, err, "executable file not found")
	})
}
