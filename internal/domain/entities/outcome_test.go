//go:build unit

package entities_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
)

func TestBatchResult(t *testing.T) {
	t.Parallel()

	t.Run("should count outcomes per status", func(t *testing.T) {
		t.Parallel()

		// given
		result := &entities.BatchResult{}
		result.Add(entities.FileOutcome{Path: "a", Status: entities.OutcomeReverted})
		result.Add(entities.FileOutcome{Path: "b", Status: entities.OutcomeStashed})
		result.Add(entities.FileOutcome{Path: "c", Status: entities.OutcomeSkipped})
		result.Add(entities.FileOutcome{Path: "d", Status: entities.OutcomeFailed, Err: errors.New("boom")})

		// when
		processed := result.Processed()

		// then
		assert.Equal(t, 2, processed)
		assert.Equal(t, 1, result.Count(entities.OutcomeSkipped))
		assert.True(t, result.HasFailures())
		assert.Equal(t, []entities.FileOutcome{result.Outcomes[3]}, result.Failures())
	})

	t.Run("should have no failures when empty", func(t *testing.T) {
		t.Parallel()

		// given
		result := &entities.BatchResult{}

		// when
		failed := result.HasFailures()

		// then
		assert.False(t, failed)
		assert.Empty(t, result.Failures())
	})
}
