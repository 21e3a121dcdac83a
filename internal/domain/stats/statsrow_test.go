package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructStatsRowInvariants(t *testing.T) {
	now := time.Now()

	t.Run("valid row", func(t *testing.T) {
		row, err := ReconstructStatsRow(1, 1, "de", 5, 3, 2, 1, 50, 30, 20, nil, nil, now)
		require.NoError(t, err)
		assert.Equal(t, 60, row.Percentage())
		assert.Equal(t, 20, row.ReviewedPercentage())
	})

	t.Run("count conservation violated", func(t *testing.T) {
		_, err := ReconstructStatsRow(1, 1, "de", 5, 3, 3, 0, 0, 0, 0, nil, nil, now)
		assert.Error(t, err)
	})

	t.Run("reviewed exceeds translated", func(t *testing.T) {
		_, err := ReconstructStatsRow(1, 1, "de", 5, 2, 3, 3, 0, 0, 0, nil, nil, now)
		assert.Error(t, err)
	})
}

func TestPercentageBoundaries(t *testing.T) {
	t.Run("empty resource is 0 percent", func(t *testing.T) {
		row, err := NewStatsRow(1, "de")
		require.NoError(t, err)
		assert.Equal(t, 0, row.Percentage())
	})

	t.Run("rounding", func(t *testing.T) {
		row, err := ReconstructStatsRow(1, 1, "de", 3, 1, 2, 0, 0, 0, 0, nil, nil, time.Now())
		require.NoError(t, err)
		assert.Equal(t, 33, row.Percentage())

		row, err = ReconstructStatsRow(1, 1, "de", 3, 2, 1, 0, 0, 0, 0, nil, nil, time.Now())
		require.NoError(t, err)
		assert.Equal(t, 67, row.Percentage())
	})
}
