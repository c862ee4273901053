package timeseries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillYearCounts(t *testing.T) {
	t.Run("always returns twelve months", func(t *testing.T) {
		result := FillYearCounts(2026, nil)
		require.Len(t, result, 12)
		assert.Equal(t, "2026-01", result[0].Month)
		assert.Equal(t, "2026-12", result[11].Month)
		for _, m := range result {
			assert.Zero(t, m.Count)
		}
	})

	t.Run("known months keep their counts", func(t *testing.T) {
		result := FillYearCounts(2026, []MonthCount{
			{Month: "2026-03", Count: 7},
			{Month: "2026-11", Count: 2},
		})
		require.Len(t, result, 12)
		assert.Equal(t, int64(7), result[2].Count)
		assert.Equal(t, int64(2), result[10].Count)
		assert.Zero(t, result[0].Count)
	})
}

func TestFillYearViews(t *testing.T) {
	result := FillYearViews(2026, []MonthViews{
		{Month: "2026-01", Views: 120},
	})
	require.Len(t, result, 12)
	assert.Equal(t, int64(120), result[0].Views)
	assert.Zero(t, result[5].Views)
}
