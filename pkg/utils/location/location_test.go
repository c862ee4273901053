package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationData(t *testing.T) {
	require.NoError(t, Init())

	t.Run("all provinces are loaded", func(t *testing.T) {
		cities := GetCities()
		assert.Len(t, cities, 81)
		assert.Equal(t, "Adana", cities[0].Name)
		assert.Equal(t, "01", cities[0].Code)
	})

	t.Run("known city returns districts", func(t *testing.T) {
		districts := GetDistrictsAndNeighbourhoods("34")
		assert.NotEmpty(t, districts)
	})

	t.Run("unknown city returns empty map not nil", func(t *testing.T) {
		districts := GetDistrictsAndNeighbourhoods("99")
		assert.NotNil(t, districts)
		assert.Empty(t, districts)
	})
}
