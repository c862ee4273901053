package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildQueryFilter(t *testing.T) {
	t.Run("location fields map to nested keys", func(t *testing.T) {
		filter := BuildQueryFilter(map[string]string{
			"city":         "34",
			"district":     "Kadıköy",
			"neighborhood": "Moda",
		})

		assert.Equal(t, "34", filter["location.city"])
		assert.Equal(t, "Kadıköy", filter["location.district"])
		assert.Equal(t, "Moda", filter["location.neighborhood"])
	})

	t.Run("numeric fields become int equality", func(t *testing.T) {
		filter := BuildQueryFilter(map[string]string{
			"price": "2500000",
			"floor": "3",
		})

		assert.Equal(t, 2500000, filter["price"])
		assert.Equal(t, 3, filter["floor"])
	})

	t.Run("min and max merge into one range document", func(t *testing.T) {
		filter := BuildQueryFilter(map[string]string{
			"minPrice": "1000000",
			"maxPrice": "3000000",
		})

		bounds, ok := filter["price"].(bson.M)
		require.True(t, ok)
		assert.Equal(t, 1000000, bounds["$gte"])
		assert.Equal(t, 3000000, bounds["$lte"])
	})

	t.Run("net range works independently of price", func(t *testing.T) {
		filter := BuildQueryFilter(map[string]string{
			"minNet": "80",
			"maxNet": "150",
		})

		bounds, ok := filter["net"].(bson.M)
		require.True(t, ok)
		assert.Equal(t, 80, bounds["$gte"])
		assert.Equal(t, 150, bounds["$lte"])
		assert.NotContains(t, filter, "price")
	})

	t.Run("unknown fields fall back to exact string match", func(t *testing.T) {
		filter := BuildQueryFilter(map[string]string{
			"propertyType": "Konut",
			"numberOfRoom": "3+1",
		})

		assert.Equal(t, "Konut", filter["propertyType"])
		assert.Equal(t, "3+1", filter["numberOfRoom"])
	})

	t.Run("non-numeric value for numeric field is dropped", func(t *testing.T) {
		filter := BuildQueryFilter(map[string]string{"price": "abc"})
		assert.NotContains(t, filter, "price")
	})

	t.Run("empty params give empty filter", func(t *testing.T) {
		assert.Empty(t, BuildQueryFilter(map[string]string{}))
	})
}

func TestParseLocation(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		loc, err := parseLocation(`{"city":"34","district":"Kadıköy","neighborhood":"Moda","geo":{"coordinates":[29.03,40.98]}}`)
		require.NoError(t, err)
		assert.Equal(t, "Point", loc.Geo.Type)
		assert.Equal(t, []float64{29.03, 40.98}, loc.Geo.Coordinates)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := parseLocation(`{"city":`)
		assert.Error(t, err)
	})

	t.Run("rejects wrong coordinate count", func(t *testing.T) {
		_, err := parseLocation(`{"geo":{"coordinates":[29.03]}}`)
		assert.Error(t, err)
	})
}

func TestParseSelectedFeatures(t *testing.T) {
	t.Run("empty string gives empty map", func(t *testing.T) {
		features, err := parseSelectedFeatures("")
		require.NoError(t, err)
		assert.Empty(t, features)
	})

	t.Run("valid payload", func(t *testing.T) {
		features, err := parseSelectedFeatures(`{"Cephe":["Kuzey","Güney"]}`)
		require.NoError(t, err)
		assert.Equal(t, []string{"Kuzey", "Güney"}, features["Cephe"])
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := parseSelectedFeatures(`not-json`)
		assert.Error(t, err)
	})
}

func TestBuildPropertyUpdate(t *testing.T) {
	t.Run("only submitted fields are set", func(t *testing.T) {
		set, err := buildPropertyUpdate(map[string][]string{
			"title": {"Yeni başlık"},
			"price": {"1500000"},
			"floor": {"2"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Yeni başlık", set["title"])
		assert.Equal(t, 1500000.0, set["price"])
		assert.Equal(t, 2, set["floor"])
		assert.NotContains(t, set, "description")
	})

	t.Run("rejects non-numeric price", func(t *testing.T) {
		_, err := buildPropertyUpdate(map[string][]string{"price": {"pahalı"}})
		assert.Error(t, err)
	})

	t.Run("rejects malformed location", func(t *testing.T) {
		_, err := buildPropertyUpdate(map[string][]string{"location": {"{"}})
		assert.Error(t, err)
	})
}

func TestCategoryStructure(t *testing.T) {
	konut, ok := CategoryStructure["Konut"]
	require.True(t, ok)
	require.Contains(t, konut, "Daire")
	assert.Contains(t, konut["Daire"], "1+1")

	assert.Contains(t, CategoryStructure, "İş Yeri")
	assert.Contains(t, CategoryStructure, "Arsa")
	assert.Contains(t, CategoryStructure, "Turizm")
}
