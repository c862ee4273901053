package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	t.Run("slugifies turkish filenames", func(t *testing.T) {
		key := ObjectKey("properties", "Deniz Manzaralı Daire.JPG")

		assert.True(t, strings.HasPrefix(key, "uploads/properties/"))
		assert.True(t, strings.HasSuffix(key, "-deniz-manzarali-daire.jpg"))
		assert.NotContains(t, key, " ")
	})

	t.Run("keys are unique per call", func(t *testing.T) {
		a := ObjectKey("users", "avatar.png")
		b := ObjectKey("users", "avatar.png")
		require.NotEqual(t, a, b)
	})
}

func TestKeyFromURL(t *testing.T) {
	s := &Service{publicURL: "https://cdn.example.com"}

	t.Run("strips the public base", func(t *testing.T) {
		assert.Equal(t, "uploads/users/abc-avatar.png",
			s.keyFromURL("https://cdn.example.com/uploads/users/abc-avatar.png"))
	})

	t.Run("foreign URLs pass through untouched", func(t *testing.T) {
		assert.Equal(t, "https://elsewhere.example.com/img.jpg",
			s.keyFromURL("https://elsewhere.example.com/img.jpg"))
	})
}
