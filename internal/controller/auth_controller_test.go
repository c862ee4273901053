package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashToken(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		assert.Equal(t, hashToken("abc"), hashToken("abc"))
	})

	t.Run("different tokens give different hashes", func(t *testing.T) {
		assert.NotEqual(t, hashToken("abc"), hashToken("abd"))
	})

	t.Run("output is hex encoded sha256", func(t *testing.T) {
		assert.Len(t, hashToken("anything"), 64)
		assert.Equal(t,
			"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
			hashToken("abc"))
	})
}
