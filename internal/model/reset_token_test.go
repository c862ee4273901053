package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestResetTokenUsedAtRoundTrip(t *testing.T) {
	t.Run("fresh token stores usedAt as null", func(t *testing.T) {
		data, err := bson.Marshal(ResetToken{
			TokenHash: "abc",
			UserID:    "64f1c0ffee",
			Expires:   time.Now().Add(15 * time.Minute),
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)

		var m bson.M
		require.NoError(t, bson.Unmarshal(data, &m))
		require.Contains(t, m, "usedAt")
		assert.Nil(t, m["usedAt"])
	})

	t.Run("consumed token stores a timestamp", func(t *testing.T) {
		used := time.Now()
		data, err := bson.Marshal(ResetToken{
			TokenHash: "abc",
			UserID:    "64f1c0ffee",
			Expires:   time.Now().Add(15 * time.Minute),
			UsedAt:    &used,
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)

		var m bson.M
		require.NoError(t, bson.Unmarshal(data, &m))
		// Gece temizliği usedAt != null filtresiyle çalışır, tüketilmiş
		// kayıt null olmayan bir değer taşımak zorunda
		assert.NotNil(t, m["usedAt"])
	})
}
