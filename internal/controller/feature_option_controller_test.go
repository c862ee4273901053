package controller

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Semavi7/who-estate-backend-different/internal/model"
)

func TestGroupFeatureOptions(t *testing.T) {
	t.Run("groups values under their category", func(t *testing.T) {
		grouped := GroupFeatureOptions([]model.FeatureOption{
			{Category: "Cephe", Value: "Kuzey"},
			{Category: "Cephe", Value: "Güney"},
			{Category: "Manzara", Value: "Deniz"},
		})

		assert.Equal(t, []string{"Kuzey", "Güney"}, grouped["Cephe"])
		assert.Equal(t, []string{"Deniz"}, grouped["Manzara"])
	})

	t.Run("empty input gives empty map", func(t *testing.T) {
		assert.Empty(t, GroupFeatureOptions(nil))
	})
}

func TestDuplicateKey(t *testing.T) {
	t.Run("recognizes unique index violations", func(t *testing.T) {
		err := mongo.WriteException{
			WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
		}
		assert.True(t, duplicateKey(err))
	})

	t.Run("leaves other errors alone", func(t *testing.T) {
		assert.False(t, duplicateKey(errors.New("connection reset")))
		assert.False(t, duplicateKey(nil))
	})
}
