package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeatureOption ilan özellik taksonomisi. (category, value) ikilisi tekildir
type FeatureOption struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Category  string             `bson:"category" json:"category"`
	Value     string             `bson:"value" json:"value"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
