package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResetToken şifre sıfırlama tokeni. Düz token asla saklanmaz, sha256 hash'i saklanır
type ResetToken struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	TokenHash string             `bson:"tokenHash" json:"-"`
	UserID    string             `bson:"userId" json:"userId"`
	Expires   time.Time          `bson:"expires" json:"expires"`
	UsedAt    *time.Time         `bson:"usedAt" json:"usedAt"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
