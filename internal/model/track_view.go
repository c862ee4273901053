package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrackView günlük sayfa görüntülenme sayacı, tarih başına tek kayıt
type TrackView struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Date      string             `bson:"date" json:"date"` // YYYY-MM-DD
	Views     int64              `bson:"views" json:"views"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
