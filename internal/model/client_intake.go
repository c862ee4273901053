package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClientIntake struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	Message      string             `bson:"message" json:"message"`
	PropertyType string             `bson:"propertyType" json:"propertyType"`
	Budget       string             `bson:"budget" json:"budget"`
	Location     string             `bson:"location" json:"location"`
	Timeline     string             `bson:"timeline" json:"timeline"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
