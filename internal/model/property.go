package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint GeoJSON Point, 2dsphere index bu alan üzerinde
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [lon, lat]
}

type Location struct {
	City         string   `bson:"city" json:"city"`
	District     string   `bson:"district" json:"district"`
	Neighborhood string   `bson:"neighborhood" json:"neighborhood"`
	Geo          GeoPoint `bson:"geo" json:"geo"`
}

type Property struct {
	ID                primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Title             string              `bson:"title" json:"title"`
	Description       string              `bson:"description" json:"description"`
	Price             float64             `bson:"price" json:"price"`
	Gross             float64             `bson:"gross" json:"gross"`
	Net               float64             `bson:"net" json:"net"`
	NumberOfRoom      string              `bson:"numberOfRoom" json:"numberOfRoom"`
	BuildingAge       int                 `bson:"buildingAge" json:"buildingAge"`
	Floor             int                 `bson:"floor" json:"floor"`
	NumberOfFloors    int                 `bson:"numberOfFloors" json:"numberOfFloors"`
	Heating           string              `bson:"heating" json:"heating"`
	NumberOfBathrooms int                 `bson:"numberOfBathrooms" json:"numberOfBathrooms"`
	Kitchen           string              `bson:"kitchen" json:"kitchen"`
	Balcony           int                 `bson:"balcony" json:"balcony"`
	Lift              string              `bson:"lift" json:"lift"`
	Parking           string              `bson:"parking" json:"parking"`
	Furnished         string              `bson:"furnished" json:"furnished"`
	Availability      string              `bson:"availability" json:"availability"`
	Dues              float64             `bson:"dues" json:"dues"`
	EligibleForLoan   string              `bson:"eligibleForLoan" json:"eligibleForLoan"`
	TitleDeedStatus   string              `bson:"titleDeedStatus" json:"titleDeedStatus"`
	Images            []string            `bson:"images" json:"images"`
	Location          Location            `bson:"location" json:"location"`
	UserID            string              `bson:"userId,omitempty" json:"userId,omitempty"`
	PropertyType      string              `bson:"propertyType" json:"propertyType"`
	ListingType       string              `bson:"listingType" json:"listingType"`
	SubType           string              `bson:"subType,omitempty" json:"subType,omitempty"`
	SelectedFeatures  map[string][]string `bson:"selectedFeatures" json:"selectedFeatures"`
	CreatedAt         time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// PropertyWithUser ilan + sahibinin public profili
type PropertyWithUser struct {
	Property `bson:",inline"`
	User     map[string]interface{} `json:"user"`
}
