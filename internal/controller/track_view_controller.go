package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Semavi7/who-estate-backend-different/internal/model"
	"github.com/Semavi7/who-estate-backend-different/pkg/database"
	"github.com/Semavi7/who-estate-backend-different/pkg/timeseries"
)

// TrackView bugünün sayacını tek bir upsert ile artırır; date üzerindeki
// unique index yarışan istekleri aynı dokümana indirger.
func TrackView(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")

	update := bson.M{
		"$inc": bson.M{"views": 1},
		"$set": bson.M{"updatedAt": time.Now()},
		"$setOnInsert": bson.M{
			"date":      today,
			"createdAt": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var view model.TrackView
	err := database.Collection(database.CollTrackViews).
		FindOneAndUpdate(c.Context(), bson.M{"date": today}, update, opts).
		Decode(&view)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not track view",
		})
	}

	return c.JSON(view)
}

// YearViewStats içinde bulunulan yılın aylık görüntülenme toplamları
func YearViewStats(c *fiber.Ctx) error {
	year := time.Now().Year()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"date": primitive.Regex{Pattern: "^" + strconv.Itoa(year) + "-"},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$substr": bson.A{"$date", 0, 7}},
			"views": bson.M{"$sum": "$views"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := database.Collection(database.CollTrackViews).Aggregate(c.Context(), pipeline)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not aggregate views",
		})
	}

	results := []timeseries.MonthViews{}
	if err := cursor.All(c.Context(), &results); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not decode aggregation",
		})
	}

	return c.JSON(timeseries.FillYearViews(year, results))
}

// MonthViewTotal içinde bulunulan ayın toplam görüntülenmesi
func MonthViewTotal(c *fiber.Ctx) error {
	monthPrefix := time.Now().Format("2006-01")

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"date": primitive.Regex{Pattern: "^" + monthPrefix},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":        nil,
			"totalViews": bson.M{"$sum": "$views"},
		}}},
	}

	cursor, err := database.Collection(database.CollTrackViews).Aggregate(c.Context(), pipeline)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not aggregate views",
		})
	}

	var results []struct {
		TotalViews int64 `bson:"totalViews"`
	}
	if err := cursor.All(c.Context(), &results); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not decode aggregation",
		})
	}

	var total int64
	if len(results) > 0 {
		total = results[0].TotalViews
	}

	return c.JSON(fiber.Map{"totalViews": total})
}
