package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Semavi7/who-estate-backend-different/internal/model"
	"github.com/Semavi7/who-estate-backend-different/pkg/database"
)

type FeatureOptionInput struct {
	Category string `json:"category"`
	Value    string `json:"value"`
}

// duplicateKey unique index ihlalini yakalar; yarışan iki istek ön kontrolü
// aynı anda geçebilir, son söz index'indir
func duplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// CreateFeatureOption yeni özellik seçeneği ekler, (category, value) tekrarına izin vermez
func CreateFeatureOption(c *fiber.Ctx) error {
	var input FeatureOptionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if input.Category == "" || input.Value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "category and value are required",
		})
	}

	coll := database.Collection(database.CollFeatureOptions)

	count, err := coll.CountDocuments(c.Context(), bson.M{
		"category": input.Category,
		"value":    input.Value,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not check feature option",
		})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Bu özellik zaten mevcut.",
		})
	}

	now := time.Now()
	option := model.FeatureOption{
		Category:  input.Category,
		Value:     input.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := coll.InsertOne(c.Context(), option)
	if err != nil {
		if duplicateKey(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Bu özellik zaten mevcut.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create feature option",
		})
	}
	option.ID = res.InsertedID.(primitive.ObjectID)

	return c.Status(fiber.StatusCreated).JSON(option)
}

// GroupFeatureOptions seçenekleri kategoriye göre değer listesine indirger
func GroupFeatureOptions(options []model.FeatureOption) map[string][]string {
	grouped := map[string][]string{}
	for _, opt := range options {
		grouped[opt.Category] = append(grouped[opt.Category], opt.Value)
	}
	return grouped
}

// ListGroupedFeatureOptions ilan formunun beklediği {kategori: [değerler]} haritası
func ListGroupedFeatureOptions(c *fiber.Ctx) error {
	cursor, err := database.Collection(database.CollFeatureOptions).Find(c.Context(), bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch feature options",
		})
	}

	options := []model.FeatureOption{}
	if err := cursor.All(c.Context(), &options); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not decode feature options",
		})
	}

	return c.JSON(GroupFeatureOptions(options))
}

// ListFeatureOptions admin paneli için düz liste
func ListFeatureOptions(c *fiber.Ctx) error {
	cursor, err := database.Collection(database.CollFeatureOptions).Find(c.Context(), bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch feature options",
		})
	}

	options := []model.FeatureOption{}
	if err := cursor.All(c.Context(), &options); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not decode feature options",
		})
	}

	return c.JSON(options)
}

func GetFeatureOption(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid feature option ID",
		})
	}

	var option model.FeatureOption
	err = database.Collection(database.CollFeatureOptions).
		FindOne(c.Context(), bson.M{"_id": id}).Decode(&option)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Özellik bulunamadı",
		})
	}

	return c.JSON(option)
}

// UpdateFeatureOption günceller; başka bir kayıtla çakışıyorsa 409 döner
func UpdateFeatureOption(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid feature option ID",
		})
	}

	var input FeatureOptionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if input.Category == "" || input.Value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "category and value are required",
		})
	}

	coll := database.Collection(database.CollFeatureOptions)

	count, err := coll.CountDocuments(c.Context(), bson.M{
		"category": input.Category,
		"value":    input.Value,
		"_id":      bson.M{"$ne": id},
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not check feature option",
		})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Bu özellik zaten mevcut.",
		})
	}

	var updated model.FeatureOption
	err = coll.FindOneAndUpdate(
		c.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"category":  input.Category,
			"value":     input.Value,
			"updatedAt": time.Now(),
		}},
		mongoReturnAfter(),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Özellik bulunamadı",
			})
		}
		if duplicateKey(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Bu özellik zaten mevcut.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update feature option",
		})
	}

	return c.JSON(updated)
}

func DeleteFeatureOption(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid feature option ID",
		})
	}

	res, err := database.Collection(database.CollFeatureOptions).DeleteOne(c.Context(), bson.M{"_id": id})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete feature option",
		})
	}
	if res.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Özellik bulunamadı",
		})
	}

	return c.JSON(fiber.Map{"message": "Özellik başarı ile silindi"})
}
