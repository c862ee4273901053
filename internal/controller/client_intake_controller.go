package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Semavi7/who-estate-backend-different/internal/model"
	"github.com/Semavi7/who-estate-backend-different/pkg/database"
	"github.com/Semavi7/who-estate-backend-different/pkg/email"
)

type ClientIntakeInput struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Message      *string `json:"message"`
	PropertyType *string `json:"propertyType"`
	Budget       *string `json:"budget"`
	Location     *string `json:"location"`
	Timeline     *string `json:"timeline"`
}

// CreateClientIntake yeni müşteri talebi kaydeder ve ofise bildirim maili yollar.
// Mail gönderilemezse kayıt yine de başarılıdır.
func CreateClientIntake(c *fiber.Ctx) error {
	var input ClientIntakeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	if deref(input.Name) == "" || deref(input.Phone) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "name and phone are required",
		})
	}

	now := time.Now()
	intake := model.ClientIntake{
		Name:         deref(input.Name),
		Email:        deref(input.Email),
		Phone:        deref(input.Phone),
		Message:      deref(input.Message),
		PropertyType: deref(input.PropertyType),
		Budget:       deref(input.Budget),
		Location:     deref(input.Location),
		Timeline:     deref(input.Timeline),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := database.Collection(database.CollClientIntakes).InsertOne(c.Context(), intake)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create client intake",
		})
	}
	intake.ID = res.InsertedID.(primitive.ObjectID)

	if email.GlobalEmailService != nil {
		if err := email.GlobalEmailService.SendClientIntakeMail(email.ClientIntakeData{
			Name:         intake.Name,
			Email:        intake.Email,
			Phone:        intake.Phone,
			PropertyType: intake.PropertyType,
			Budget:       intake.Budget,
			Location:     intake.Location,
			Timeline:     intake.Timeline,
			Message:      intake.Message,
		}); err != nil {
			log.Printf("client intake mail could not be sent: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(intake)
}

func ListClientIntakes(c *fiber.Ctx) error {
	cursor, err := database.Collection(database.CollClientIntakes).Find(c.Context(), bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch client intakes",
		})
	}

	intakes := []model.ClientIntake{}
	if err := cursor.All(c.Context(), &intakes); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not decode client intakes",
		})
	}

	return c.JSON(intakes)
}

func GetClientIntake(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client intake ID",
		})
	}

	var intake model.ClientIntake
	err = database.Collection(database.CollClientIntakes).
		FindOne(c.Context(), bson.M{"_id": id}).Decode(&intake)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Kayıt Bulunamadı.",
		})
	}

	return c.JSON(intake)
}

// UpdateClientIntake kısmi güncelleme: yalnızca gönderilen alanlar yazılır
func UpdateClientIntake(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client intake ID",
		})
	}

	var input ClientIntakeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	set := bson.M{"updatedAt": time.Now()}
	fields := map[string]*string{
		"name":         input.Name,
		"email":        input.Email,
		"phone":        input.Phone,
		"message":      input.Message,
		"propertyType": input.PropertyType,
		"budget":       input.Budget,
		"location":     input.Location,
		"timeline":     input.Timeline,
	}
	for key, value := range fields {
		if value != nil {
			set[key] = *value
		}
	}

	var updated model.ClientIntake
	err = database.Collection(database.CollClientIntakes).FindOneAndUpdate(
		c.Context(),
		bson.M{"_id": id},
		bson.M{"$set": set},
		mongoReturnAfter(),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Kayıt Bulunamadı.",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update client intake",
		})
	}

	return c.JSON(updated)
}

func DeleteClientIntake(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client intake ID",
		})
	}

	res, err := database.Collection(database.CollClientIntakes).DeleteOne(c.Context(), bson.M{"_id": id})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete client intake",
		})
	}
	if res.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Kayıt Bulunamadı.",
		})
	}

	return c.JSON(fiber.Map{"message": "Kayıt başarı ile silindi"})
}
