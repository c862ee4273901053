package controller

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Semavi7/who-estate-backend-different/internal/model"
	"github.com/Semavi7/who-estate-backend-different/pkg/database"
	"github.com/Semavi7/who-estate-backend-different/pkg/email"
)

type MessageInput struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// CreateMessage iletişim formundan mesaj kaydeder. Bildirim maili gönderilemezse
// kayıt yine de başarılıdır, hata sadece loglanır.
func CreateMessage(c *fiber.Ctx) error {
	var input MessageInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "name, email and message are required",
		})
	}

	now := time.Now()
	msg := model.Message{
		Name:      input.Name,
		Surname:   input.Surname,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := database.Collection(database.CollMessages).InsertOne(c.Context(), msg)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create message",
		})
	}
	msg.ID = res.InsertedID.(primitive.ObjectID)

	if email.GlobalEmailService != nil {
		if err := email.GlobalEmailService.SendContactMail(email.ContactMessageData{
			Name:    strings.TrimSpace(msg.Name + " " + msg.Surname),
			Email:   msg.Email,
			Phone:   msg.Phone,
			Message: msg.Message,
		}); err != nil {
			log.Printf("contact mail could not be sent: %v", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}

func ListMessages(c *fiber.Ctx) error {
	cursor, err := database.Collection(database.CollMessages).Find(c.Context(), bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch messages",
		})
	}

	messages := []model.Message{}
	if err := cursor.All(c.Context(), &messages); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not decode messages",
		})
	}

	return c.JSON(messages)
}

func GetMessage(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid message ID",
		})
	}

	var msg model.Message
	err = database.Collection(database.CollMessages).
		FindOne(c.Context(), bson.M{"_id": id}).Decode(&msg)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Mesaj Bulunamadı",
		})
	}

	return c.JSON(msg)
}

// MarkMessageRead mesajı okundu olarak işaretler
func MarkMessageRead(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid message ID",
		})
	}

	var updated model.Message
	err = database.Collection(database.CollMessages).FindOneAndUpdate(
		c.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isread": true, "updatedAt": time.Now()}},
		mongoReturnAfter(),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Mesaj Bulunamadı",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update message",
		})
	}

	return c.JSON(updated)
}

func DeleteMessage(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid message ID",
		})
	}

	res, err := database.Collection(database.CollMessages).DeleteOne(c.Context(), bson.M{"_id": id})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete message",
		})
	}
	if res.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Mesaj Bulunamadı",
		})
	}

	return c.JSON(fiber.Map{"message": "Mesaj başarı ile silindi"})
}
