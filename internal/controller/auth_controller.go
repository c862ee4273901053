package controller

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/Semavi7/who-estate-backend-different/internal/model"
	"github.com/Semavi7/who-estate-backend-different/pkg/config"
	"github.com/Semavi7/who-estate-backend-different/pkg/database"
	"github.com/Semavi7/who-estate-backend-different/pkg/email"
	"github.com/Semavi7/who-estate-backend-different/pkg/utils/jwt"
)

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

const resetTokenTTL = 15 * time.Minute

var resetBaseURL string

func InitAuthController(cfg *config.Config) {
	resetBaseURL = cfg.SMTP.ResetBaseURL
}

// Login e-posta ve şifreyi doğrular, tokeni hem cookie hem body ile döner.
// Hatalı e-posta ve hatalı şifre aynı cevabı üretir.
func Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Email and password are required",
		})
	}

	var user model.User
	err := database.Collection(database.CollUsers).
		FindOne(c.Context(), bson.M{"email": input.Email}).Decode(&user)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	token, err := jwt.GenerateToken(user.ID.Hex(), user.Email, user.Roles)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not generate token",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "accessToken",
		Value:    token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Expires:  time.Now().Add(jwt.TokenTTL),
		Path:     "/",
	})

	response := user.GetPublicProfile()
	response["token"] = token

	return c.JSON(response)
}

// ForgotPassword her durumda aynı genel mesajı döner, e-posta adresinin
// kayıtlı olup olmadığını dışarı sızdırmaz.
func ForgotPassword(c *fiber.Ctx) error {
	input := new(ForgotPasswordInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	genericMessage := "Eğer bu e-posta sistemimizde kayıtlı ise, şifre sıfırlama bağlantısı gönderildi."

	var user model.User
	err := database.Collection(database.CollUsers).
		FindOne(c.Context(), bson.M{"email": input.Email}).Decode(&user)
	if err != nil {
		return c.JSON(fiber.Map{"message": genericMessage})
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not generate reset token",
		})
	}
	plainToken := hex.EncodeToString(raw)
	tokenHash := hashToken(plainToken)

	tokens := database.Collection(database.CollResetTokens)

	// Kullanıcının eski tokenleri geçersiz kalır
	if _, err := tokens.DeleteMany(c.Context(), bson.M{"userId": user.ID.Hex()}); err != nil {
		log.Printf("Could not remove previous reset tokens: %v", err)
	}

	resetToken := model.ResetToken{
		TokenHash: tokenHash,
		UserID:    user.ID.Hex(),
		Expires:   time.Now().Add(resetTokenTTL),
		CreatedAt: time.Now(),
	}
	if _, err := tokens.InsertOne(c.Context(), resetToken); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create reset token",
		})
	}

	resetURL := fmt.Sprintf("%s?token=%s", resetBaseURL, plainToken)
	if email.GlobalEmailService != nil {
		if err := email.GlobalEmailService.SendResetPasswordMail(user.Email, resetURL); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{"message": genericMessage})
}

// ResetPassword tek kullanımlık tokeni doğrular ve şifreyi yeniler
func ResetPassword(c *fiber.Ctx) error {
	input := new(ResetPasswordInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	tokens := database.Collection(database.CollResetTokens)

	var record model.ResetToken
	err := tokens.FindOne(c.Context(), bson.M{"tokenHash": hashToken(input.Token)}).Decode(&record)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Token geçersiz",
		})
	}

	if record.Expires.Before(time.Now()) || record.UsedAt != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Token Süresi Dolmuş",
		})
	}

	userID, err := primitive.ObjectIDFromHex(record.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Token geçersiz",
		})
	}

	users := database.Collection(database.CollUsers)

	var user model.User
	if err := users.FindOne(c.Context(), bson.M{"_id": userID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Kullanıcı bulunamadı",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch user",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not hash password",
		})
	}

	_, err = users.UpdateOne(c.Context(), bson.M{"_id": userID}, bson.M{
		"$set": bson.M{"password": string(hashed), "updatedAt": time.Now()},
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update password",
		})
	}

	// Token tek kullanımlık; tüketilen kayıtları gece işi toplar
	if _, err := tokens.UpdateOne(c.Context(), bson.M{"_id": record.ID}, bson.M{
		"$set": bson.M{"usedAt": time.Now()},
	}); err != nil {
		log.Printf("Could not mark reset token as used: %v", err)
	}

	return c.JSON(fiber.Map{"message": "Şifre başarıyla güncellendi"})
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
