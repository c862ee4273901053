package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/Semavi7/who-estate-backend-different/internal/model"
	"github.com/Semavi7/who-estate-backend-different/pkg/database"
	"github.com/Semavi7/who-estate-backend-different/pkg/utils/storage"
)

type CreateUserInput struct {
	Name        string `json:"name" validate:"required"`
	Surname     string `json:"surname" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber int64  `json:"phonenumber" validate:"required"`
}

type UpdateUserInput struct {
	Name        *string `json:"name"`
	Surname     *string `json:"surname"`
	Email       *string `json:"email"`
	PhoneNumber *int64  `json:"phonenumber"`
}

type UpdatePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// Yeni hesaplar bu şifreyle açılır, kullanıcı ilk girişte değiştirir
const defaultUserPassword = "123456"

// CreateUser yeni kullanıcı oluşturur, yalnızca admin
func CreateUser(c *fiber.Ctx) error {
	input := new(CreateUserInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	if input.Name == "" || input.Surname == "" || input.Email == "" || input.PhoneNumber == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "name, surname, email and phonenumber are required",
		})
	}

	users := database.Collection(database.CollUsers)

	count, err := users.CountDocuments(c.Context(), bson.M{"email": input.Email})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not check existing users",
		})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Email already exists",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultUserPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not hash password",
		})
	}

	now := time.Now()
	user := model.User{
		Name:        input.Name,
		Surname:     input.Surname,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Password:    string(hashed),
		Roles:       model.RoleMember,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := users.InsertOne(c.Context(), user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create user",
		})
	}
	user.ID = res.InsertedID.(primitive.ObjectID)

	return c.Status(fiber.StatusCreated).JSON(user)
}

// ListUsers tüm kullanıcıları listeler
func ListUsers(c *fiber.Ctx) error {
	cursor, err := database.Collection(database.CollUsers).Find(c.Context(), bson.M{})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not fetch users",
		})
	}

	users := []model.User{}
	if err := cursor.All(c.Context(), &users); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not decode users",
		})
	}

	return c.JSON(users)
}

// GetUser id ile kullanıcı getirir
func GetUser(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID",
		})
	}

	var user model.User
	err = database.Collection(database.CollUsers).
		FindOne(c.Context(), bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Kullanıcı Bulunamadı",
		})
	}

	return c.JSON(user)
}

// UpdateUser yalnızca gönderilen alanları günceller
func UpdateUser(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID",
		})
	}

	input := new(UpdateUserInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Surname != nil {
		set["surname"] = *input.Surname
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.PhoneNumber != nil {
		set["phonenumber"] = *input.PhoneNumber
	}

	users := database.Collection(database.CollUsers)

	var updated model.User
	err = users.FindOneAndUpdate(
		c.Context(),
		bson.M{"_id": id},
		bson.M{"$set": set},
		mongoReturnAfter(),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Kullanıcı Bulunamadı",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update user",
		})
	}

	return c.JSON(updated)
}

// UpdatePassword eski şifre doğruysa yenisini yazar
func UpdatePassword(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID",
		})
	}

	input := new(UpdatePasswordInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	users := database.Collection(database.CollUsers)

	var user model.User
	if err := users.FindOne(c.Context(), bson.M{"_id": id}).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Kullanıcı Bulunamadı",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Kullanıcı şifresi yanlış",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not hash password",
		})
	}

	_, err = users.UpdateOne(c.Context(), bson.M{"_id": id}, bson.M{
		"$set": bson.M{"password": string(hashed), "updatedAt": time.Now()},
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update password",
		})
	}

	return c.JSON(fiber.Map{"message": "Kullanıcı şifresi değiştirildi"})
}

// UploadUserImage profil fotoğrafını object storage'a yükler
func UploadUserImage(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID",
		})
	}

	users := database.Collection(database.CollUsers)

	var user model.User
	if err := users.FindOne(c.Context(), bson.M{"_id": id}).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Kullanıcı Bulunamadı",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No image file provided",
		})
	}

	previousImage := user.Image

	imageURL, err := storage.GlobalService.UploadUserImage(c.Context(), file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	err = users.FindOneAndUpdate(
		c.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"image": imageURL, "updatedAt": time.Now()}},
		mongoReturnAfter(),
	).Decode(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update user",
		})
	}

	// Eski fotoğraf yetim kalmasın
	if previousImage != "" {
		if err := storage.GlobalService.DeleteImage(c.Context(), previousImage); err != nil {
			log.Printf("Could not delete previous user image: %v", err)
		}
	}

	return c.JSON(user)
}

// DeleteUser kullanıcıyı siler, yalnızca admin
func DeleteUser(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID",
		})
	}

	res, err := database.Collection(database.CollUsers).DeleteOne(c.Context(), bson.M{"_id": id})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete user",
		})
	}
	if res.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Böyle bir Id bulunamadı",
		})
	}

	return c.JSON(fiber.Map{"message": "Kullanıcı başarı ile silindi"})
}
