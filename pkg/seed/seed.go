package seed

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/Semavi7/who-estate-backend-different/internal/model"
	"github.com/Semavi7/who-estate-backend-different/pkg/config"
	"github.com/Semavi7/who-estate-backend-different/pkg/database"
)

// CreateDefaultAdmin ilk açılışta env'den gelen admin hesabını oluşturur.
// Hesap zaten varsa dokunmaz.
func CreateDefaultAdmin(ctx context.Context, cfg config.AdminConfig) {
	if cfg.Email == "" || cfg.Password == "" {
		log.Println("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	coll := database.Collection(database.CollUsers)

	err := coll.FindOne(ctx, bson.M{"email": cfg.Email}).Err()
	if err == nil {
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Printf("Error checking for default admin: %v", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	now := time.Now()
	admin := model.User{
		Email:     cfg.Email,
		Password:  string(hashed),
		Name:      "Admin",
		Surname:   "User",
		Roles:     model.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := coll.InsertOne(ctx, admin); err != nil {
		log.Printf("Error creating default admin: %v", err)
		return
	}

	log.Println("Default admin user created")
}
