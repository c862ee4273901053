package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kullanıcı rolleri
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Surname     string             `bson:"surname" json:"surname"`
	Email       string             `bson:"email" json:"email"`
	Image       string             `bson:"image" json:"image"`
	PhoneNumber int64              `bson:"phonenumber" json:"phonenumber"`
	Password    string             `bson:"password" json:"-"`
	Roles       string             `bson:"roles" json:"roles"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// GetPublicProfile login cevabında dönen kullanıcı bilgileri
func (u *User) GetPublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"_id":         u.ID.Hex(),
		"email":       u.Email,
		"name":        u.Name,
		"surname":     u.Surname,
		"phonenumber": u.PhoneNumber,
		"role":        u.Roles,
		"image":       u.Image,
	}
}
