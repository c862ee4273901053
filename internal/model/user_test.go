package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserJSONHidesPassword(t *testing.T) {
	u := User{
		Name:     "Derya",
		Email:    "derya@example.com",
		Password: "$2a$10$hash",
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), "$2a$10$hash")
	assert.Contains(t, string(data), "derya@example.com")
}

func TestGetPublicProfile(t *testing.T) {
	id := primitive.NewObjectID()
	u := User{
		ID:          id,
		Name:        "Derya",
		Surname:     "Yılmaz",
		Email:       "derya@example.com",
		PhoneNumber: 5551234567,
		Roles:       RoleAdmin,
		Password:    "secret-hash",
	}

	profile := u.GetPublicProfile()

	assert.Equal(t, id.Hex(), profile["_id"])
	assert.Equal(t, "derya@example.com", profile["email"])
	assert.Equal(t, RoleAdmin, profile["role"])
	assert.Equal(t, int64(5551234567), profile["phonenumber"])
	assert.NotContains(t, profile, "password")
}
