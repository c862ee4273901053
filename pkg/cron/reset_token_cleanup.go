package cron

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Semavi7/who-estate-backend-different/pkg/database"
)

// InitResetTokenCleanupCron kullanılmış reset tokenlerini her gece temizler.
// Süresi dolanları TTL index düşürür; bu iş tüketilmiş kayıtları toplar.
func InitResetTokenCleanupCron() {
	c := cron.New()

	_, err := c.AddFunc("0 3 * * *", func() {
		cleanupUsedResetTokens()
	})

	if err != nil {
		log.Printf("Could not initialize reset token cleanup cron: %v", err)
		return
	}

	c.Start()
}

func cleanupUsedResetTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := database.Collection(database.CollResetTokens).DeleteMany(ctx, bson.M{
		"usedAt": bson.M{"$ne": nil},
	})
	if err != nil {
		log.Printf("Error cleaning up used reset tokens: %v", err)
		return
	}

	if res.DeletedCount > 0 {
		log.Printf("Removed %d used reset tokens", res.DeletedCount)
	}
}
