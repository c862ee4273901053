package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Koleksiyon adları
const (
	CollUsers          = "users"
	CollProperties     = "properties"
	CollClientIntakes  = "clientintakes"
	CollFeatureOptions = "featureoptions"
	CollMessages       = "messages"
	CollTrackViews     = "trackviews"
	CollResetTokens    = "resettokens"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

func InitDB(uri, dbName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db = client.Database(dbName)

	log.Println("Database connected successfully!")
}

func Collection(name string) *mongo.Collection {
	return db.Collection(name)
}

func Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from database: %v", err)
	}
}

// EnsureIndexes uygulama açılışında gerekli index'leri oluşturur
func EnsureIndexes(ctx context.Context) error {
	// Kullanıcı e-postası tekil
	_, err := Collection(CollUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	// Konum bazlı sorgular için 2dsphere
	_, err = Collection(CollProperties).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "location.geo", Value: "2dsphere"}},
	})
	if err != nil {
		return err
	}

	// (category, value) ikilisi tekil
	_, err = Collection(CollFeatureOptions).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}, {Key: "value", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	// Gün başına tek sayaç kaydı
	_, err = Collection(CollTrackViews).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	// Süresi dolan reset tokenlerini Mongo kendisi düşürür
	_, err = Collection(CollResetTokens).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	return err
}
