package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	JWT     JWTConfig
	CORS    CORSConfig
	Storage StorageConfig
	SMTP    SMTPConfig
	Admin   AdminConfig
}

type ServerConfig struct {
	Port string
}

type MongoConfig struct {
	URI    string
	DBName string
}

type JWTConfig struct {
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type StorageConfig struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string // R2 gibi S3 uyumlu servisler için, boş bırakılırsa AWS
	PublicURL string
}

type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
	// İletişim ve müşteri kayıt formu bildirimlerinin gideceği adresler
	ContactEmail string
	IntakeEmail  string
	// Reset linkinin önüne eklenecek frontend adresi
	ResetBaseURL string
}

type AdminConfig struct {
	Email    string
	Password string
}

func Load() *Config {
	godotenv.Load() // .env dosyasını yükle

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3001"),
		},
		Mongo: MongoConfig{
			URI:    getEnv("MONGO_URL", "mongodb://localhost:27017"),
			DBName: getEnv("MONGO_DB_NAME", "who_estate"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		},
		Storage: StorageConfig{
			Bucket:    getEnv("STORAGE_BUCKET_NAME", "who-estate-images"),
			Region:    getEnv("STORAGE_REGION", "auto"),
			AccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey: getEnv("STORAGE_SECRET_KEY", ""),
			Endpoint:  getEnv("STORAGE_ENDPOINT", ""),
			PublicURL: getEnv("STORAGE_PUBLIC_URL", ""),
		},
		SMTP: SMTPConfig{
			Host:         getEnv("SMTP_HOST", "localhost"),
			Port:         getEnv("SMTP_PORT", "587"),
			User:         getEnv("SMTP_USER", ""),
			Password:     getEnv("SMTP_PASS", ""),
			From:         getEnv("SMTP_FROM", "noreply@deryaemlak.co"),
			ContactEmail: getEnv("CONTACT_EMAIL", "info@deryaemlak.co"),
			IntakeEmail:  getEnv("CLIENT_INTAKE_EMAIL", "info@deryaemlak.co"),
			ResetBaseURL: getEnv("RESET_BASE_URL", "http://localhost:3000/reset-password"),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
