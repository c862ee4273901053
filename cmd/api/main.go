package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/Semavi7/who-estate-backend-different/internal/controller"
	"github.com/Semavi7/who-estate-backend-different/internal/middleware"
	"github.com/Semavi7/who-estate-backend-different/pkg/config"
	"github.com/Semavi7/who-estate-backend-different/pkg/cron"
	"github.com/Semavi7/who-estate-backend-different/pkg/database"
	"github.com/Semavi7/who-estate-backend-different/pkg/email"
	"github.com/Semavi7/who-estate-backend-different/pkg/seed"
	"github.com/Semavi7/who-estate-backend-different/pkg/utils/jwt"
	"github.com/Semavi7/who-estate-backend-different/pkg/utils/location"
	"github.com/Semavi7/who-estate-backend-different/pkg/utils/storage"
)

func setupRoutes(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/login", controller.Login)
	auth.Post("/forgot-password", controller.ForgotPassword)
	auth.Post("/reset-password", controller.ResetPassword)

	// User Routes, kullanıcı yaratma ve silme yalnızca admin
	users := api.Group("/user", middleware.AuthMiddleware())
	users.Post("/", middleware.RequireAdmin(), controller.CreateUser)
	users.Get("/", controller.ListUsers)
	users.Get("/:id", controller.GetUser)
	users.Put("/:id", controller.UpdateUser)
	users.Patch("/:id/password", controller.UpdatePassword)
	users.Patch("/:id/upload-image", controller.UploadUserImage)
	users.Delete("/:id", middleware.RequireAdmin(), controller.DeleteUser)

	// Property Routes: okuma uçları herkese açık, yazma işlemleri korumalı
	properties := api.Group("/properties")
	properties.Get("/", controller.ListProperties)
	properties.Get("/query", controller.QueryProperties)
	properties.Get("/near", controller.NearProperties)
	properties.Get("/lastsix", controller.LastSixProperties)
	properties.Get("/count", controller.CountProperties)
	properties.Get("/yearlistings", controller.YearListings)
	properties.Get("/piechart", controller.PieChart)
	properties.Get("/categories", controller.GetCategories)
	properties.Get("/adress", controller.GetAddressData)
	properties.Get("/adress/:id", controller.GetAddressByCity)
	properties.Post("/", middleware.AuthMiddleware(), controller.CreateProperty)
	properties.Get("/:id", controller.GetProperty)
	properties.Put("/:id", middleware.AuthMiddleware(), controller.UpdateProperty)
	properties.Patch("/:id", middleware.AuthMiddleware(), middleware.RequireAdmin(), controller.AssignPropertyUser)
	properties.Delete("/:id", middleware.AuthMiddleware(), controller.DeleteProperty)

	// Feature Option Routes: gruplu liste ilan formu için herkese açık
	features := api.Group("/feature-options")
	features.Get("/", controller.ListGroupedFeatureOptions)
	features.Get("/findall", middleware.AuthMiddleware(), controller.ListFeatureOptions)
	features.Post("/", middleware.AuthMiddleware(), controller.CreateFeatureOption)
	features.Get("/:id", middleware.AuthMiddleware(), controller.GetFeatureOption)
	features.Put("/:id", middleware.AuthMiddleware(), controller.UpdateFeatureOption)
	features.Delete("/:id", middleware.AuthMiddleware(), controller.DeleteFeatureOption)

	// Message Routes: iletişim formu herkese açık, silme yalnızca admin
	messages := api.Group("/messages")
	messages.Post("/", controller.CreateMessage)
	messages.Get("/", middleware.AuthMiddleware(), controller.ListMessages)
	messages.Get("/:id", middleware.AuthMiddleware(), controller.GetMessage)
	messages.Patch("/:id", middleware.AuthMiddleware(), controller.MarkMessageRead)
	messages.Delete("/:id", middleware.AuthMiddleware(), middleware.RequireAdmin(), controller.DeleteMessage)

	// Client Intake Routes
	intakes := api.Group("/client-intake", middleware.AuthMiddleware())
	intakes.Post("/", controller.CreateClientIntake)
	intakes.Get("/", controller.ListClientIntakes)
	intakes.Get("/:id", controller.GetClientIntake)
	intakes.Patch("/:id", controller.UpdateClientIntake)
	intakes.Delete("/:id", controller.DeleteClientIntake)

	// View tracking: sayaç ve istatistikler herkese açık
	views := api.Group("/track-view")
	views.Post("/", controller.TrackView)
	views.Get("/", controller.YearViewStats)
	views.Get("/month", controller.MonthViewTotal)
}

func main() {
	cfg := config.Load()

	database.InitDB(cfg.Mongo.URI, cfg.Mongo.DBName)
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx); err != nil {
		log.Printf("Index warning: %v", err)
	}

	seed.CreateDefaultAdmin(ctx, cfg.Admin)

	if err := email.InitEmailService(cfg.SMTP); err != nil {
		log.Printf("Email service disabled: %v", err)
	}

	if err := storage.InitStorage(cfg.Storage); err != nil {
		log.Fatal("Could not initialize storage:", err)
	}

	if err := location.Init(); err != nil {
		log.Fatal("Could not initialize location data:", err)
	}

	jwt.SetSecret(cfg.JWT.Secret)
	controller.InitAuthController(cfg)
	cron.InitResetTokenCleanupCron()

	app := fiber.New(fiber.Config{
		BodyLimit: 64 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.AllowedOrigins, ","),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
