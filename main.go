package main

import (
	"log"

	"edumaster/config"
	"edumaster/middleware"
	"edumaster/mirror"
	courseRoutes "edumaster/routers/courseRoutes"
	sessionRoutes "edumaster/routers/sessionRoutes"
	userRoutes "edumaster/routers/userRoutes"
	"edumaster/store"
	"edumaster/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	m := mirror.FromConfig()
	store.Init(m)

	// The mirror is authoritative when present; seed data only loads without one.
	if err := store.Data.Hydrate(); err != nil {
		if m != nil {
			log.Printf("Hydration from remote store failed: %v. Using seed data.", err)
		}
		store.Data.Seed()
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,X-Role",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Use(middleware.RoleHeader)

	courseRoutes.SetupCourseRoutes(app)
	sessionRoutes.SetupSessionRoutes(app)
	userRoutes.SetupUserRoutes(app)

	utils.InitializeReconcileScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
