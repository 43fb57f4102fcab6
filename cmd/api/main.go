package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/propelhq/propel-be/internal/config"
	"github.com/propelhq/propel-be/internal/database"
	"github.com/propelhq/propel-be/internal/handler"
	"github.com/propelhq/propel-be/internal/middleware"
	"github.com/propelhq/propel-be/internal/repository"
	"github.com/propelhq/propel-be/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	cfg := config.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure database schema")
	}
	if err := database.Seed(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, caching disabled")
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("MinIO unavailable, export archiving disabled")
		minioClient = nil
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers)

	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	clients := api.Group("/clients")
	clients.Get("/", h.Client.List)
	clients.Post("/", h.Client.Create)
	clients.Get("/:id", h.Client.Get)
	clients.Put("/:id", h.Client.Update)
	clients.Delete("/:id", h.Client.Delete)

	templates := api.Group("/templates")
	templates.Get("/", h.Template.List)
	templates.Post("/", h.Template.Create)
	templates.Get("/:id", h.Template.Get)
	templates.Delete("/:id", h.Template.Delete)

	proposals := api.Group("/proposals")
	proposals.Get("/", h.Proposal.List)
	proposals.Post("/", h.Proposal.Create)
	proposals.Get("/:id", h.Proposal.Get)
	proposals.Put("/:id", h.Proposal.Update)
	proposals.Delete("/:id", h.Proposal.Delete)
	proposals.Post("/:id/export", h.Proposal.Export)
	proposals.Post("/:id/send", h.Proposal.Send)

	badges := api.Group("/badges")
	badges.Get("/", h.Badge.List)
	badges.Get("/:id", h.Badge.Get)

	users := api.Group("/users")
	users.Get("/:userId/achievements", h.Achievement.ListUserAchievements)
	users.Get("/:userId/activities", h.Achievement.ListUserActivities)

	api.Post("/activities", h.Achievement.RecordActivity)

	crm := api.Group("/crm")
	crm.Get("/connections", h.CRM.Connections)
	crm.Post("/connect/:provider", h.CRM.Connect)
	crm.Get("/:provider/clients", h.CRM.Clients)
	crm.Post("/:provider/import", h.CRM.Import)

	api.Get("/dashboard/stats", h.Dashboard.Stats)
}
