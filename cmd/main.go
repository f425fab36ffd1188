package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/atharv2608/alphaware-task-backend/config"
	"github.com/atharv2608/alphaware-task-backend/db"
	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/handler"
	repo "github.com/atharv2608/alphaware-task-backend/internal/jobboard/repository/postgres"
	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/service"
	applog "github.com/atharv2608/alphaware-task-backend/internal/log"
)

func main() {
	cfg := config.Load()
	logger := applog.New(cfg.Env)

	dbPool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer dbPool.Close()

	userRepo := repo.NewUserRepository(dbPool)
	jobRepo := repo.NewJobRepository(dbPool)

	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)
	tokenCipher := service.NewAESTokenCipher(cfg.EncryptionKey)
	userService := service.NewUserService(userRepo, tokenService, tokenCipher, logger)
	jobService := service.NewJobService(jobRepo, logger)

	userHandler := handler.NewUserHandler(userService, tokenService)
	jobHandler := handler.NewJobHandler(jobService)
	authMiddleware := handler.NewAuthMiddleware(userRepo, tokenService, tokenCipher)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			logger.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Something went wrong",
			})
		},
	})
	app.Use(recover.New())

	handler.RegisterRoutes(app, userHandler, jobHandler, authMiddleware)

	logger.Info().Str("port", cfg.Port).Msg("starting job board service")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
