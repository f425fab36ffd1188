package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, users *UserHandler, jobs *JobHandler, auth *AuthMiddleware) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	user := app.Group("/user")
	user.Post("/register", users.Register)
	user.Post("/login", users.Login)

	// Everything under /jobs runs behind the auth gate.
	board := app.Group("/jobs", auth.RequireLogin)
	board.Post("/post", jobs.Post)
	board.Put("/edit", jobs.Edit)
	board.Delete("/delete", jobs.Delete)
	board.Post("/apply", jobs.Apply)
	board.Get("/get", jobs.GetAll)
	board.Get("/applications", jobs.Applicants)
}
