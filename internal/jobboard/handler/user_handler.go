package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/dto"
	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/service"
	"github.com/atharv2608/alphaware-task-backend/pkg/constant"
)

type UserHandler struct {
	userService *service.UserService
	tokens      service.TokenGenerator
}

func NewUserHandler(userService *service.UserService, tokens service.TokenGenerator) *UserHandler {
	return &UserHandler{userService: userService, tokens: tokens}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid input",
		})
	}

	user, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}

	return respondOK(c, fiber.StatusCreated, dto.NewUserOutput(user), "User created")
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid input",
		})
	}

	out, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     constant.AccessTokenCookie,
		Value:    out.AccessToken,
		MaxAge:   int(h.tokens.Expiry().Seconds()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})

	return respondOK(c, fiber.StatusOK, out, "Logged in")
}
