package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperr "github.com/atharv2608/alphaware-task-backend/internal/errors"
	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/domain"
	"github.com/atharv2608/alphaware-task-backend/internal/jobboard/service"
	"github.com/atharv2608/alphaware-task-backend/pkg/constant"
)

const authContextKey = "authContext"

type AuthMiddleware struct {
	users  domain.UserRepository
	tokens service.TokenGenerator
	cipher service.TokenCipher
}

func NewAuthMiddleware(users domain.UserRepository, tokens service.TokenGenerator, cipher service.TokenCipher) *AuthMiddleware {
	return &AuthMiddleware{users: users, tokens: tokens, cipher: cipher}
}

// RequireLogin resolves the request's credential to an AuthContext or
// rejects it. Checks run in order and stop at the first failure.
func (m *AuthMiddleware) RequireLogin(c *fiber.Ctx) error {
	encrypted := c.Cookies(constant.AccessTokenCookie)
	if encrypted == "" {
		header := c.Get(fiber.HeaderAuthorization)
		if strings.HasPrefix(header, "Bearer ") {
			encrypted = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if encrypted == "" {
		return respondError(c, apperr.ErrMissingToken)
	}

	signed, err := m.cipher.Decrypt(encrypted)
	if err != nil {
		return respondError(c, apperr.ErrInvalidToken)
	}

	claims, err := m.tokens.Verify(signed)
	if err != nil {
		return respondError(c, apperr.ErrInvalidToken)
	}

	user, err := m.users.GetByID(c.UserContext(), claims.UserID)
	if err != nil {
		return respondError(c, err)
	}
	if user == nil {
		// The token itself was valid; its subject is gone.
		return respondError(c, apperr.ErrStaleToken)
	}

	user.PasswordHash = ""

	c.Locals(authContextKey, domain.AuthContext{
		User:    user,
		IsAdmin: user.Role == constant.RoleAdmin,
	})

	return c.Next()
}

// AuthFromCtx returns the AuthContext attached by RequireLogin.
func AuthFromCtx(c *fiber.Ctx) domain.AuthContext {
	actor, _ := c.Locals(authContextKey).(domain.AuthContext)
	return actor
}
