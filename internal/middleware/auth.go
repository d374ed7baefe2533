package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/johnpaulpatigas/focusflow-api/internal/domain"
	"github.com/johnpaulpatigas/focusflow-api/internal/port"
)

// AuthRequired creates a Fiber middleware that verifies the bearer token
// against the identity provider and injects a UserContext into the request
// context. Verification is fully delegated: no token is parsed or trusted
// locally, so the check short-circuits before any store access.
func AuthRequired(identity port.IdentityProvider) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := bearerToken(c.Get("Authorization"))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "No token provided",
			})
		}

		user, err := identity.VerifyToken(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		c.Locals("user", &domain.UserContext{UserID: user.ID, Email: user.Email})
		c.Locals("access_token", token)

		return c.Next()
	}
}

// GetUserContext extracts the UserContext from Fiber locals.
func GetUserContext(c fiber.Ctx) *domain.UserContext {
	u, ok := c.Locals("user").(*domain.UserContext)
	if !ok {
		return nil
	}
	return u
}

// GetAccessToken returns the raw bearer token of the current request, for
// call-throughs that act on the token's user (password update).
func GetAccessToken(c fiber.Ctx) string {
	t, ok := c.Locals("access_token").(string)
	if !ok {
		return ""
	}
	return t
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
