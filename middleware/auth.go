// middleware/auth.go
package middleware

import (
	"strings"

	"github.com/Jiromtrf/step4-app-backend-test/config"
	"github.com/Jiromtrf/step4-app-backend-test/utils"
	"github.com/gofiber/fiber/v2"
)

// Protected returns a handler that authenticates the Authorization bearer
// token and stores the subject user id in c.Locals("userID"). It rejects
// missing headers, malformed schemes, bad signatures, expired tokens and
// tokens without a subject claim, all with 401.
func Protected(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Missing authorization header"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid authorization header format"})
		}

		claims, err := utils.ParseToken(parts[1], cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid token"})
		}

		if claims.Subject == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid token"})
		}

		c.Locals("userID", claims.Subject)
		return c.Next()
	}
}

// GetUserID pulls the authenticated user id out of the request context.
func GetUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals("userID").(string)
	if !ok || userID == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "User not authenticated")
	}
	return userID, nil
}
