package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Semavi7/who-estate-backend-different/internal/model"
	"github.com/Semavi7/who-estate-backend-different/pkg/utils/jwt"
)

const accessTokenCookie = "accessToken"

// AuthMiddleware Authorization header'ından ya da cookie'den tokeni doğrular
// ve claims'i c.Locals("user") içine koyar
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Access token required",
			})
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// RequireRoles handler bazlı rol kontrolü, AuthMiddleware'den sonra kullanılır
func RequireRoles(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*jwt.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication required",
			})
		}

		for _, role := range allowedRoles {
			if claims.Roles == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Insufficient permissions",
		})
	}
}

// RequireAdmin kullanıcı oluşturma/silme gibi uçlar için kısayol
func RequireAdmin() fiber.Handler {
	return RequireRoles(model.RoleAdmin)
}

func extractToken(c *fiber.Ctx) string {
	if auth := c.Get(fiber.HeaderAuthorization); auth != "" {
		if strings.HasPrefix(auth, "Bearer ") {
			return strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return c.Cookies(accessTokenCookie)
}
