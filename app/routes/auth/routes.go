package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/zohaib-han/Attendance-Management-System/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	login := app.Group("/api/login")
	login.Post("/logged", LoginAPI)
	login.Post("/register", RegisterAPI)

	// Anything other than POST on the login endpoint is a method error, not
	// a 404.
	login.All("/logged", func(c *fiber.Ctx) error {
		return c.Status(405).JSON(fiber.Map{"message": "Method not allowed. Use POST to login."})
	})
}

// AuthMiddleware validates the bearer token and attaches the Principal to
// the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string
	if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		tokenString = strings.TrimPrefix(auth, "Bearer ")
	}
	if tokenString == "" {
		tokenString = c.Cookies("jwt_token")
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"message": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"message": "Invalid token"})
	}

	c.Locals("principal", Principal{
		ID:    claims.UserID,
		Role:  claims.Role,
		Name:  claims.Name,
		Email: claims.Email,
	})
	return c.Next()
}

// GetPrincipal returns the Principal set by AuthMiddleware.
func GetPrincipal(c *fiber.Ctx) Principal {
	p, _ := c.Locals("principal").(Principal)
	return p
}

// RequireRole gates a route to one or more roles.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		for _, role := range roles {
			if p.Role == role {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"message": "Insufficient permissions"})
	}
}
