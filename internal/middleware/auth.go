package middleware

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrUnauthorized is returned by CurrentUser when no user is attached to
// the request.
var ErrUnauthorized = errors.New("unauthorized")

const userLocalsKey = "user"

// Auth resolves the caller from the raw Authorization header value (the
// stored bearer token, no "Bearer " prefix). The request always proceeds;
// endpoints that need a caller use CurrentUser.
func Auth(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(fiber.HeaderAuthorization)
		if token != "" {
			var user models.User
			if err := db.Where("token = ?", token).First(&user).Error; err == nil {
				c.Locals(userLocalsKey, &user)
			}
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user attached by Auth, or
// ErrUnauthorized when the request carried no valid token.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	if user, ok := c.Locals(userLocalsKey).(*models.User); ok {
		return user, nil
	}
	return nil, ErrUnauthorized
}
