package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	db *gorm.DB,
	userHandler *handlers.UserHandler,
	contactHandler *handlers.ContactHandler,
	addressHandler *handlers.AddressHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Resolve the caller from the Authorization header; never rejects on
	// its own, endpoints check for a user where they need one.
	api.Use(middleware.Auth(db))

	api.Get("/health", healthHandler.Check)

	// Users
	api.Post("/users", userHandler.Register)
	api.Post("/users/login", userHandler.Login)
	api.Get("/users/current", userHandler.Current)
	api.Patch("/users/current", userHandler.Update)
	api.Delete("/users/current", userHandler.Logout)

	// Contacts
	api.Post("/contacts", contactHandler.Create)
	api.Get("/contacts", contactHandler.Search)
	api.Get("/contacts/:contactId", contactHandler.Get)
	api.Put("/contacts/:contactId", contactHandler.Update)
	api.Delete("/contacts/:contactId", contactHandler.Remove)

	// Addresses, nested under their owning contact
	api.Post("/contacts/:contactId/addresses", addressHandler.Create)
	api.Get("/contacts/:contactId/addresses", addressHandler.List)
	api.Get("/contacts/:contactId/addresses/:addressId", addressHandler.Get)
	api.Put("/contacts/:contactId/addresses/:addressId", addressHandler.Update)
	api.Delete("/contacts/:contactId/addresses/:addressId", addressHandler.Remove)
}
