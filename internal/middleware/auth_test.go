package middleware

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	app := fiber.New()
	app.Use(Auth(db))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		user, err := CurrentUser(c)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(user.Username)
	})

	return app, db
}

func TestAuth_AttachesUserForValidToken(t *testing.T) {
	app, db := newAuthTestApp(t)

	token := "token-value"
	require.NoError(t, db.Create(&models.User{
		Username: "test",
		Name:     "Test",
		Password: "hash",
		Token:    &token,
	}).Error)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuth_MissingOrUnknownToken(t *testing.T) {
	app, db := newAuthTestApp(t)

	token := "token-value"
	require.NoError(t, db.Create(&models.User{
		Username: "test",
		Name:     "Test",
		Password: "hash",
		Token:    &token,
	}).Error)

	// No header at all.
	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Unknown token.
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "wrong")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Logged-out users have a NULL token; an empty Authorization header must
// never match them.
func TestAuth_EmptyHeaderDoesNotMatchLoggedOutUsers(t *testing.T) {
	app, db := newAuthTestApp(t)

	require.NoError(t, db.Create(&models.User{
		Username: "test",
		Name:     "Test",
		Password: "hash",
	}).Error)

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCurrentUser_NoUser(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := CurrentUser(c)
		assert.ErrorIs(t, err, ErrUnauthorized)
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
}
