package services

import (
	"fmt"
	"testing"

	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/contact-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique shared-cache DSN so each test gets its own in-memory DB
	// that survives across pooled connections.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.Address{},
		&models.SystemLog{},
	))

	return db
}

func registerTestUser(t *testing.T, svc *UserService, username string) *models.User {
	t.Helper()

	_, err := svc.Register(&dto.RegisterUserRequest{
		Username: username,
		Password: "secret",
		Name:     "Test User",
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, svc.db.Where("username = ?", username).First(&user).Error)
	return &user
}

func createTestContact(t *testing.T, svc *ContactService, user *models.User) *dto.ContactResponse {
	t.Helper()

	lastName := "test"
	resp, err := svc.Create(user, &dto.CreateContactRequest{
		FirstName: "test",
		LastName:  &lastName,
		Email:     "test@example.com",
		Phone:     "9999",
	})
	require.NoError(t, err)
	return resp
}

func str(s string) *string {
	return &s
}
