package handlers_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAddress(t *testing.T, app *fiber.App, token string, contactID float64) float64 {
	t.Helper()

	resp, body := doJSON(t, app, "POST", fmt.Sprintf("/api/contacts/%.0f/addresses", contactID), token, map[string]string{
		"street":      "jalan test",
		"city":        "kota",
		"province":    "provinsi",
		"country":     "indonesia",
		"postal_code": "12345",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return body["data"].(map[string]any)["id"].(float64)
}

func TestCreateAddress(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "test")
	contactID := createContact(t, app, token)

	// Empty required fields: field-level errors.
	resp, body := doJSON(t, app, "POST", fmt.Sprintf("/api/contacts/%.0f/addresses", contactID), token, map[string]string{
		"country":     "",
		"postal_code": "",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	violations, ok := body["errors"].([]any)
	require.True(t, ok)
	assert.Len(t, violations, 2)

	// Fully populated: exact echo plus a generated id.
	resp, body = doJSON(t, app, "POST", fmt.Sprintf("/api/contacts/%.0f/addresses", contactID), token, map[string]string{
		"street":      "jalan test",
		"city":        "kota",
		"province":    "provinsi",
		"country":     "indonesia",
		"postal_code": "12345",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.NotZero(t, data["id"])
	assert.Equal(t, "jalan test", data["street"])
	assert.Equal(t, "kota", data["city"])
	assert.Equal(t, "provinsi", data["province"])
	assert.Equal(t, "indonesia", data["country"])
	assert.Equal(t, "12345", data["postal_code"])

	// Unknown contact in the ownership chain.
	resp, _ = doJSON(t, app, "POST", fmt.Sprintf("/api/contacts/%.0f/addresses", contactID+1), token, map[string]string{
		"country":     "indonesia",
		"postal_code": "12345",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetAddress(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "test")
	contactID := createContact(t, app, token)
	addressID := createAddress(t, app, token, contactID)

	resp, body := doJSON(t, app, "GET", fmt.Sprintf("/api/contacts/%.0f/addresses/%.0f", contactID, addressID), token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "indonesia", data["country"])

	resp, _ = doJSON(t, app, "GET", fmt.Sprintf("/api/contacts/%.0f/addresses/%.0f", contactID, addressID+1), token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetAddress_UnderDifferentContact(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "test")
	first := createContact(t, app, token)
	addressID := createAddress(t, app, token, first)

	resp, body := doJSON(t, app, "POST", "/api/contacts", token, map[string]string{
		"first_name": "second",
		"email":      "second@example.com",
		"phone":      "8888",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	second := body["data"].(map[string]any)["id"].(float64)

	// The address exists but belongs to the first contact.
	resp, _ = doJSON(t, app, "GET", fmt.Sprintf("/api/contacts/%.0f/addresses/%.0f", second, addressID), token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListAddresses(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "test")
	contactID := createContact(t, app, token)
	createAddress(t, app, token, contactID)

	resp, body := doJSON(t, app, "GET", fmt.Sprintf("/api/contacts/%.0f/addresses", contactID), token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]any), 1)
}

func TestUpdateAddress(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "test")
	contactID := createContact(t, app, token)
	addressID := createAddress(t, app, token, contactID)

	resp, body := doJSON(t, app, "PUT", fmt.Sprintf("/api/contacts/%.0f/addresses/%.0f", contactID, addressID), token, map[string]string{
		"postal_code": "54321",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "54321", data["postal_code"])
	assert.Equal(t, "indonesia", data["country"])
	assert.Equal(t, "jalan test", data["street"])
}

func TestRemoveAddress(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "test")
	contactID := createContact(t, app, token)
	addressID := createAddress(t, app, token, contactID)

	resp, body := doJSON(t, app, "DELETE", fmt.Sprintf("/api/contacts/%.0f/addresses/%.0f", contactID, addressID), token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["data"])

	resp, _ = doJSON(t, app, "GET", fmt.Sprintf("/api/contacts/%.0f/addresses/%.0f", contactID, addressID), token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// With the address gone the contact can be deleted.
	resp, body = doJSON(t, app, "DELETE", fmt.Sprintf("/api/contacts/%.0f", contactID), token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["data"])
}
