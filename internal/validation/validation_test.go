package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Username string  `json:"username" validate:"required,min=1,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Nickname *string `json:"nickname" validate:"omitempty,max=10"`
	Page     int     `json:"page" validate:"required,min=1"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(&samplePayload{
		Username: "test",
		Email:    "test@example.com",
		Page:     1,
	})
	assert.NoError(t, err)
}

func TestStruct_CollectsAllViolations(t *testing.T) {
	err := Struct(&samplePayload{Email: "wrong"})
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Violations, 3)

	byField := map[string]string{}
	for _, v := range verr.Violations {
		byField[v.Field] = v.Message
	}

	// Field paths use json names, not Go struct field names.
	assert.Contains(t, byField, "username")
	assert.Contains(t, byField, "email")
	assert.Contains(t, byField, "page")
	assert.Equal(t, "is required", byField["username"])
	assert.Equal(t, "must be a valid email address", byField["email"])
}

func TestStruct_OptionalFieldSkippedWhenAbsent(t *testing.T) {
	err := Struct(&samplePayload{
		Username: "test",
		Email:    "test@example.com",
		Page:     1,
		Nickname: nil,
	})
	assert.NoError(t, err)
}

func TestStruct_OptionalFieldValidatedWhenPresent(t *testing.T) {
	long := "way-too-long-nickname"
	err := Struct(&samplePayload{
		Username: "test",
		Email:    "test@example.com",
		Page:     1,
		Nickname: &long,
	})

	var verr *Error
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "nickname", verr.Violations[0].Field)
	assert.Equal(t, "must be at most 10 characters", verr.Violations[0].Message)
}

func TestError_MessageListsEveryViolation(t *testing.T) {
	err := &Error{Violations: []FieldViolation{
		{Field: "username", Message: "is required"},
		{Field: "email", Message: "must be a valid email address"},
	}}

	msg := err.Error()
	assert.True(t, strings.HasPrefix(msg, "validation failed:"))
	assert.Contains(t, msg, "username: is required")
	assert.Contains(t, msg, "email: must be a valid email address")
}
