package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorCarriesContext(t *testing.T) {
	cause := stderrors.New("invalid syntax")
	err := NewParseError("record id", "borked", cause)

	assert.Equal(t, ErrorTypeParse, err.Type)
	assert.Equal(t, "PARSE_FAILED", err.Code)
	assert.Contains(t, err.Error(), "record id")
	assert.Contains(t, err.Error(), "borked")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "borked", err.Context["value"])
}

func TestIsErrorType(t *testing.T) {
	err := NewDatabaseError("insert project", stderrors.New("disk full"))

	assert.True(t, IsErrorType(err, ErrorTypeDatabase))
	assert.False(t, IsErrorType(err, ErrorTypeParse))
	assert.False(t, IsErrorType(stderrors.New("plain"), ErrorTypeDatabase))
}

func TestAsAppErrorUnwrapsWrappedErrors(t *testing.T) {
	inner := NewNotFoundError("user", "1")
	wrapped := stderrors.Join(stderrors.New("outer"), inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeNotFound, appErr.Type)
}

func TestGetUserMessage(t *testing.T) {
	assert.Equal(t, "user not found: 1", GetUserMessage(NewNotFoundError("user", "1")))
	assert.Contains(t, GetUserMessage(NewDatabaseError("query", nil)), "database error")
	assert.Equal(t, "plain", GetUserMessage(stderrors.New("plain")))
}

func TestWithContext(t *testing.T) {
	err := NewValidationError("date required", nil).WithContext("field", "date")
	assert.Equal(t, "date", err.Context["field"])
}
