package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_Nil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestToDomainError_KeepsDomainErrors(t *testing.T) {
	wrapped := fmt.Errorf("create staff: %w", NewValidationError("All fields are required", map[string]any{"missing": []string{"email"}}))

	de := ToDomainError(wrapped)
	require.NotNil(t, de)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	assert.Equal(t, CodeValidationFailed, de.Code)
	assert.Equal(t, "All fields are required", de.Message)
	assert.Equal(t, []string{"email"}, de.Details["missing"])
}

func TestToDomainError_StorageHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5432: connection refused")
	err := NewStorageError("Database error", cause)

	de := ToDomainError(err)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Equal(t, "Database error", de.Message)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsStorage(err))
	assert.False(t, IsValidation(err))
}

func TestToDomainError_FiberError(t *testing.T) {
	de := ToDomainError(fiber.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	assert.Equal(t, "NOT_FOUND", de.Code)

	cases := []struct {
		err  *fiber.Error
		want string
	}{
		{fiber.ErrMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{fiber.ErrRequestEntityTooLarge, "REQUEST_ENTITY_TOO_LARGE"},
		{fiber.ErrTeapot, "IM_A_TEAPOT"},
		{fiber.NewError(499, "client closed"), "HTTP_499"},
		{fiber.ErrServiceUnavailable, CodeInternalError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ToDomainError(tc.err).Code, tc.err.Message)
	}
}

func TestToDomainError_Unknown(t *testing.T) {
	de := ToDomainError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Equal(t, CodeInternalError, de.Code)
	assert.Equal(t, "internal server error", de.Message)
}
