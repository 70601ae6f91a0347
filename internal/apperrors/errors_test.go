package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		status int
	}{
		{"validation", Validation("bad"), http.StatusBadRequest},
		{"authentication", Authentication("who"), http.StatusUnauthorized},
		{"authorization", Authorization("no"), http.StatusForbidden},
		{"not found", NotFound("gone"), http.StatusNotFound},
		{"conflict", Conflict("dup"), http.StatusConflict},
		{"persistence", Persistence("db", errors.New("boom")), http.StatusInternalServerError},
		{"unknown kind", &Error{Kind: "WHATEVER"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus())
		})
	}
}

func TestError_IsAndUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Persistence("Internal server error", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", NotFound("Todo not found")), NotFound("Todo not found"))
	assert.False(t, errors.Is(NotFound("Todo not found"), NotFound("User not found")))
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, "NOT_FOUND: Todo not found", NotFound("Todo not found").Error())
}

func TestFrom(t *testing.T) {
	assert.Nil(t, From(nil))

	v := Validation("Invalid role")
	assert.Same(t, v, From(fmt.Errorf("ctx: %w", v)))

	plain := errors.New("plain")
	got := From(plain)
	assert.Equal(t, KindPersistence, got.Kind)
	assert.ErrorIs(t, got, plain)
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(Conflict("Email already exists"), KindConflict))
	assert.False(t, IsKind(Conflict("Email already exists"), KindNotFound))
	assert.False(t, IsKind(errors.New("x"), KindNotFound))
}
