package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorIncludesWrapped(t *testing.T) {
	inner := errors.New("boom")
	err := Internal(inner)

	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
	assert.Contains(t, err.Error(), "boom")
	assert.ErrorIs(t, err, inner)
}

func TestNotFound_MapsTo404(t *testing.T) {
	err := NotFound("product", "p-1")
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvalidInput_MapsTo400(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidInput("bad page")))
}

func TestHTTPStatus_Sentinels(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrServiceUnavail, http.StatusServiceUnavailable},
		{errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, HTTPStatus(tt.err))
	}
}

func TestHTTPStatus_WrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", ErrNotFound)
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
}

func TestWrap(t *testing.T) {
	base := errors.New("low level")
	err := Wrap(base, "high level")
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "high level")
}
