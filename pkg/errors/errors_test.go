package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConstructorsMapToStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		status int
		check  func(error) bool
	}{
		{"validation", NewValidationError("bad"), http.StatusBadRequest, IsValidation},
		{"not found", NewNotFoundError("coffee"), http.StatusNotFound, IsNotFound},
		{"conflict", NewConflictError("dup"), http.StatusConflict, IsConflict},
		{"referential", NewReferentialError("missing coffee"), http.StatusBadRequest, IsReferential},
		{"internal", NewInternalError("boom"), http.StatusInternalServerError, IsInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.True(t, tt.check(tt.err))
			assert.True(t, tt.check(fmt.Errorf("wrapped: %w", tt.err)))
		})
	}

	assert.False(t, IsValidation(NewReferentialError("x")))
	assert.Equal(t, "coffee not found", NewNotFoundError("coffee").Message)
}

func TestWrapKeepsType(t *testing.T) {
	original := NewConflictError("review already exists")
	wrapped := Wrap(original, "create review")

	assert.True(t, IsConflict(wrapped))
	assert.Equal(t, "create review: review already exists", GetAppError(wrapped).Message)
	assert.Equal(t, "review already exists", original.Message)

	plain := Wrap(stderrors.New("disk"), "seed")
	assert.True(t, IsInternal(plain))
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestErrorHandlerRendersAppError(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/coffees/Mocha", nil)
	req.Header.Set("X-Request-ID", "req-1")
	rec := httptest.NewRecorder()

	h.Handle(rec, req, NewNotFoundError("coffee").WithCode("COFFEE_NOT_FOUND"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Type)
	assert.Equal(t, "COFFEE_NOT_FOUND", body.Code)
	assert.Equal(t, "req-1", body.RequestID)
}

func TestErrorHandlerHidesUnknownErrors(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	rec := httptest.NewRecorder()

	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil), stderrors.New("secret detail"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret detail")
}

func TestMiddlewareRecoversPanics(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	handler := h.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL")
}
