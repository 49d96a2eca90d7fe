package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithJSON(w, http.StatusOK, map[string]string{"message": "ok"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, http.StatusNotFound, "card not found")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp Response
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "Not Found", resp.Error)
	assert.Equal(t, "card not found", resp.Message)
	assert.False(t, resp.Timestamp.IsZero())
	assert.Nil(t, resp.FieldErrors)
}

func TestRespondWithFieldErrors(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithFieldErrors(w, "validation failed", map[string]string{
		"firstName": "is required",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp Response
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "validation failed", resp.Message)
	assert.Equal(t, "is required", resp.FieldErrors["firstName"])
}

func TestRespondWithDomainError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"conflict", domain.ErrConflict, http.StatusBadRequest},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"card operation", fmt.Errorf("%w: card is already blocked", domain.ErrCardOperation), http.StatusBadRequest},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusBadRequest},
		{"crypto", domain.ErrCrypto, http.StatusInternalServerError},
		{"unknown", fmt.Errorf("db exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondWithDomainError(w, tt.err)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
