package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/bankcards/internal/domain"
	"go.uber.org/zap"
)

// Response is the error envelope every non-2xx answer uses.
type Response struct {
	Timestamp   time.Time         `json:"timestamp"`
	Status      int               `json:"status"`
	Error       string            `json:"error"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{
		Timestamp: time.Now(),
		Status:    code,
		Error:     http.StatusText(code),
		Message:   message,
	})
}

func RespondWithFieldErrors(w http.ResponseWriter, message string, fieldErrors map[string]string) {
	RespondWithJSON(w, http.StatusBadRequest, Response{
		Timestamp:   time.Now(),
		Status:      http.StatusBadRequest,
		Error:       http.StatusText(http.StatusBadRequest),
		Message:     message,
		FieldErrors: fieldErrors,
	})
}

// RespondWithDomainError maps a service error kind to its HTTP status.
func RespondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		RespondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrCardOperation),
		errors.Is(err, domain.ErrInsufficientFunds):
		RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrCrypto):
		RespondWithError(w, http.StatusInternalServerError, err.Error())
	default:
		RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
