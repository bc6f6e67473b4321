package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "bananalytics-backend/pkg/errors"
)

// respondJSON writes data as a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

// respondError writes an error envelope
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]interface{}{
		"error":   true,
		"message": message,
		"code":    status,
	})
}

// respondQueryError translates a query bus failure into an HTTP response.
// Validation failures map to 400; typed application errors carry their own
// status; everything else propagates as 500, matching the policy of
// logging once and re-raising unchanged.
func respondQueryError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		respondError(w, logger, http.StatusBadRequest, err.Error())
		return
	}
	respondError(w, logger, apperrors.HTTPStatusOf(err), err.Error())
}
