package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jcr/golibro/internal/adapter/http/dto"
	"github.com/jcr/golibro/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	var imbalanced *domain.ImbalancedPostingError

	switch {
	case errors.Is(err, domain.ErrPostingNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicatePosting):
		return http.StatusConflict
	case errors.As(err, &imbalanced):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrMissingDocumentID):
		return http.StatusBadRequest
	case domain.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
