package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/iho/finboard/internal/adapter/http/dto"
	"github.com/iho/finboard/internal/domain"
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
	switch {
	case errors.Is(err, domain.ErrCostNotFound),
		errors.Is(err, domain.ErrRevenueNotFound),
		errors.Is(err, domain.ErrGoalNotFound),
		errors.Is(err, domain.ErrEntityNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrInvalidFrequency),
		errors.Is(err, domain.ErrMissingOwner),
		errors.Is(err, domain.ErrInvalidGoalName),
		errors.Is(err, domain.ErrInvalidEntityName),
		errors.Is(err, domain.ErrInvalidEntityKind),
		errors.Is(err, domain.ErrDescriptionTooLong),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, domain.ErrInsufficientRole):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseDateQuery parses a YYYY-MM-DD query parameter, defaulting to now.
func parseDateQuery(r *http.Request, key string) (time.Time, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", val)
}

// ownerFromQuery resolves the owner scope of a read request from
// entity_type/entity_id query parameters, defaulting to the actor's
// personal records.
func ownerFromQuery(r *http.Request, actor *domain.User) domain.OwnerKey {
	ownerID := r.URL.Query().Get("entity_id")
	if ownerID == "" {
		return domain.UserOwner(actor.ID)
	}
	if domain.OwnerType(r.URL.Query().Get("entity_type")) == domain.OwnerEntity {
		return domain.EntityOwner(ownerID)
	}
	return domain.UserOwner(ownerID)
}
