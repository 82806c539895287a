package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/quantity262/Myweb/internal/apperr"
	"github.com/quantity262/Myweb/internal/api/httpx"
)

// writeServiceError maps service errors onto the HTTP surface. Anything
// not in the taxonomy is logged with full detail and answered with a
// generic 500; raw store errors never reach the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrMissingFields),
		errors.Is(err, apperr.ErrPasswordTooShort),
		errors.Is(err, apperr.ErrInvalidRole),
		errors.Is(err, apperr.ErrEmptyContent),
		errors.Is(err, apperr.ErrContentTooLong),
		errors.Is(err, apperr.ErrInvalidFilename):
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, apperr.ErrUsernameTaken),
		errors.Is(err, apperr.ErrEmailTaken):
		httpx.WriteError(w, http.StatusConflict, "conflict", err.Error(), nil)
	case errors.Is(err, apperr.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", err.Error(), nil)
	case errors.Is(err, apperr.ErrForbidden),
		errors.Is(err, apperr.ErrSelfModification):
		httpx.WriteError(w, http.StatusForbidden, "forbidden", err.Error(), nil)
	case errors.Is(err, apperr.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "not found", nil)
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
