package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-model-vault/internal/logger"
	"github.com/MKhiriev/go-model-vault/internal/service"
	"github.com/MKhiriev/go-model-vault/internal/store"
	"github.com/MKhiriev/go-model-vault/internal/utils"
	"github.com/MKhiriev/go-model-vault/internal/validators"
	"github.com/MKhiriev/go-model-vault/models"
)

var errorStatusMap = map[error]int{
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUnknownUser:             http.StatusUnauthorized,
	service.ErrNotOwner:                http.StatusForbidden,
	service.ErrNoFileProvided:          http.StatusBadRequest,
	service.ErrUnsupportedFileType:     http.StatusBadRequest,
	service.ErrFileTooLarge:            http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrModelNotFound:      http.StatusNotFound,
	store.ErrRatingOutOfRange:   http.StatusBadRequest,

	ErrInvalidModelID: http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError translates a service or store error into the uniform JSON error
// body. Validation failures carry every message in an "errors" list; mapped
// sentinel errors keep their message; everything else collapses into a
// generic 500 so internals never leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		utils.WriteJSON(w, models.ValidationErrorResponse{Errors: vErr.Messages}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, status)
		return
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err)}, status)
}

// messageFromError reduces a wrapped error chain to the message of the
// matched sentinel, keeping response bodies stable across refactors of the
// wrapping text.
func messageFromError(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}
