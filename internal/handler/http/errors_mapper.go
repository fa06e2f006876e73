package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/keeper-reveal/internal/countdown"
	"github.com/MKhiriev/keeper-reveal/internal/crypto"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/service"
	"github.com/MKhiriev/keeper-reveal/internal/store"
	"github.com/MKhiriev/keeper-reveal/internal/utils"
	"github.com/MKhiriev/keeper-reveal/models"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is checked in order; the first match wins. Validation errors
// are wrapped in service.ErrInvalidDataProvided.
var errorStatuses = []errorStatus{
	{service.ErrWrongSecret, http.StatusUnauthorized},
	{crypto.ErrMalformedCiphertext, http.StatusUnauthorized},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{service.ErrCommissionerRoleIsRequired, http.StatusForbidden},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrTeamMismatch, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrEmptyTeam, http.StatusBadRequest},

	{store.ErrNotFound, http.StatusNotFound},

	{store.ErrAlreadyExists, http.StatusConflict},
	{store.ErrSubmissionRevealed, http.StatusConflict},
	{service.ErrSubmissionsLocked, http.StatusConflict},
	{service.ErrAlreadyRevealed, http.StatusConflict},
	{service.ErrManualRevealUnavailable, http.StatusConflict},
	{service.ErrDeadlineNotReached, http.StatusConflict},
	{countdown.ErrCountdownActive, http.StatusConflict},

	{store.ErrStoreUnavailable, http.StatusServiceUnavailable},
	{service.ErrCommissionerNotConfigured, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its status. A partial reveal is not a
// plain error: the report goes back with 207 Multi-Status.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	log := logger.FromRequest(r)

	var partial *service.PartialRevealFailureError
	if errors.As(err, &partial) {
		log.Warn().Err(err).Str("func", fn).Msg("reveal finished with failures")
		utils.WriteJSON(w, partial.Report, http.StatusMultiStatus)
		return
	}

	status := statusFromError(err)
	message := err.Error()
	switch {
	case errors.Is(err, service.ErrWrongSecret):
		message = service.ErrWrongSecret.Error()
	case status == http.StatusInternalServerError:
		message = http.StatusText(status)
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Send()
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", status).Send()
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
