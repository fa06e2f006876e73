package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/utils"
)

// auth is an HTTP middleware that admits only the commissioner.
//
// It reads the bearer token from the "Authorization" header, validates it via
// [service.CommissionerService.ParseToken] and stores the parsed token in the
// request context under [utils.TokenCtxKey].
//
// Requests are rejected with 401 Unauthorized when the header is missing or
// malformed, or when the token is expired or invalid. A valid token issued to
// anyone but the commissioner yields 403 Forbidden.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader, "*Handler.auth")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		ctx := r.Context()
		token, err := h.services.CommissionerService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "*Handler.auth")
			return
		}

		log.Debug().Str("subject", token.Subject).Msg("commissioner authenticated")

		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
