package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/utils"
	"github.com/MKhiriev/keeper-reveal/models"
)

// commissionerLogin exchanges the commissioner password for a JWT. The token
// is returned both in the Authorization header and in the body.
func (h *Handler) commissionerLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.commissionerLogin")
		return
	}

	token, err := h.services.CommissionerService.Login(r.Context(), req.Password)
	if err != nil {
		writeError(w, r, err, "*Handler.commissionerLogin")
		return
	}

	log.Info().Msg("commissioner logged in")

	resp := models.TokenResponse{Token: token.SignedString}
	if token.ExpiresAt != nil {
		resp.ExpiresAt = token.ExpiresAt.Time
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, resp, http.StatusOK)
}
