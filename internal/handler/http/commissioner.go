// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/utils"
	"github.com/MKhiriev/keeper-reveal/models"
)

func (h *Handler) setDeadline(w http.ResponseWriter, r *http.Request) {
	var req models.DeadlineRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.setDeadline")
		return
	}

	if err := h.services.CommissionerService.SetDeadline(r.Context(), req.Deadline); err != nil {
		writeError(w, r, err, "*Handler.setDeadline")
		return
	}

	logger.FromRequest(r).Info().Time("deadline", req.Deadline).Msg("deadline set")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearDeadline(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CommissionerService.ClearDeadline(r.Context()); err != nil {
		writeError(w, r, err, "*Handler.clearDeadline")
		return
	}

	logger.FromRequest(r).Info().Msg("deadline cleared")
	w.WriteHeader(http.StatusNoContent)
}

// forceReveal starts the countdown regardless of the deadline.
func (h *Handler) forceReveal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	outcome, err := h.services.CommissionerService.ForceReveal(ctx)
	if err != nil {
		writeError(w, r, err, "*Handler.forceReveal")
		return
	}

	utils.WriteJSON(w, models.OutcomeResponse{
		Outcome:   outcome,
		Countdown: h.services.StatusService.Countdown(ctx),
	}, http.StatusOK)
}

// revealAll runs the mass reveal at once. Teams that fail are reported with
// 207 Multi-Status.
func (h *Handler) revealAll(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.RevealService.RevealAll(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.revealAll")
		return
	}

	logger.FromRequest(r).Info().
		Int("revealed", len(report.Revealed)).
		Int("skipped", report.Skipped).
		Msg("mass reveal finished")
	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) testCountdown(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.services.CommissionerService.TestCountdown(ctx); err != nil {
		writeError(w, r, err, "*Handler.testCountdown")
		return
	}

	utils.WriteJSON(w, h.services.StatusService.Countdown(ctx), http.StatusAccepted)
}

func (h *Handler) clearSubmissions(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CommissionerService.ClearSubmissions(r.Context()); err != nil {
		writeError(w, r, err, "*Handler.clearSubmissions")
		return
	}

	logger.FromRequest(r).Warn().Msg("all submissions cleared")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CommissionerService.Reset(r.Context()); err != nil {
		writeError(w, r, err, "*Handler.reset")
		return
	}

	logger.FromRequest(r).Warn().Msg("reveal state reset")
	w.WriteHeader(http.StatusNoContent)
}

// export is served behind withSignature.
func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.services.CommissionerService.Export(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.export")
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="keeper-reveal-export.json"`)
	utils.WriteJSON(w, snapshot, http.StatusOK)
}
