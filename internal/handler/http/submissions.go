// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/utils"
	"github.com/MKhiriev/keeper-reveal/models"
)

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.submit")
		return
	}

	sub, err := h.services.SubmissionService.Submit(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.submit")
		return
	}

	logger.FromRequest(r).Info().Str("team", sub.TeamID).Msg("team selection submitted")
	utils.WriteJSON(w, sub, http.StatusCreated)
}

func (h *Handler) listSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.services.SubmissionService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listSubmissions")
		return
	}

	utils.WriteJSON(w, subs, http.StatusOK)
}

func (h *Handler) getSubmission(w http.ResponseWriter, r *http.Request) {
	team, err := teamParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getSubmission")
		return
	}

	sub, err := h.services.SubmissionService.Get(r.Context(), team)
	if err != nil {
		writeError(w, r, err, "*Handler.getSubmission")
		return
	}

	utils.WriteJSON(w, sub, http.StatusOK)
}

func (h *Handler) editSubmission(w http.ResponseWriter, r *http.Request) {
	team, err := teamParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.editSubmission")
		return
	}

	var req models.EditRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.editSubmission")
		return
	}

	sub, err := h.services.SubmissionService.Edit(r.Context(), team, req)
	if err != nil {
		writeError(w, r, err, "*Handler.editSubmission")
		return
	}

	logger.FromRequest(r).Info().Str("team", sub.TeamID).Msg("team selection edited")
	utils.WriteJSON(w, sub, http.StatusOK)
}

// manualReveal lets a team open its own submission once the deadline has
// passed and no countdown is running.
func (h *Handler) manualReveal(w http.ResponseWriter, r *http.Request) {
	team, err := teamParam(r)
	if err != nil {
		writeError(w, r, err, "*Handler.manualReveal")
		return
	}

	var req models.RevealRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.manualReveal")
		return
	}

	sub, err := h.services.RevealService.ManualReveal(r.Context(), team, req.Password)
	if err != nil {
		writeError(w, r, err, "*Handler.manualReveal")
		return
	}

	logger.FromRequest(r).Info().Str("team", sub.TeamID).Msg("team revealed manually")
	utils.WriteJSON(w, sub, http.StatusOK)
}
