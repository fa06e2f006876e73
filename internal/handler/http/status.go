package http

import (
	"net/http"

	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/utils"
	"github.com/MKhiriev/keeper-reveal/models"
)

func (h *Handler) getDeadline(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.StatusService.Deadline(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.getDeadline")
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) getCountdown(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.StatusService.Countdown(r.Context()), http.StatusOK)
}

func (h *Handler) startCountdown(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	outcome, err := h.services.StatusService.StartCountdown(ctx)
	if err != nil {
		writeError(w, r, err, "*Handler.startCountdown")
		return
	}

	utils.WriteJSON(w, models.OutcomeResponse{
		Outcome:   outcome,
		Countdown: h.services.StatusService.Countdown(ctx),
	}, http.StatusOK)
}

func (h *Handler) getBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.services.StatusService.Board(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.getBoard")
		return
	}

	utils.WriteJSON(w, board, http.StatusOK)
}

// watch upgrades to a websocket. The board is the first message; store
// changes and countdown updates follow as they happen.
func (h *Handler) watch(w http.ResponseWriter, r *http.Request) {
	board, err := h.services.StatusService.Board(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.watch")
		return
	}

	// the upgrader answers failed handshakes itself
	if err = h.hub.Serve(w, r, models.Push{Kind: models.PushBoard, Board: &board}); err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.watch").Msg("websocket handshake failed")
	}
}

// getServerVersion answers in plain text so the terminal client can show it
// as is.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}
