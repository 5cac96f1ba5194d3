package reclaimSelections

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"eventLottery/internal/lib/api/response"
	"eventLottery/internal/lib/logger/sl"
	"eventLottery/internal/service/lottery"
	"eventLottery/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ReclaimRequest struct {
	// Deadline is an RFC3339 instant; selections made strictly before it
	// are reclaimed. When omitted, the configured response window is
	// subtracted from the current time.
	Deadline string `json:"deadline,omitempty"`
}

type ReclaimResponse struct {
	response.Response
	Cancelled int `json:"cancelled"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Reclaimer
type Reclaimer interface {
	CancelNonResponders(eventID string, deadline time.Time) (int, error)
}

func New(log *slog.Logger, reclaimer Reclaimer, responseWindow time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lottery.reclaimSelections.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req ReclaimRequest

		// The body is optional; an absent deadline falls back to the
		// configured response window.
		err := render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		deadline := time.Now().Add(-responseWindow)
		if req.Deadline != "" {
			deadline, err = time.Parse(time.RFC3339, req.Deadline)
			if err != nil {
				log.Error("invalid deadline format", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid deadline format"))
				return
			}
		}

		cancelled, err := reclaimer.CancelNonResponders(eventID, deadline)
		if err != nil {
			log.Error("failed to reclaim selections", sl.Err(err))

			switch {
			case errors.Is(err, lottery.ErrInvalidInput):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("event id and deadline are required"))
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to reclaim selections"))
			}
			return
		}

		log.Info("selections reclaimed", slog.Int("cancelled", cancelled))

		responseOK(w, r, cancelled)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, cancelled int) {
	render.JSON(w, r, ReclaimResponse{
		Response:  response.OK(),
		Cancelled: cancelled,
	})
}
