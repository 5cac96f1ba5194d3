package leaveWaitlist

import (
	"errors"
	"log/slog"
	"net/http"

	"eventLottery/internal/lib/api/response"
	"eventLottery/internal/lib/logger/sl"
	"eventLottery/internal/service/waitlist"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type LeaveRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type LeaveResponse struct {
	response.Response
	Removed bool `json:"removed"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WaitlistLeaver
type WaitlistLeaver interface {
	Leave(eventID, userID string) (bool, error)
}

func New(log *slog.Logger, leaver WaitlistLeaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.waitlist.leaveWaitlist.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req LeaveRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		removed, err := leaver.Leave(eventID, req.UserID)
		if err != nil {
			log.Error("failed to leave waitlist", sl.Err(err))

			if errors.Is(err, waitlist.ErrInvalidInput) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("event id and user id are required"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to leave waitlist"))
			return
		}

		log.Info("leave waitlist handled",
			slog.String("user_id", req.UserID),
			slog.Bool("removed", removed),
		)

		responseOK(w, r, removed)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, removed bool) {
	render.JSON(w, r, LeaveResponse{
		Response: response.OK(),
		Removed:  removed,
	})
}
