package joinWaitlist

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventLottery/internal/lib/api/response"
	"eventLottery/internal/lib/logger/sl"
	"eventLottery/internal/service/waitlist"
	"eventLottery/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type JoinRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type JoinResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WaitlistJoiner
type WaitlistJoiner interface {
	Join(eventID, userID string, now time.Time) error
}

func New(log *slog.Logger, joiner WaitlistJoiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.waitlist.joinWaitlist.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req JoinRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		err = joiner.Join(eventID, req.UserID, time.Now())
		if err != nil {
			log.Error("failed to join waitlist", sl.Err(err))

			switch {
			case errors.Is(err, waitlist.ErrInvalidInput):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("event id and user id are required"))
			case errors.Is(err, waitlist.ErrRegistrationClosed):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("registration window is closed"))
			case errors.Is(err, waitlist.ErrAlreadyRegistered):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("user already has a registration for this event"))
			case errors.Is(err, storage.ErrWaitlistFull):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("waitlist is full"))
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to join waitlist"))
			}
			return
		}

		log.Info("user joined waitlist", slog.String("user_id", req.UserID))

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, JoinResponse{
		Response: response.OK(),
	})
}
