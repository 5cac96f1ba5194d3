package acceptInvitation

import (
	"errors"
	"log/slog"
	"net/http"

	"eventLottery/internal/lib/api/response"
	"eventLottery/internal/lib/logger/sl"
	"eventLottery/internal/service/registration"
	"eventLottery/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type AcceptRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type AcceptResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=InvitationAccepter
type InvitationAccepter interface {
	Accept(eventID, userID string) error
}

func New(log *slog.Logger, accepter InvitationAccepter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.acceptInvitation.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req AcceptRequest

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

		err = accepter.Accept(eventID, req.UserID)
		if err != nil {
			log.Error("failed to accept invitation", sl.Err(err))

			switch {
			case errors.Is(err, registration.ErrInvalidInput):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("event id and user id are required"))
			case errors.Is(err, storage.ErrRegistrationNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("no invitation found for this user"))
			case errors.Is(err, registration.ErrNotSelected):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("registration is not awaiting a response"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to accept invitation"))
			}
			return
		}

		log.Info("invitation accepted", slog.String("user_id", req.UserID))

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, AcceptResponse{
		Response: response.OK(),
	})
}
