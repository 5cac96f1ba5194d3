package getJoinableEvents

import (
	"log/slog"
	"net/http"
	"time"

	"eventLottery/internal/lib/api/response"
	"eventLottery/internal/lib/logger/sl"
	"eventLottery/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=JoinableLister
type JoinableLister interface {
	JoinableEvents(userID string, now time.Time) ([]models.Event, error)
}

func New(log *slog.Logger, lister JoinableLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getJoinableEvents.New"

		log = log.With(slog.String("op", op))

		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		events, err := lister.JoinableEvents(userID, time.Now())
		if err != nil {
			log.Error("failed to get joinable events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get joinable events"))
			return
		}

		log.Info("joinable events retrieved",
			slog.String("user_id", userID),
			slog.Int("count", len(events)),
		)

		responseOK(w, r, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
