package getWaitlistCount

import (
	"log/slog"
	"net/http"

	"eventLottery/internal/lib/api/response"
	"eventLottery/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type CountResponse struct {
	response.Response
	Count int `json:"count"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WaitlistCounter
type WaitlistCounter interface {
	WaitlistCount(eventID string) (int, error)
}

func New(log *slog.Logger, counter WaitlistCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getWaitlistCount.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		count, err := counter.WaitlistCount(eventID)
		if err != nil {
			log.Error("failed to count waitlist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to count waitlist"))
			return
		}

		log.Info("waitlist counted",
			slog.String("event_id", eventID),
			slog.Int("count", count),
		)

		responseOK(w, r, count)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, count int) {
	render.JSON(w, r, CountResponse{
		Response: response.OK(),
		Count:    count,
	})
}
