package runLottery

import (
	"errors"
	"log/slog"
	"net/http"

	"eventLottery/internal/lib/api/response"
	"eventLottery/internal/lib/logger/sl"
	"eventLottery/internal/models"
	"eventLottery/internal/service/lottery"
	"eventLottery/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// RunRequest carries the number of entrants to select. A count of zero
// or less is a valid request yielding an empty draw.
type RunRequest struct {
	Count int `json:"count"`
}

type RunResponse struct {
	response.Response
	Result *models.LotteryResult `json:"result"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Runner
type Runner interface {
	Run(eventID string, count int) (*models.LotteryResult, error)
}

func New(log *slog.Logger, runner Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lottery.runLottery.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req RunRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		result, err := runner.Run(eventID, req.Count)
		if err != nil {
			log.Error("failed to run lottery", sl.Err(err))

			switch {
			case errors.Is(err, lottery.ErrInvalidInput):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("event id is required"))
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to run lottery"))
			}
			return
		}

		log.Info("lottery run", slog.Int("selected", len(result.EntrantIDs)))

		responseOK(w, r, result)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, result *models.LotteryResult) {
	render.JSON(w, r, RunResponse{
		Response: response.OK(),
		Result:   result,
	})
}
