package refillSlots

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

type RefillResponse struct {
	response.Response
	Result *models.LotteryResult `json:"result"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Refiller
type Refiller interface {
	Refill(eventID string) (*models.LotteryResult, error)
}

func New(log *slog.Logger, refiller Refiller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lottery.refillSlots.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		result, err := refiller.Refill(eventID)
		if err != nil {
			log.Error("failed to refill slots", sl.Err(err))

			switch {
			case errors.Is(err, lottery.ErrInvalidInput):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("event id is required"))
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to refill slots"))
			}
			return
		}

		log.Info("slots refilled", slog.Int("selected", len(result.EntrantIDs)))

		responseOK(w, r, result)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, result *models.LotteryResult) {
	render.JSON(w, r, RefillResponse{
		Response: response.OK(),
		Result:   result,
	})
}
