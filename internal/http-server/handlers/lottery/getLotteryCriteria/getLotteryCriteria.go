package getLotteryCriteria

import (
	"log/slog"
	"net/http"

	"eventLottery/internal/lib/api/response"

	"github.com/go-chi/render"
)

type CriteriaResponse struct {
	response.Response
	Criteria string `json:"criteria"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CriteriaProvider
type CriteriaProvider interface {
	CriteriaMarkdown() string
}

func New(log *slog.Logger, provider CriteriaProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.lottery.getLotteryCriteria.New"

		log = log.With(slog.String("op", op))

		criteria := provider.CriteriaMarkdown()

		log.Info("lottery criteria retrieved", slog.Int("length", len(criteria)))

		render.JSON(w, r, CriteriaResponse{
			Response: response.OK(),
			Criteria: criteria,
		})
	}
}
