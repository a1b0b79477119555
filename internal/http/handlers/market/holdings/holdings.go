// Package holdings реализует HTTP-обработчик чтения витрины holdings.
// Конечная точка публичная, данные общие для всех клиентов.
package holdings

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/portfolio-tracker/internal/http/response"
	"github.com/magabrotheeeer/portfolio-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-tracker/internal/models"
)

// Service описывает интерфейс чтения витрины holdings.
type Service interface {
	ListHoldings(ctx context.Context) ([]models.Holding, error)
}

// Handler обрабатывает HTTP-запросы на чтение holdings.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Витрина holdings
// @Description Возвращает все строки витрины holdings.
// @Tags Market
// @Produce  json
// @Success 200 {array} models.Holding "Строки витрины"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении витрины"
// @Router /allHoldings [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.market.holdings"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	result, err := h.service.ListHoldings(r.Context())
	if err != nil {
		log.Error("failed to list holdings", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to fetch holdings"))
		return
	}
	if result == nil {
		result = []models.Holding{}
	}

	render.JSON(w, r, result)
}
