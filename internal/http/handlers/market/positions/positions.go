// Package positions реализует HTTP-обработчик чтения витрины positions.
// Конечная точка публичная, данные общие для всех клиентов.
package positions

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

// Service описывает интерфейс чтения витрины positions.
type Service interface {
	ListPositions(ctx context.Context) ([]models.Position, error)
}

// Handler обрабатывает HTTP-запросы на чтение positions.
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
// @Summary Витрина positions
// @Description Возвращает все строки витрины positions.
// @Tags Market
// @Produce  json
// @Success 200 {array} models.Position "Строки витрины"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении витрины"
// @Router /allPositions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.market.positions"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	result, err := h.service.ListPositions(r.Context())
	if err != nil {
		log.Error("failed to list positions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to fetch positions"))
		return
	}
	if result == nil {
		result = []models.Position{}
	}

	render.JSON(w, r, result)
}
