// Package list реализует HTTP-обработчик чтения ордеров пользователя.
// Возвращаются только ордера владельца, определенного по токену.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/portfolio-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/portfolio-tracker/internal/http/response"
	"github.com/magabrotheeeer/portfolio-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-tracker/internal/models"
)

// Service описывает интерфейс бизнес-логики чтения ордеров.
type Service interface {
	List(ctx context.Context, ownerUID string) ([]models.Order, error)
}

// Handler обрабатывает HTTP-запросы на чтение ордеров.
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
// @Summary Список ордеров пользователя
// @Description Возвращает все ордера текущего пользователя.
// @Tags Orders
// @Produce  json
// @Security BearerAuth
// @Success 200 {array} models.Order "Ордера пользователя"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении ордеров"
// @Router /allorders [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ownerUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || ownerUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	result, err := h.service.List(r.Context(), ownerUID)
	if err != nil {
		log.Error("failed to list orders", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to fetch orders"))
		return
	}
	if result == nil {
		result = []models.Order{}
	}

	log.Info("orders listed", slog.Int("count", len(result)))
	render.JSON(w, r, result)
}
