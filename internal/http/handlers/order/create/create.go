// Package create реализует HTTP-обработчик подачи нового ордера.
//
// Handler принимает JSON с данными ордера, валидирует их, извлекает UID
// владельца из контекста запроса и вызывает бизнес-логику сохранения.
// Владелец берется только из аутентифицированного контекста: поле
// владельца в теле запроса не существует и не читается.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/portfolio-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/portfolio-tracker/internal/http/response"
	"github.com/magabrotheeeer/portfolio-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-tracker/internal/models"
)

// Request — входные данные нового ордера.
type Request struct {
	Name  string          `json:"name" validate:"required"`
	Qty   int             `json:"qty" validate:"required,gt=0"`
	Price decimal.Decimal `json:"price" validate:"required"`
	Mode  string          `json:"mode" validate:"required,oneof=buy sell"`
}

// Response — ответ об успешной подаче ордера.
type Response struct {
	Message string `json:"message"`
	OrderID string `json:"orderID"`
}

// Service описывает интерфейс бизнес-логики подачи ордера.
type Service interface {
	Submit(ctx context.Context, ownerUID string, entry models.SubmitOrder) (*models.Order, error)
}

// Handler обрабатывает HTTP-запросы на подачу ордеров.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Подать новый ордер
// @Description Сохраняет ордер текущего пользователя. Владелец определяется по токену.
// @Tags Orders
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Данные нового ордера"
// @Success 201 {object} Response "Ордер сохранен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при сохранении ордера"
// @Router /newOrder [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.order.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("name", req.Name))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	ownerUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || ownerUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	order, err := h.service.Submit(r.Context(), ownerUID, models.SubmitOrder{
		Name:  req.Name,
		Qty:   req.Qty,
		Price: req.Price,
		Mode:  req.Mode,
	})
	if err != nil {
		log.Error("failed to save order", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save order"))
		return
	}

	log.Info("order saved", slog.String("order_uid", order.UID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, Response{
		Message: "order saved",
		OrderID: order.UID,
	})
}
