// Package services содержит логику бизнес-уровня для работы с ордерами пользователей.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/portfolio-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-tracker/internal/models"
	"github.com/magabrotheeeer/portfolio-tracker/internal/rabbitmq"
)

// OrderRepository описывает контракт для работы с ордерами в базе данных.
type OrderRepository interface {
	// CreateOrder вставляет новый ордер и возвращает сохранённую запись.
	CreateOrder(ctx context.Context, order models.Order) (*models.Order, error)

	// ListOrdersByOwner возвращает все ордера указанного владельца.
	ListOrdersByOwner(ctx context.Context, ownerUID string) ([]models.Order, error)
}

// EventPublisher публикует события об ордерах в брокер сообщений.
type EventPublisher interface {
	Publish(exchange, routingkey string, message any) error
}

// OrderService отвечает за подачу и чтение ордеров.
type OrderService struct {
	orders OrderRepository
	events EventPublisher
	log    *slog.Logger
}

// NewOrderService создает новый экземпляр OrderService.
// events может быть nil: тогда события не публикуются.
func NewOrderService(orders OrderRepository, events EventPublisher, log *slog.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		events: events,
		log:    log,
	}
}

// Submit сохраняет новый ордер владельца ownerUID.
//
// ownerUID берется только из аутентифицированного контекста запроса;
// поле владельца в теле запроса не читается. После записи публикуется
// событие order.created; неудача публикации логируется и не влияет
// на результат запроса.
func (s *OrderService) Submit(ctx context.Context, ownerUID string, entry models.SubmitOrder) (*models.Order, error) {
	const op = "services.order.Submit"
	order := models.Order{
		OwnerUID: ownerUID,
		Name:     entry.Name,
		Qty:      entry.Qty,
		Price:    entry.Price,
		Mode:     entry.Mode,
	}
	saved, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.events != nil {
		event := models.OrderEvent{
			OrderUID:  saved.UID,
			OwnerUID:  saved.OwnerUID,
			Name:      saved.Name,
			Qty:       saved.Qty,
			Price:     saved.Price,
			Mode:      saved.Mode,
			CreatedAt: saved.CreatedAt,
		}
		if err := s.events.Publish(rabbitmq.OrdersExchange, rabbitmq.OrderCreatedKey, event); err != nil {
			s.log.Warn("failed to publish order event", sl.Err(err),
				slog.String("order_uid", saved.UID))
		}
	}
	return saved, nil
}

// List возвращает все ордера владельца ownerUID.
func (s *OrderService) List(ctx context.Context, ownerUID string) ([]models.Order, error) {
	const op = "services.order.List"
	result, err := s.orders.ListOrdersByOwner(ctx, ownerUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
