package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/portfolio-tracker/internal/models"
)

// CreateOrder вставляет новый ордер и возвращает сохранённую запись.
func (s *Storage) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	const op = "storage.CreateOrder"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO orders (owner_uid, name, qty, price, mode)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING uid, created_at`
	if err := s.DB.QueryRowContext(ctx, query,
		order.OwnerUID, order.Name, order.Qty, order.Price, order.Mode,
	).Scan(&order.UID, &order.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &order, nil
}

// ListOrdersByOwner возвращает все ордера указанного владельца.
//
// Фильтр по owner_uid обязателен: выборки без владельца в API нет.
func (s *Storage) ListOrdersByOwner(ctx context.Context, ownerUID string) ([]models.Order, error) {
	const op = "storage.ListOrdersByOwner"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, owner_uid, name, qty, price, mode, created_at
			  FROM orders
			  WHERE owner_uid = $1
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query, ownerUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Order
	for rows.Next() {
		var o models.Order
		if err = rows.Scan(&o.UID, &o.OwnerUID, &o.Name, &o.Qty,
			&o.Price, &o.Mode, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
