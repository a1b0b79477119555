package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/portfolio-tracker/internal/models"
)

// ListHoldings возвращает все строки витрины holdings.
func (s *Storage) ListHoldings(ctx context.Context) ([]models.Holding, error) {
	const op = "storage.ListHoldings"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT name, qty, avg, price, net, day
			  FROM holdings
			  ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Holding
	for rows.Next() {
		var h models.Holding
		if err = rows.Scan(&h.Name, &h.Qty, &h.Avg, &h.Price, &h.Net, &h.Day); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListPositions возвращает все строки витрины positions.
func (s *Storage) ListPositions(ctx context.Context) ([]models.Position, error) {
	const op = "storage.ListPositions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT product, name, qty, avg, price, net, day, is_loss
			  FROM positions
			  ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Position
	for rows.Next() {
		var p models.Position
		if err = rows.Scan(&p.Product, &p.Name, &p.Qty, &p.Avg, &p.Price,
			&p.Net, &p.Day, &p.IsLoss); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
