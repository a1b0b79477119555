// Package services содержит логику бизнес-уровня для чтения рыночных витрин.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/portfolio-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-tracker/internal/models"
)

const (
	holdingsCacheKey  = "market:holdings"
	positionsCacheKey = "market:positions"
	cacheTTL          = 30 * time.Second
)

// MarketRepository описывает контракт для чтения витрин из базы данных.
type MarketRepository interface {
	ListHoldings(ctx context.Context) ([]models.Holding, error)
	ListPositions(ctx context.Context) ([]models.Position, error)
}

// ReadCache описывает кэш чтения поверх Redis.
type ReadCache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// MarketService отдаёт витрины holdings и positions, используя кэш.
type MarketService struct {
	market MarketRepository
	cache  ReadCache
	log    *slog.Logger
}

// NewMarketService создает новый экземпляр MarketService.
// cache может быть nil: тогда чтение идёт напрямую из базы.
func NewMarketService(market MarketRepository, cache ReadCache, log *slog.Logger) *MarketService {
	return &MarketService{
		market: market,
		cache:  cache,
		log:    log,
	}
}

// ListHoldings возвращает витрину holdings.
// Ошибки кэша не фатальны: запись логируется, чтение уходит в базу.
func (s *MarketService) ListHoldings(ctx context.Context) ([]models.Holding, error) {
	const op = "services.market.ListHoldings"

	if s.cache != nil {
		var cached []models.Holding
		hit, err := s.cache.Get(ctx, holdingsCacheKey, &cached)
		if err != nil {
			s.log.Warn("cache read failed", sl.Err(err))
		} else if hit {
			return cached, nil
		}
	}

	result, err := s.market.ListHoldings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, holdingsCacheKey, result, cacheTTL); err != nil {
			s.log.Warn("cache write failed", sl.Err(err))
		}
	}
	return result, nil
}

// ListPositions возвращает витрину positions.
func (s *MarketService) ListPositions(ctx context.Context) ([]models.Position, error) {
	const op = "services.market.ListPositions"

	if s.cache != nil {
		var cached []models.Position
		hit, err := s.cache.Get(ctx, positionsCacheKey, &cached)
		if err != nil {
			s.log.Warn("cache read failed", sl.Err(err))
		} else if hit {
			return cached, nil
		}
	}

	result, err := s.market.ListPositions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, positionsCacheKey, result, cacheTTL); err != nil {
			s.log.Warn("cache write failed", sl.Err(err))
		}
	}
	return result, nil
}
