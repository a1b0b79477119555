package portfoliotracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/portfolio-tracker/internal/cache"
	"github.com/magabrotheeeer/portfolio-tracker/internal/config"
	"github.com/magabrotheeeer/portfolio-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/portfolio-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/portfolio-tracker/internal/migrations"
	"github.com/magabrotheeeer/portfolio-tracker/internal/rabbitmq"
	authservice "github.com/magabrotheeeer/portfolio-tracker/internal/services/auth"
	marketservice "github.com/magabrotheeeer/portfolio-tracker/internal/services/market"
	orderservice "github.com/magabrotheeeer/portfolio-tracker/internal/services/order"
	"github.com/magabrotheeeer/portfolio-tracker/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New собирает приложение: хранилище, миграции, кэш, брокер, сервисы и роутер.
//
// Redis и RabbitMQ необязательны: при пустом адресе или недоступности
// приложение стартует без кэша и без публикации событий.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	var marketCache marketservice.ReadCache
	if cfg.AddressRedis != "" {
		cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			logger.Warn("redis unavailable, serving without cache", sl.Err(err))
		} else {
			marketCache = cacheRedis
		}
	}

	var events orderservice.EventPublisher
	if cfg.AddressRabbit != "" {
		conn, err := rabbitmq.Connect(cfg.AddressRabbit, cfg.Retries, cfg.RetryDelay)
		if err != nil {
			logger.Warn("rabbitmq unavailable, order events disabled", sl.Err(err))
		} else {
			ch, err := rabbitmq.SetupChannel(conn)
			if err != nil {
				logger.Warn("rabbitmq channel setup failed, order events disabled", sl.Err(err))
			} else {
				events = rabbitmq.NewPublisher(ch)
			}
		}
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewAuthService(db, jwtMaker)
	orderService := orderservice.NewOrderService(db, events, logger)
	marketService := marketservice.NewMarketService(db, marketCache, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, db, authService, orderService, marketService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
// Соединение с базой закрывается на любом пути завершения.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		_ = a.db.DB.Close()
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
