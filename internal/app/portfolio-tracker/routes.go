// Package portfoliotracker собирает HTTP-приложение трекера портфеля.
package portfoliotracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/portfolio-tracker/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/portfolio-tracker/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/portfolio-tracker/internal/http/handlers/health"
	"github.com/magabrotheeeer/portfolio-tracker/internal/http/handlers/market/holdings"
	"github.com/magabrotheeeer/portfolio-tracker/internal/http/handlers/market/positions"
	ordercreate "github.com/magabrotheeeer/portfolio-tracker/internal/http/handlers/order/create"
	orderlist "github.com/magabrotheeeer/portfolio-tracker/internal/http/handlers/order/list"
	"github.com/magabrotheeeer/portfolio-tracker/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/portfolio-tracker/internal/services/auth"
	marketservice "github.com/magabrotheeeer/portfolio-tracker/internal/services/market"
	orderservice "github.com/magabrotheeeer/portfolio-tracker/internal/services/order"
	"github.com/magabrotheeeer/portfolio-tracker/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
//
// Пути повторяют контракт API: /register, /login, /allHoldings,
// /allPositions открыты; /allorders и /newOrder требуют валидный токен.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	storage *repository.Storage,
	authService *authservice.AuthService,
	orderService *orderservice.OrderService,
	marketService *marketservice.MarketService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Post("/register", register.New(logger, authService).ServeHTTP)
	r.Post("/login", login.New(logger, authService).ServeHTTP)
	r.Get("/allHoldings", holdings.New(logger, marketService).ServeHTTP)
	r.Get("/allPositions", positions.New(logger, marketService).ServeHTTP)
	r.Get("/health", health.New(logger, storage).ServeHTTP)

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(authService, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/newOrder", ordercreate.New(logger, orderService).ServeHTTP)
		r.Get("/allorders", orderlist.New(logger, orderService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
