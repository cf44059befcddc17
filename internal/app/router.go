package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Renal37/archmarket/internal/logger"
	"github.com/Renal37/archmarket/internal/metrics"
	"github.com/Renal37/archmarket/internal/middlewares"
	"github.com/Renal37/archmarket/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Config struct {
	// Endpoint адрес и порт, на которых сервер будет слушать входящие запросы.
	Endpoint string
	// RequestTimeout предельное время обработки одного запроса; 0 отключает ограничение.
	RequestTimeout time.Duration
	// RateLimitRPS и RateLimitBurst задают лимит запросов с одного IP; 0 отключает ограничение.
	RateLimitRPS   float64
	RateLimitBurst int
	// HealthCheck проверяет доступность зависимостей для /healthz.
	HealthCheck func(ctx context.Context) error
}

type Router struct {
	config        Config
	authService   models.AuthService
	jwtService    models.JWTService
	orderService  models.OrderService
	designService models.DesignService

	mu       sync.Mutex
	server   *http.Server
	stop     context.CancelFunc
	stopped  chan struct{}
	stopOnce sync.Once
}

// New создает новый экземпляр Router с заданными зависимостями.
func New(
	config Config,
	authService models.AuthService,
	jwtService models.JWTService,
	orderService models.OrderService,
	designService models.DesignService,
) *Router {
	return &Router{
		config:        config,
		authService:   authService,
		jwtService:    jwtService,
		orderService:  orderService,
		designService: designService,
		stopped:       make(chan struct{}),
	}
}

// get возвращает настроенный роутер.
func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		metrics.Middleware,
		logger.RequestLogger,
	)

	if router.config.RateLimitRPS > 0 {
		ctx, cancel := context.WithCancel(context.Background())
		router.mu.Lock()
		router.stop = cancel
		router.mu.Unlock()
		r.Use(middlewares.NewRateLimiter(ctx, router.config.RateLimitRPS, router.config.RateLimitBurst).Middleware)
	}

	if router.config.RequestTimeout > 0 {
		r.Use(middleware.Timeout(router.config.RequestTimeout))
	}

	r.Use(
		// Инжектор сервисов для предоставления сервисов в обработчиках.
		middlewares.ServiceInjectorMiddleware(middlewares.Services{
			Auth:    router.authService,
			JWT:     router.jwtService,
			Orders:  router.orderService,
			Designs: router.designService,
		}),
		// Middleware для проверки аутентификации, исключая указанные пути.
		middlewares.AuthMiddleware().WithExcludedPaths(
			"/api/user/register",
			"/api/user/login",
			"/metrics",
			"/healthz",
		).Middleware,
	)

	r.Get("/healthz", router.healthz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/user", func(r chi.Router) {
		r.With(middlewares.JSONMiddleware[models.UnknownUser]).Post("/register", Register)
		r.With(middlewares.JSONMiddleware[models.UnknownUser]).Post("/login", Login)
	})

	r.Route("/api/designs", func(r chi.Router) {
		r.Get("/{id}", GetDesign)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAdmin)

			r.With(middlewares.JSONMiddleware[models.NewDesign]).Post("/", CreateDesign)
			r.With(middlewares.JSONMiddleware[models.DesignStatusUpdate]).Patch("/{id}/status", UpdateDesignStatus)
		})
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.With(middlewares.JSONMiddleware[models.NewOrder]).Post("/", CreateOrder)
		r.Get("/", GetOrders)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAdmin)

			r.Get("/admin/all", GetAllOrders)
			r.Get("/stats/summary", GetOrderStats)
			r.With(middlewares.JSONMiddleware[models.StatusUpdate]).Put("/{id}/status", UpdateOrderStatus)
			r.With(middlewares.JSONMiddleware[models.TrackingUpdateRequest]).Post("/{id}/tracking", AddOrderTracking)
			r.With(middlewares.JSONMiddleware[models.RefundRequest]).Post("/{id}/refund", RefundOrder)
		})

		r.Get("/{id}", GetOrder)
	})

	return r
}

func (router *Router) healthz(w http.ResponseWriter, r *http.Request) {
	if router.config.HealthCheck != nil {
		if err := router.config.HealthCheck(r.Context()); err != nil {
			middlewares.EncodeJSONError(w, http.StatusServiceUnavailable, fmt.Sprintf("Сервис недоступен: %s", err.Error()))
			return
		}
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Run запускает HTTP сервер на заданном endpoint и блокируется до его остановки.
// После Shutdown возвращает nil, когда активные запросы завершены.
func (router *Router) Run() error {
	server := &http.Server{
		Addr:              router.config.Endpoint,
		Handler:           router.get(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	router.mu.Lock()
	router.server = server
	router.mu.Unlock()

	select {
	case <-router.stopped:
		return nil
	default:
	}

	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		<-router.stopped
		return nil
	}

	return fmt.Errorf("ошибка работы HTTP сервера: %w", err)
}

// Shutdown останавливает сервер, дожидаясь завершения активных запросов.
func (router *Router) Shutdown(ctx context.Context) error {
	defer router.stopOnce.Do(func() { close(router.stopped) })

	router.mu.Lock()
	server, stop := router.server, router.stop
	router.mu.Unlock()

	if stop != nil {
		stop()
	}

	if server == nil {
		return nil
	}

	return server.Shutdown(ctx)
}
