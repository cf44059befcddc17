package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "archmarket"

var (
	requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"route", "status"})

	latency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"route"})

	// OrdersCreated число успешно оформленных заказов.
	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of created orders.",
	})

	// OrderRefunds число оформленных возвратов.
	OrderRefunds = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_refunds_total",
		Help:      "Total number of processed refunds.",
	})
)

func init() {
	prometheus.MustRegister(requests, latency, OrdersCreated, OrderRefunds)
}

// Handler отдает метрики в формате prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware учитывает запросы по шаблону маршрута chi, а не по фактическому пути.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		latency.WithLabelValues(route).Observe(float64(time.Since(startTime).Milliseconds()))
	})
}
