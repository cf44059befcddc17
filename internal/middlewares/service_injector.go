package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Renal37/archmarket/internal/models"
)

type key int

const (
	AuthServiceKey key = iota
	JwtServiceKey
	OrderServiceKey
	DesignServiceKey
)

type servicesFieldType string

const servicesField servicesFieldType = "servicesField"

// Services сервисы, которые обработчики получают из контекста запроса.
type Services struct {
	Auth    models.AuthService
	JWT     models.JWTService
	Orders  models.OrderService
	Designs models.DesignService
}

func (s Services) lookup(serviceKey key) any {
	switch serviceKey {
	case AuthServiceKey:
		return s.Auth
	case JwtServiceKey:
		return s.JWT
	case OrderServiceKey:
		return s.Orders
	case DesignServiceKey:
		return s.Designs
	}
	return nil
}

// ServiceInjectorMiddleware кладет набор сервисов в контекст каждого запроса.
func ServiceInjectorMiddleware(services Services) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), servicesField, services)))
		})
	}
}

// GetServiceFromContext возвращает сервис по ключу. Если сервис не передан,
// отвечает 500 и возвращает nil.
func GetServiceFromContext[Service any](w http.ResponseWriter, r *http.Request, serviceKey key) *Service {
	services, _ := r.Context().Value(servicesField).(Services)

	found, ok := services.lookup(serviceKey).(Service)
	if !ok {
		EncodeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("Сервис не найден в контексте по ключу %v", serviceKey))
		return nil
	}

	return &found
}
