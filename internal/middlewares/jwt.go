package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Renal37/archmarket/internal/models"
	"github.com/Renal37/archmarket/internal/services"
)

// userFieldType определяет тип для ключа, используемого для хранения данных пользователя в контексте.
type userFieldType string

// userField является ключом для хранения информации о пользователе в контексте запроса.
const userField userFieldType = "userField"

// AuthMiddlewareConfig представляет конфигурацию middleware для аутентификации.
type AuthMiddlewareConfig struct {
	excludePaths []string // Пути, которые будут исключены из проверки аутентификации.
}

// AuthMiddleware создает новую конфигурацию middleware для аутентификации.
func AuthMiddleware() *AuthMiddlewareConfig {
	return &AuthMiddlewareConfig{}
}

// WithExcludedPaths устанавливает пути, которые будут исключены из проверки аутентификации.
func (a *AuthMiddlewareConfig) WithExcludedPaths(paths ...string) *AuthMiddlewareConfig {
	a.excludePaths = paths
	return a
}

// Middleware возвращает middleware для аутентификации, используя установленную конфигурацию.
func (a *AuthMiddlewareConfig) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Открытые пути (регистрация, вход, служебные) пропускаем без проверки
		for _, path := range a.excludePaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		// Извлекаем сервисы аутентификации и JWT из контекста запроса
		authService := GetServiceFromContext[models.AuthService](w, r, AuthServiceKey)
		jwtService := GetServiceFromContext[models.JWTService](w, r, JwtServiceKey)
		if authService == nil || jwtService == nil {
			return
		}

		// Проверяем наличие заголовка Authorization
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			EncodeJSONError(w, http.StatusUnauthorized, "Требуется заголовок Authorization")
			return
		}

		// Токен передается только в схеме Bearer
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			EncodeJSONError(w, http.StatusUnauthorized, "Токен Bearer пуст")
			return
		}

		// Валидируем подпись и срок действия токена
		token, err := (*jwtService).ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, services.ErrTokenIsInvalid) {
				EncodeJSONError(w, http.StatusUnauthorized, "Неверный токен")
				return
			}

			if errors.Is(err, services.ErrTokenIsExpired) {
				EncodeJSONError(w, http.StatusUnauthorized, "Токен истёк")
				return
			}

			EncodeJSONError(w, http.StatusUnauthorized, fmt.Sprintf("Произошла ошибка при проверке токена: %s", err.Error()))
			return
		}

		// Логин пользователя хранится в поле sub
		login, err := token.Claims.GetSubject()
		if err != nil || login == "" {
			EncodeJSONError(w, http.StatusUnauthorized, "В токене не указан пользователь")
			return
		}

		// Загружаем пользователя вместе с ролью
		user, err := (*authService).GetUser(r.Context(), login)
		if err != nil {
			// Токен подписан верно, но пользователь удален
			if errors.Is(err, services.ErrUserIsNotExist) {
				EncodeJSONError(w, http.StatusUnauthorized, fmt.Sprintf("Пользователь с логином %s не существует", login))
				return
			}

			EncodeJSONError(w, http.StatusInternalServerError, "Произошла ошибка при проверке логина пользователя")
			return
		}

		// Передаем пользователя следующему обработчику через контекст
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// WithUser сохраняет пользователя в контексте запроса.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userField, user)
}

// GetUserFromContext извлекает информацию о пользователе из контекста запроса.
// В случае ошибки возвращает HTTP 500 и nil.
func GetUserFromContext(w http.ResponseWriter, r *http.Request) *models.User {
	user, ok := r.Context().Value(userField).(*models.User)

	if !ok || user == nil {
		EncodeJSONError(w, http.StatusInternalServerError, "Не удалось получить пользователя из контекста")
		return nil
	}

	return user
}
