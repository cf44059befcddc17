package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Renal37/archmarket/internal/middlewares"
	"github.com/Renal37/archmarket/internal/models"
	"github.com/Renal37/archmarket/internal/services"
)

// IsUnknownUserDataValid проверяет, что в запросе переданы логин и пароль.
func IsUnknownUserDataValid(user models.UnknownUser) bool {
	return user.Login != nil && *user.Login != "" && user.Password != nil && *user.Password != ""
}

// Register регистрирует пользователя и сразу выдает ему JWT токен.
func Register(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[models.UnknownUser](w, r)
	if !ok {
		return
	}

	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)
	jwtService := middlewares.GetServiceFromContext[models.JWTService](w, r, middlewares.JwtServiceKey)
	if authService == nil || jwtService == nil {
		return
	}

	if !IsUnknownUserDataValid(data) {
		middlewares.EncodeJSONError(w, http.StatusBadRequest, "Запрос не содержит логин или пароль")
		return
	}

	if err := (*authService).Register(r.Context(), data); err != nil {
		if errors.Is(err, services.ErrUserIsAlreadyRegistered) {
			middlewares.EncodeJSONError(w, http.StatusConflict, "Пользователь уже зарегистрирован")
			return
		}

		writeError(w, r, err)
		return
	}

	writeToken(w, r, *jwtService, *data.Login)
}

// Login обрабатывает запрос на вход пользователя и возвращает JWT токен при успешной авторизации.
func Login(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[models.UnknownUser](w, r)
	if !ok {
		return
	}

	authService := middlewares.GetServiceFromContext[models.AuthService](w, r, middlewares.AuthServiceKey)
	jwtService := middlewares.GetServiceFromContext[models.JWTService](w, r, middlewares.JwtServiceKey)
	if authService == nil || jwtService == nil {
		return
	}

	if !IsUnknownUserDataValid(data) {
		middlewares.EncodeJSONError(w, http.StatusBadRequest, "Запрос не содержит логин или пароль")
		return
	}

	if err := (*authService).Login(r.Context(), data); err != nil {
		// Не сообщаем, что именно неверно: логин или пароль
		if errors.Is(err, services.ErrUserIsNotExist) || errors.Is(err, services.ErrPasswordIsIncorrect) {
			middlewares.EncodeJSONError(w, http.StatusUnauthorized, "Неверный логин или пароль")
			return
		}

		writeError(w, r, err)
		return
	}

	writeToken(w, r, *jwtService, *data.Login)
}

func writeToken(w http.ResponseWriter, r *http.Request, jwtService models.JWTService, login string) {
	token, err := jwtService.GenerateJWT(login)
	if err != nil {
		writeError(w, r, fmt.Errorf("ошибка при генерации JWT токена: %w", err))
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
	w.WriteHeader(http.StatusOK)
}
