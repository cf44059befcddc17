package router

import (
	"errors"
	"net/http"

	"github.com/Renal37/archmarket/internal/logger"
	"github.com/Renal37/archmarket/internal/middlewares"
	"github.com/Renal37/archmarket/internal/services"
	"github.com/Renal37/archmarket/internal/validation"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// writeError сопоставляет ошибку сервиса с кодом ответа.
// Внутренние ошибки логируются, клиент получает общее сообщение.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		middlewares.EncodeJSONResponse(w, http.StatusBadRequest, validationErr)
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidArgument), errors.Is(err, services.ErrUnavailable):
		middlewares.EncodeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		middlewares.EncodeJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		middlewares.EncodeJSONError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrConcurrentModification):
		middlewares.EncodeJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrDailyCapacityExceeded):
		middlewares.EncodeJSONError(w, http.StatusServiceUnavailable, err.Error())
	default:
		logger.Log.Error("ошибка обработки запроса",
			zap.String("requestID", middleware.GetReqID(r.Context())),
			zap.String("uri", r.RequestURI),
			zap.Error(err),
		)
		middlewares.EncodeJSONError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
}

// validateRequest проверяет тело запроса и отвечает 400 со списком ошибок полей.
func validateRequest(w http.ResponseWriter, r *http.Request, data any) bool {
	if err := validation.Struct(data); err != nil {
		writeError(w, r, err)
		return false
	}
	return true
}
