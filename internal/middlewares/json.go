package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
)

// maxBodySize ограничение размера тела JSON-запроса.
const maxBodySize = 1 << 20

// parsedJSONDataFieldType является типом для хранения данных JSON в контексте запроса.
type parsedJSONDataFieldType string

// parsedJSONDataField - ключ для хранения данных JSON в контексте запроса.
const parsedJSONDataField parsedJSONDataFieldType = "parsedJSONDataField"

// ErrorResponse тело ответа с ошибкой.
type ErrorResponse struct {
	Message string `json:"message"`
}

// JSONMiddleware обрабатывает JSON-запросы и извлекает данные JSON из тела запроса.
func JSONMiddleware[Model any](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			EncodeJSONError(w, http.StatusUnsupportedMediaType, "Тип контента не является application/json")
			return
		}

		var parsedData Model
		var buf bytes.Buffer

		if _, err := buf.ReadFrom(http.MaxBytesReader(w, r.Body, maxBodySize)); err != nil {
			EncodeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Ошибка чтения из тела запроса: %s", err.Error()))
			return
		}

		if err := json.Unmarshal(buf.Bytes(), &parsedData); err != nil {
			EncodeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Ошибка при разборе данных JSON: %s", err.Error()))
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), parsedJSONDataField, parsedData)))
	})
}

// GetParsedJSONData извлекает данные JSON из контекста запроса. Если данных нет,
// отвечает 500 и возвращает false: обработчик должен сразу завершиться.
func GetParsedJSONData[Model any](w http.ResponseWriter, r *http.Request) (Model, bool) {
	data, ok := r.Context().Value(parsedJSONDataField).(Model)
	if !ok {
		EncodeJSONError(w, http.StatusInternalServerError, "Не удалось извлечь данные из контекста")
		return data, false
	}

	return data, true
}

// EncodeJSONResponse кодирует данные в формат JSON и отправляет их с указанным статусом.
func EncodeJSONResponse[Model any](w http.ResponseWriter, status int, data Model) {
	resp, err := json.Marshal(data)
	if err != nil {
		http.Error(w, fmt.Sprintf("Ошибка при кодировании JSON-ответа: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Заголовок уже отправлен, ошибку записи клиенту не сообщить.
	_, _ = w.Write(resp)
}

// EncodeJSONError отправляет ошибку в виде {"message": "..."}.
func EncodeJSONError(w http.ResponseWriter, status int, message string) {
	EncodeJSONResponse(w, status, ErrorResponse{Message: message})
}
