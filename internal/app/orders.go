package router

import (
	"net/http"
	"strconv"

	"github.com/Renal37/archmarket/internal/middlewares"
	"github.com/Renal37/archmarket/internal/models"
	"github.com/Renal37/archmarket/internal/validation"
	"github.com/go-chi/chi/v5"
)

// CreateOrder оформляет заказ текущего пользователя.
func CreateOrder(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[models.NewOrder](w, r)
	if !ok {
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	user := middlewares.GetUserFromContext(w, r)
	if orderService == nil || user == nil {
		return
	}

	if !validateRequest(w, r, data) {
		return
	}

	order, err := (*orderService).CreateOrder(r.Context(), user, data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusCreated, models.OrderCreated{
		Message: "Заказ успешно создан",
		Order:   order,
	})
}

// GetOrders возвращает страницу заказов текущего пользователя.
func GetOrders(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	user := middlewares.GetUserFromContext(w, r)
	if orderService == nil || user == nil {
		return
	}

	filter, err := parseOrderFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	orders, err := (*orderService).ListUserOrders(r.Context(), user.ID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, orders)
}

// GetOrder возвращает заказ владельцу или администратору.
func GetOrder(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	user := middlewares.GetUserFromContext(w, r)
	if orderService == nil || user == nil {
		return
	}

	order, err := (*orderService).GetOrder(r.Context(), user, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, order)
}

// GetAllOrders возвращает заказы всех пользователей.
func GetAllOrders(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	if orderService == nil {
		return
	}

	filter, err := parseOrderFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	filter.PaymentStatus = models.PaymentStatus(r.URL.Query().Get("paymentStatus"))

	orders, err := (*orderService).ListAllOrders(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, orders)
}

// UpdateOrderStatus меняет статус заказа и, при наличии, статус оплаты.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[models.StatusUpdate](w, r)
	if !ok {
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	if orderService == nil {
		return
	}

	if !validateRequest(w, r, data) {
		return
	}

	order, err := (*orderService).UpdateStatus(r.Context(), chi.URLParam(r, "id"), data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, order)
}

// AddOrderTracking добавляет запись в журнал доставки.
func AddOrderTracking(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[models.TrackingUpdateRequest](w, r)
	if !ok {
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	if orderService == nil {
		return
	}

	if !validateRequest(w, r, data) {
		return
	}

	order, err := (*orderService).AddTracking(r.Context(), chi.URLParam(r, "id"), data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, order)
}

// RefundOrder оформляет возврат по заказу.
func RefundOrder(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[models.RefundRequest](w, r)
	if !ok {
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	user := middlewares.GetUserFromContext(w, r)
	if orderService == nil || user == nil {
		return
	}

	if !validateRequest(w, r, data) {
		return
	}

	order, err := (*orderService).ProcessRefund(r.Context(), user, chi.URLParam(r, "id"), data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, order)
}

// GetOrderStats возвращает сводку по заказам и выручке.
func GetOrderStats(w http.ResponseWriter, r *http.Request) {
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	if orderService == nil {
		return
	}

	stats, err := (*orderService).GetStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, stats)
}

// parseOrderFilter читает page, limit и status из строки запроса.
// Значения по умолчанию подставляет сервис.
func parseOrderFilter(r *http.Request) (models.OrderFilter, error) {
	query := r.URL.Query()
	filter := models.OrderFilter{Status: models.OrderStatus(query.Get("status"))}

	var err error
	if filter.Page, err = parsePositiveInt(query.Get("page")); err != nil {
		return filter, validation.NewError("page", "значение должно быть целым числом больше 0")
	}
	if filter.Limit, err = parsePositiveInt(query.Get("limit")); err != nil {
		return filter, validation.NewError("limit", "значение должно быть целым числом больше 0")
	}

	return filter, nil
}

func parsePositiveInt(value string) (int, error) {
	if value == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}

	return n, nil
}
