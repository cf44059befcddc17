package router

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Renal37/archmarket/internal/models"
	mock_models "github.com/Renal37/archmarket/internal/models/mocks"
	"github.com/Renal37/archmarket/internal/services"
	"github.com/Renal37/archmarket/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	orderID  = "6f1c2d9e-8a55-4b0e-9a57-2f1d8b1e4c11"
	designID = "0b7e5c43-2b9a-4f5e-a0f4-6a3c1d2e9b77"
)

var (
	customer = models.User{ID: "user-id", Login: "login", Hash: "hash", Role: models.RoleCustomer}
	admin    = models.User{ID: "admin-id", Login: "login", Hash: "hash", Role: models.RoleAdmin}
)

type routeTestCase struct {
	testName        string
	methodName      string
	targetURL       string
	user            *models.User
	contentType     string
	body            func(t *testing.T) io.Reader
	test            func(t *testing.T)
	expectedCode    int
	expectedMessage string
	testResponse    func(t *testing.T, res *http.Response, body string)
}

// runRouteTests выполняет набор тестовых случаев против тестового сервера.
// Если в случае указан пользователь, запрос отправляется с токеном, который "принадлежит" ему.
func runRouteTests(
	t *testing.T,
	testServer *httptest.Server,
	authServiceMock *mock_models.MockAuthService,
	jwtServiceMock *mock_models.MockJWTService,
	testCases []routeTestCase,
) {
	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			headers := map[string]string{"Content-Type": "application/json"}
			if tc.contentType != "" {
				headers["Content-Type"] = tc.contentType
			}

			if tc.user != nil {
				user := *tc.user
				jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "login"})

				jwtServiceMock.EXPECT().ValidateToken("token").Return(jwtToken, nil)
				authServiceMock.EXPECT().GetUser(gomock.Any(), "login").Return(&user, nil)

				headers["Authorization"] = "Bearer token"
			}

			var body io.Reader
			if tc.body != nil {
				body = tc.body(t)
			}

			if tc.test != nil {
				tc.test(t)
			}

			res, mes := utils.TestRequest(t, testServer, tc.methodName, tc.targetURL, headers, body)
			res.Body.Close()

			assert.Equal(t, tc.expectedCode, res.StatusCode)
			if tc.testResponse != nil {
				tc.testResponse(t, res, mes)
			} else {
				assert.Equal(t, tc.expectedMessage, mes)
			}
		})
	}
}

// Тестирование маршрута регистрации пользователя
func TestRegisterRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authServiceMock := mock_models.NewMockAuthService(ctrl)
	jwtServiceMock := mock_models.NewMockJWTService(ctrl)

	testServer := httptest.NewServer(
		New(Config{}, authServiceMock, jwtServiceMock, nil, nil).get(),
	)
	defer testServer.Close()

	login := "user"
	password := "123"

	runRouteTests(t, testServer, authServiceMock, jwtServiceMock, []routeTestCase{
		{
			testName:        "Должен вернуть ошибку валидации из-за отсутствия тела запроса",
			methodName:      http.MethodPost,
			targetURL:       "/api/user/register",
			expectedCode:    http.StatusBadRequest,
			expectedMessage: `{"message":"Ошибка при разборе данных JSON: unexpected end of JSON input"}`,
		},
		{
			testName:        "Должен отклонить тело не в формате JSON",
			methodName:      http.MethodPost,
			targetURL:       "/api/user/register",
			contentType:     "text/plain",
			expectedCode:    http.StatusUnsupportedMediaType,
			expectedMessage: `{"message":"Тип контента не является application/json"}`,
		},
		{
			testName:   "Должен вернуть ошибку валидации из-за отсутствия логина пользователя",
			methodName: http.MethodPost,
			targetURL:  "/api/user/register",
			body: func(t *testing.T) io.Reader {
				return utils.JSONBody(t, models.UnknownUser{Password: &password})
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: `{"message":"Запрос не содержит логин или пароль"}`,
		},
		{
			testName:   "Должен вернуть ошибку, если пользователь уже зарегистрирован",
			methodName: http.MethodPost,
			targetURL:  "/api/user/register",
			test: func(t *testing.T) {
				authServiceMock.EXPECT().
					Register(gomock.Any(), models.UnknownUser{Login: &login, Password: &password}).
					Return(services.ErrUserIsAlreadyRegistered)
			},
			body: func(t *testing.T) io.Reader {
				return utils.JSONBody(t, models.UnknownUser{Login: &login, Password: &password})
			},
			expectedCode:    http.StatusConflict,
			expectedMessage: `{"message":"Пользователь уже зарегистрирован"}`,
		},
		{
			testName:    "Должен зарегистрировать пользователя и выдать токен",
			methodName:  http.MethodPost,
			targetURL:   "/api/user/register",
			contentType: "application/json; charset=utf-8",
			test: func(t *testing.T) {
				authServiceMock.EXPECT().
					Register(gomock.Any(), models.UnknownUser{Login: &login, Password: &password}).
					Return(nil)
				jwtServiceMock.EXPECT().GenerateJWT("user").Return("token", nil)
			},
			body: func(t *testing.T) io.Reader {
				return utils.JSONBody(t, models.UnknownUser{Login: &login, Password: &password})
			},
			expectedCode: http.StatusOK,
			testResponse: func(t *testing.T, res *http.Response, body string) {
				assert.Equal(t, "Bearer token", res.Header.Get("Authorization"))
				assert.Empty(t, body)
			},
		},
	})
}

// Тестирование маршрута аутентификации (логина) пользователя
func TestLoginRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authServiceMock := mock_models.NewMockAuthService(ctrl)
	jwtServiceMock := mock_models.NewMockJWTService(ctrl)

	testServer := httptest.NewServer(
		New(Config{}, authServiceMock, jwtServiceMock, nil, nil).get(),
	)
	defer testServer.Close()

	login := "user"
	password := "123"
	credentials := models.UnknownUser{Login: &login, Password: &password}

	runRouteTests(t, testServer, authServiceMock, jwtServiceMock, []routeTestCase{
		{
			testName:   "Должен вернуть 401 при неверном пароле",
			methodName: http.MethodPost,
			targetURL:  "/api/user/login",
			test: func(t *testing.T) {
				authServiceMock.EXPECT().Login(gomock.Any(), credentials).Return(services.ErrPasswordIsIncorrect)
			},
			body: func(t *testing.T) io.Reader {
				return utils.JSONBody(t, credentials)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: `{"message":"Неверный логин или пароль"}`,
		},
		{
			testName:   "Должен вернуть 401 для незарегистрированного пользователя",
			methodName: http.MethodPost,
			targetURL:  "/api/user/login",
			test: func(t *testing.T) {
				authServiceMock.EXPECT().Login(gomock.Any(), credentials).Return(services.ErrUserIsNotExist)
			},
			body: func(t *testing.T) io.Reader {
				return utils.JSONBody(t, credentials)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: `{"message":"Неверный логин или пароль"}`,
		},
		{
			testName:   "Должен авторизовать пользователя",
			methodName: http.MethodPost,
			targetURL:  "/api/user/login",
			test: func(t *testing.T) {
				authServiceMock.EXPECT().Login(gomock.Any(), credentials).Return(nil)
				jwtServiceMock.EXPECT().GenerateJWT("user").Return("token", nil)
			},
			body: func(t *testing.T) io.Reader {
				return utils.JSONBody(t, credentials)
			},
			expectedCode: http.StatusOK,
			testResponse: func(t *testing.T, res *http.Response, body string) {
				assert.Equal(t, "Bearer token", res.Header.Get("Authorization"))
			},
		},
	})
}

// Тестирование маршрутов заказов покупателя
func TestOrderRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authServiceMock := mock_models.NewMockAuthService(ctrl)
	jwtServiceMock := mock_models.NewMockJWTService(ctrl)
	orderServiceMock := mock_models.NewMockOrderService(ctrl)

	testServer := httptest.NewServer(
		New(Config{}, authServiceMock, jwtServiceMock, orderServiceMock, nil).get(),
	)
	defer testServer.Close()

	newOrder := models.NewOrder{
		Items: []models.NewOrderItem{
			{DesignID: designID, Quantity: 1, License: models.LicensePersonal},
		},
		PaymentMethod:  models.PaymentMethodStripe,
		BillingAddress: &models.Address{Name: "Иван Петров", Email: "ivan@example.com"},
	}

	createdAt := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	created := models.Order{
		ID:          orderID,
		OrderNumber: "ORD240305001",
		CustomerID:  customer.ID,
		Items: []models.OrderItem{
			{DesignID: designID, Quantity: 1, Price: decimal.NewFromInt(100), License: models.LicensePersonal},
		},
		Subtotal:        decimal.NewFromInt(100),
		Tax:             decimal.RequireFromString("8.5"),
		Total:           decimal.RequireFromString("108.5"),
		Status:          models.StatusPending,
		PaymentStatus:   models.PaymentPending,
		PaymentMethod:   models.PaymentMethodStripe,
		BillingAddress:  *newOrder.BillingAddress,
		ShippingAddress: *newOrder.BillingAddress,
		Tracking:        models.Tracking{Updates: []models.TrackingUpdate{}},
		CreatedAt:       utils.RFC3339Date{Time: createdAt},
		UpdatedAt:       utils.RFC3339Date{Time: createdAt},
	}

	runRouteTests(t, testServer, authServiceMock, jwtServiceMock, []routeTestCase{
		{
			testName:        "Должен отклонить запрос без токена",
			methodName:      http.MethodGet,
			targetURL:       "/api/orders",
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: `{"message":"Требуется заголовок Authorization"}`,
		},
		{
			testName:   "Должен вернуть ошибки валидации для пустого заказа",
			methodName: http.MethodPost,
			targetURL:  "/api/orders",
			user:       &customer,
			body: func(t *testing.T) io.Reader {
				return strings.NewReader(`{}`)
			},
			expectedCode: http.StatusBadRequest,
			testResponse: func(t *testing.T, res *http.Response, body string) {
				var payload struct {
					Errors []struct {
						Field string `json:"field"`
					} `json:"errors"`
				}
				require.NoError(t, json.Unmarshal([]byte(body), &payload))

				fields := make([]string, 0, len(payload.Errors))
				for _, e := range payload.Errors {
					fields = append(fields, e.Field)
				}
				assert.ElementsMatch(t, []string{"items", "paymentMethod", "billingAddress"}, fields)
			},
		},
		{
			testName:   "Должен вернуть ошибку валидации для нулевого количества",
			methodName: http.MethodPost,
			targetURL:  "/api/orders",
			user:       &customer,
			body: func(t *testing.T) io.Reader {
				invalid := newOrder
				invalid.Items = []models.NewOrderItem{{DesignID: designID, Quantity: 0, License: models.LicensePersonal}}
				return utils.JSONBody(t, invalid)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: `{"errors":[{"field":"items[0].quantity","message":"обязательное поле"}]}`,
		},
		{
			testName:   "Должен создать заказ",
			methodName: http.MethodPost,
			targetURL:  "/api/orders",
			user:       &customer,
			test: func(t *testing.T) {
				orderServiceMock.EXPECT().CreateOrder(gomock.Any(), &customer, newOrder).Return(&created, nil)
			},
			body: func(t *testing.T) io.Reader {
				return utils.JSONBody(t, newOrder)
			},
			expectedCode: http.StatusCreated,
			testResponse: func(t *testing.T, res *http.Response, body string) {
				var payload models.OrderCreated
				require.NoError(t, json.Unmarshal([]byte(body), &payload))

				assert.Equal(t, "Заказ успешно создан", payload.Message)
				require.NotNil(t, payload.Order)
				assert.Equal(t, "ORD240305001", payload.Order.OrderNumber)
				assert.True(t, payload.Order.Total.Equal(decimal.RequireFromString("108.5")))
				assert.Equal(t, models.StatusPending, payload.Order.Status)
				assert.Contains(t, body, `"total":108.5`)
			},
		},
		{
			testName:   "Должен вернуть 404 для несуществующего дизайна",
			methodName: http.MethodPost,
			targetURL:  "/api/orders",
			user:       &customer,
			test: func(t *testing.T) {
				orderServiceMock.EXPECT().CreateOrder(gomock.Any(), &customer, newOrder).Return(nil, services.ErrDesignNotFound)
			},
			body: func(t *testing.T) io.Reader {
				return utils.JSONBody(t, newOrder)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: `{"message":"объект не найден: дизайн"}`,
		},
		{
			testName:   "Должен вернуть 400 для неопубликованного дизайна",
			methodName: http.MethodPost,
			targetURL:  "/api/orders",
			user:       &customer,
			test: func(t *testing.T) {
				orderServiceMock.EXPECT().CreateOrder(gomock.Any(), &customer, newOrder).Return(nil, services.ErrUnavailable)
			},
			body: func(t *testing.T) io.Reader {
				return utils.JSONBody(t, newOrder)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: `{"message":"дизайн недоступен для покупки"}`,
		},
		{
			testName:   "Должен вернуть 503, если номера заказов на день исчерпаны",
			methodName: http.MethodPost,
			targetURL:  "/api/orders",
			user:       &customer,
			test: func(t *testing.T) {
				orderServiceMock.EXPECT().CreateOrder(gomock.Any(), &customer, newOrder).Return(nil, services.ErrDailyCapacityExceeded)
			},
			body: func(t *testing.T) io.Reader {
				return utils.JSONBody(t, newOrder)
			},
			expectedCode:    http.StatusServiceUnavailable,
			expectedMessage: `{"message":"исчерпан лимит номеров заказов на день"}`,
		},
		{
			testName:   "Должен скрыть детали внутренней ошибки",
			methodName: http.MethodPost,
			targetURL:  "/api/orders",
			user:       &customer,
			test: func(t *testing.T) {
				orderServiceMock.EXPECT().CreateOrder(gomock.Any(), &customer, newOrder).Return(nil, errors.New("connection refused"))
			},
			body: func(t *testing.T) io.Reader {
				return utils.JSONBody(t, newOrder)
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: `{"message":"Внутренняя ошибка сервера"}`,
		},
		{
			testName:   "Должен запретить просмотр чужого заказа",
			methodName: http.MethodGet,
			targetURL:  "/api/orders/" + orderID,
			user:       &customer,
			test: func(t *testing.T) {
				orderServiceMock.EXPECT().GetOrder(gomock.Any(), &customer, orderID).Return(nil, services.ErrForbidden)
			},
			expectedCode:    http.StatusForbidden,
			expectedMessage: `{"message":"доступ запрещен"}`,
		},
		{
			testName:   "Должен вернуть 404 для несуществующего заказа",
			methodName: http.MethodGet,
			targetURL:  "/api/orders/unknown",
			user:       &customer,
			test: func(t *testing.T) {
				orderServiceMock.EXPECT().GetOrder(gomock.Any(), &customer, "unknown").Return(nil, services.ErrOrderNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: `{"message":"объект не найден: заказ"}`,
		},
		{
			testName:   "Должен вернуть страницу заказов пользователя",
			methodName: http.MethodGet,
			targetURL:  "/api/orders?page=2&limit=5&status=pending",
			user:       &customer,
			test: func(t *testing.T) {
				orderServiceMock.EXPECT().
					ListUserOrders(gomock.Any(), customer.ID, models.OrderFilter{Status: models.StatusPending, Page: 2, Limit: 5}).
					Return(models.OrderList{
						Orders:     []models.Order{},
						Pagination: models.Pagination{CurrentPage: 2, TotalPages: 1, TotalItems: 3, ItemsPerPage: 5},
					}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: `{"orders":[],"pagination":{"currentPage":2,"totalPages":1,"totalItems":3,"itemsPerPage":5}}`,
		},
		{
			testName:        "Должен отклонить нечисловой номер страницы",
			methodName:      http.MethodGet,
			targetURL:       "/api/orders?page=abc",
			user:            &customer,
			expectedCode:    http.StatusBadRequest,
			expectedMessage: `{"errors":[{"field":"page","message":"значение должно быть целым числом больше 0"}]}`,
		},
		{
			testName:   "Должен отклонить неизвестный статус в фильтре",
			methodName: http.MethodGet,
			targetURL:  "/api/orders?status=lost",
			user:       &customer,
			test: func(t *testing.T) {
				orderServiceMock.EXPECT().
					ListUserOrders(gomock.Any(), customer.ID, models.OrderFilter{Status: "lost"}).
					Return(models.OrderList{}, services.ErrInvalidArgument)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: `{"message":"недопустимое значение"}`,
		},
	})
}

// Тестирование маршрутов администратора
func TestAdminOrderRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authServiceMock := mock_models.NewMockAuthService(ctrl)
	jwtServiceMock := mock_models.NewMockJWTService(ctrl)
	orderServiceMock := mock_models.NewMockOrderService(ctrl)

	testServer := httptest.NewServer(
		New(Config{}, authServiceMock, jwtServiceMock, orderServiceMock, nil).get(),
	)
	defer testServer.Close()

	refunded := models.Order{
		ID:            orderID,
		OrderNumber:   "ORD240305001",
		Status:        models.StatusRefunded,
		PaymentStatus: models.PaymentRefunded,
		Total:         decimal.NewFromInt(217),
		Tracking:      models.Tracking{Updates: []models.TrackingUpdate{}},
	}

	runRouteTests(t, testServer, authServiceMock, jwtServiceMock, []routeTestCase{
		{
			testName:        "Должен запретить покупателю просмотр всех заказов",
			methodName:      http.MethodGet,
			targetURL:       "/api/orders/admin/all",
			user:            &customer,
			expectedCode:    http.StatusForbidden,
			expectedMessage: `{"message":"Доступ разрешен только администратору"}`,
		},
		{
			testName:   "Должен запретить покупателю оформлять возврат",
			methodName: http.MethodPost,
			targetURL:  "/api/orders/" + orderID + "/refund",
			user:       &customer,
			body: func(t *testing.T) io.Reader {
				return strings.NewReader(`{"amount":10,"reason":"брак"}`)
			},
			expectedCode:    http.StatusForbidden,
			expectedMessage: `{"message":"Доступ разрешен только администратору"}`,
		},
		{
			testName:   "Должен вернуть все заказы с фильтром по оплате",
			methodName: http.MethodGet,
			targetURL:  "/api/orders/admin/all?paymentStatus=paid",
			user:       &admin,
			test: func(t *testing.T) {
				orderServiceMock.EXPECT().
					ListAllOrders(gomock.Any(), models.OrderFilter{PaymentStatus: models.PaymentPaid}).
					Return(models.OrderList{
						Orders:     []models.Order{},
						Pagination: models.Pagination{CurrentPage: 1, ItemsPerPage: 10},
					}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: `{"orders":[],"pagination":{"currentPage":1,"totalPages":0,"totalItems":0,"itemsPerPage":10}}`,
		},
		{
			testName:   "Должен отклонить возврат больше суммы заказа",
			methodName: http.MethodPost,
			targetURL:  "/api/orders/" + orderID + "/refund",
			user:       &admin,
			test: func(t *testing.T) {
				orderServiceMock.EXPECT().
					ProcessRefund(gomock.Any(), &admin, orderID, gomock.Any()).
					Return(nil, services.ErrRefundExceedsTotal)
			},
			body: func(t *testing.T) io.Reader {
				return strings.NewReader(`{"amount":1000,"reason":"брак"}`)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: `{"message":"недопустимое значение: сумма возврата превышает сумму заказа"}`,
		},
		{
			testName:   "Должен вернуть ошибку валидации для возврата без причины",
			methodName: http.MethodPost,
			targetURL:  "/api/orders/" + orderID + "/refund",
			user:       &admin,
			body: func(t *testing.T) io.Reader {
				return strings.NewReader(`{"amount":10}`)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: `{"errors":[{"field":"reason","message":"обязательное поле"}]}`,
		},
		{
			testName:   "Должен оформить полный возврат",
			methodName: http.MethodPost,
			targetURL:  "/api/orders/" + orderID + "/refund",
			user:       &admin,
			test: func(t *testing.T) {
				orderServiceMock.EXPECT().
					ProcessRefund(gomock.Any(), &admin, orderID, gomock.Any()).
					DoAndReturn(func(_ any, _ *models.User, _ string, request models.RefundRequest) (*models.Order, error) {
						assert.True(t, request.Amount.Equal(decimal.NewFromInt(217)))
						assert.Equal(t, "брак", request.Reason)
						return &refunded, nil
					})
			},
			body: func(t *testing.T) io.Reader {
				return strings.NewReader(`{"amount":217,"reason":"брак"}`)
			},
			expectedCode: http.StatusOK,
			testResponse: func(t *testing.T, res *http.Response, body string) {
				assert.Contains(t, body, `"status":"refunded"`)
				assert.Contains(t, body, `"paymentStatus":"refunded"`)
			},
		},
		{
			testName:   "Должен сообщить о параллельном изменении заказа",
			methodName: http.MethodPut,
			targetURL:  "/api/orders/" + orderID + "/status",
			user:       &admin,
			test: func(t *testing.T) {
				orderServiceMock.EXPECT().
					UpdateStatus(gomock.Any(), orderID, models.StatusUpdate{Status: models.StatusProcessing}).
					Return(nil, services.ErrConcurrentModification)
			},
			body: func(t *testing.T) io.Reader {
				return strings.NewReader(`{"status":"processing"}`)
			},
			expectedCode:    http.StatusConflict,
			expectedMessage: `{"message":"заказ был изменен параллельно, повторите запрос"}`,
		},
		{
			testName:   "Должен добавить запись доставки",
			methodName: http.MethodPost,
			targetURL:  "/api/orders/" + orderID + "/tracking",
			user:       &admin,
			test: func(t *testing.T) {
				orderServiceMock.EXPECT().
					AddTracking(gomock.Any(), orderID, models.TrackingUpdateRequest{Status: "shipped", Carrier: "DHL"}).
					Return(&refunded, nil)
			},
			body: func(t *testing.T) io.Reader {
				return strings.NewReader(`{"status":"shipped","carrier":"DHL"}`)
			},
			expectedCode: http.StatusOK,
			testResponse: func(t *testing.T, res *http.Response, body string) {
				assert.Contains(t, body, `"orderNumber":"ORD240305001"`)
			},
		},
		{
			testName:   "Должен вернуть сводку по заказам",
			methodName: http.MethodGet,
			targetURL:  "/api/orders/stats/summary",
			user:       &admin,
			test: func(t *testing.T) {
				orderServiceMock.EXPECT().GetStats(gomock.Any()).Return(models.OrderStats{
					TotalOrders:  1,
					TotalRevenue: decimal.NewFromInt(217),
					ByStatus:     []models.StatusCount{{Status: models.StatusRefunded, Count: 1}},
					Daily:        []models.RevenuePoint{},
					Monthly:      []models.RevenuePoint{},
				}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: `{"totalOrders":1,"totalRevenue":217,"byStatus":[{"status":"refunded","count":1}],"daily":[],"monthly":[]}`,
		},
	})
}

// Тестирование маршрутов каталога дизайнов
func TestDesignRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authServiceMock := mock_models.NewMockAuthService(ctrl)
	jwtServiceMock := mock_models.NewMockJWTService(ctrl)
	designServiceMock := mock_models.NewMockDesignService(ctrl)

	testServer := httptest.NewServer(
		New(Config{}, authServiceMock, jwtServiceMock, nil, designServiceMock).get(),
	)
	defer testServer.Close()

	design := models.Design{
		ID:        designID,
		Title:     "Дом у озера",
		Kind:      models.DesignKindPlan2D,
		Price:     decimal.NewFromInt(100),
		Status:    models.DesignStatusPublished,
		CreatedAt: utils.RFC3339Date{Time: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)},
	}

	runRouteTests(t, testServer, authServiceMock, jwtServiceMock, []routeTestCase{
		{
			testName:   "Должен вернуть дизайн",
			methodName: http.MethodGet,
			targetURL:  "/api/designs/" + designID,
			user:       &customer,
			test: func(t *testing.T) {
				designServiceMock.EXPECT().GetDesign(gomock.Any(), designID).Return(&design, nil)
			},
			expectedCode: http.StatusOK,
			expectedMessage: `{"id":"` + designID + `","title":"Дом у озера","kind":"2d-plan","price":100,` +
				`"status":"published","createdAt":"2024-03-05T10:00:00Z"}`,
		},
		{
			testName:   "Должен запретить покупателю добавлять дизайны",
			methodName: http.MethodPost,
			targetURL:  "/api/designs",
			user:       &customer,
			body: func(t *testing.T) io.Reader {
				return strings.NewReader(`{"title":"Дом","kind":"2d-plan","price":10}`)
			},
			expectedCode:    http.StatusForbidden,
			expectedMessage: `{"message":"Доступ разрешен только администратору"}`,
		},
		{
			testName:   "Должен отклонить неизвестный тип дизайна",
			methodName: http.MethodPost,
			targetURL:  "/api/designs",
			user:       &admin,
			body: func(t *testing.T) io.Reader {
				return strings.NewReader(`{"title":"Дом","kind":"sketch","price":10}`)
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: `{"errors":[{"field":"kind","message":"допустимые значения: 2d-plan 3d-model"}]}`,
		},
		{
			testName:   "Должен добавить дизайн",
			methodName: http.MethodPost,
			targetURL:  "/api/designs",
			user:       &admin,
			test: func(t *testing.T) {
				designServiceMock.EXPECT().CreateDesign(gomock.Any(), gomock.Any()).Return(&design, nil)
			},
			body: func(t *testing.T) io.Reader {
				return strings.NewReader(`{"title":"Дом у озера","kind":"2d-plan","price":100,"status":"published"}`)
			},
			expectedCode: http.StatusCreated,
			testResponse: func(t *testing.T, res *http.Response, body string) {
				assert.Contains(t, body, `"id":"`+designID+`"`)
			},
		},
		{
			testName:   "Должен снять дизайн с публикации",
			methodName: http.MethodPatch,
			targetURL:  "/api/designs/" + designID + "/status",
			user:       &admin,
			test: func(t *testing.T) {
				archived := design
				archived.Status = models.DesignStatusArchived
				designServiceMock.EXPECT().
					UpdateDesignStatus(gomock.Any(), designID, models.DesignStatusArchived).
					Return(&archived, nil)
			},
			body: func(t *testing.T) io.Reader {
				return strings.NewReader(`{"status":"archived"}`)
			},
			expectedCode: http.StatusOK,
			testResponse: func(t *testing.T, res *http.Response, body string) {
				assert.Contains(t, body, `"status":"archived"`)
			},
		},
	})
}

// Тестирование служебных маршрутов и ограничения частоты запросов
func TestServiceRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authServiceMock := mock_models.NewMockAuthService(ctrl)
	jwtServiceMock := mock_models.NewMockJWTService(ctrl)

	t.Run("Должен сообщить о недоступности базы данных", func(t *testing.T) {
		testServer := httptest.NewServer(New(Config{
			HealthCheck: func(context.Context) error { return errors.New("нет соединения") },
		}, authServiceMock, jwtServiceMock, nil, nil).get())
		defer testServer.Close()

		res, mes := utils.TestRequest(t, testServer, http.MethodGet, "/healthz", nil, nil)
		assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
		assert.Equal(t, `{"message":"Сервис недоступен: нет соединения"}`, mes)
	})

	t.Run("Должен отдавать метрики без авторизации", func(t *testing.T) {
		testServer := httptest.NewServer(New(Config{}, authServiceMock, jwtServiceMock, nil, nil).get())
		defer testServer.Close()

		res, mes := utils.TestRequest(t, testServer, http.MethodGet, "/metrics", nil, nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, mes, "archmarket_orders_created_total")
	})

	t.Run("Должен ограничить частоту запросов", func(t *testing.T) {
		router := New(Config{RateLimitRPS: 1, RateLimitBurst: 1}, authServiceMock, jwtServiceMock, nil, nil)
		testServer := httptest.NewServer(router.get())
		defer testServer.Close()
		defer router.Shutdown(context.Background())

		res, _ := utils.TestRequest(t, testServer, http.MethodGet, "/healthz", nil, nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)

		res, mes := utils.TestRequest(t, testServer, http.MethodGet, "/healthz", nil, nil)
		assert.Equal(t, http.StatusTooManyRequests, res.StatusCode)
		assert.Equal(t, "1", res.Header.Get("Retry-After"))
		assert.Equal(t, `{"message":"Слишком много запросов"}`, mes)
	})
}

func TestHandlersWithoutParsedBody(t *testing.T) {
	handlers := map[string]http.HandlerFunc{
		"Register":           Register,
		"Login":              Login,
		"CreateDesign":       CreateDesign,
		"UpdateDesignStatus": UpdateDesignStatus,
		"CreateOrder":        CreateOrder,
		"UpdateOrderStatus":  UpdateOrderStatus,
		"AddOrderTracking":   AddOrderTracking,
		"RefundOrder":        RefundOrder,
	}

	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodPost, "/", nil))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"message":"Не удалось извлечь данные из контекста"}`, rec.Body.String())
		})
	}
}
