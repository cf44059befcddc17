package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Renal37/archmarket/internal/database"
	"github.com/Renal37/archmarket/internal/logger"
	"github.com/Renal37/archmarket/internal/metrics"
	"github.com/Renal37/archmarket/internal/models"
	"github.com/Renal37/archmarket/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock_order_storage.go . OrderStorage,DesignLookup,OrderNumberCounter

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	maxOrderNumberAttempts = 5

	statsDailyWindow   = 30
	statsMonthlyWindow = 12
)

// DefaultTaxRate ставка налога, если в конфигурации не задана другая.
var DefaultTaxRate = decimal.RequireFromString("0.085")

// OrderStorage хранилище заказов.
type OrderStorage interface {
	CreateOrder(ctx context.Context, order models.Order) error
	FindOrder(ctx context.Context, orderID string) (*models.Order, error)
	FindOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, int, error)
	UpdateOrder(ctx context.Context, order models.Order, expectedVersion int) error
	FindOrderStats(ctx context.Context, dailySince, monthlySince time.Time) (*models.OrderStats, error)
}

// DesignLookup поиск дизайна каталога при оформлении заказа.
type DesignLookup interface {
	FindDesign(ctx context.Context, designID string) (*models.Design, error)
}

// OrderService реализует жизненный цикл заказа: оформление, смену статусов,
// журнал доставки и возвраты.
type OrderService struct {
	storage OrderStorage
	designs DesignLookup
	counter OrderNumberCounter
	events  EventRecorder
	taxRate decimal.Decimal
	now     func() time.Time
}

// NewOrderService создает новый экземпляр OrderService.
func NewOrderService(
	storage OrderStorage,
	designs DesignLookup,
	counter OrderNumberCounter,
	events EventRecorder,
	taxRate decimal.Decimal,
) *OrderService {
	return &OrderService{
		storage: storage,
		designs: designs,
		counter: counter,
		events:  events,
		taxRate: taxRate,
		now:     time.Now,
	}
}

// CreateOrder оформляет заказ: фиксирует цены дизайнов, считает итоги и присваивает номер.
func (o *OrderService) CreateOrder(ctx context.Context, customer *models.User, request models.NewOrder) (*models.Order, error) {
	if len(request.Items) == 0 {
		return nil, invalidArgument("заказ должен содержать хотя бы одну позицию")
	}
	if request.BillingAddress == nil {
		return nil, invalidArgument("не указан адрес плательщика")
	}

	items := make([]models.OrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		if item.Quantity < 1 {
			return nil, invalidArgument("количество должно быть не меньше 1")
		}

		design, err := o.findDesign(ctx, item.DesignID)
		if err != nil {
			return nil, err
		}

		if design.Status != models.DesignStatusPublished {
			return nil, fmt.Errorf("%w: %s", ErrUnavailable, design.ID)
		}

		items = append(items, models.OrderItem{
			DesignID: design.ID,
			Quantity: item.Quantity,
			Price:    design.Price,
			License:  item.License,
		})
	}

	totals := ComputeTotals(items, o.taxRate)

	now := o.now()
	day := startOfDay(now)

	shipping := *request.BillingAddress
	if request.ShippingAddress != nil {
		shipping = *request.ShippingAddress
	}

	order := models.Order{
		ID:              uuid.NewString(),
		CustomerID:      customer.ID,
		Items:           items,
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		Total:           totals.Total,
		Status:          models.StatusPending,
		PaymentStatus:   models.PaymentPending,
		PaymentMethod:   request.PaymentMethod,
		BillingAddress:  *request.BillingAddress,
		ShippingAddress: shipping,
		Notes:           request.Notes,
		Tracking:        models.Tracking{Updates: []models.TrackingUpdate{}},
		Version:         1,
		CreatedAt:       utils.RFC3339Date{Time: now},
		UpdatedAt:       utils.RFC3339Date{Time: now},
	}

	if err := o.insertWithNumber(ctx, &order, day); err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	logger.Log.Info("заказ создан",
		zap.String("orderNumber", order.OrderNumber),
		zap.String("customer", customer.ID),
		zap.String("total", order.Total.StringFixed(2)),
	)

	o.events.Record(models.OrderEvent{
		ID:          uuid.NewString(),
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Kind:        models.EventOrderCreated,
		Payload:     map[string]any{"total": order.Total.StringFixed(2), "items": len(order.Items)},
		OccurredAt:  now,
	})

	return &order, nil
}

// insertWithNumber присваивает заказу номер дня и сохраняет его. Если номер уже занят
// (например, счетчик Redis начал день заново), берется следующий номер.
func (o *OrderService) insertWithNumber(ctx context.Context, order *models.Order, day time.Time) error {
	for attempt := 1; attempt <= maxOrderNumberAttempts; attempt++ {
		sequence, err := o.counter.NextDailySequence(ctx, day)
		if err != nil {
			return fmt.Errorf("ошибка получения номера заказа: %w", err)
		}

		// Переполнение дня завершает попытки сразу
		order.OrderNumber, err = FormatOrderNumber(day, sequence)
		if err != nil {
			return err
		}

		err = o.storage.CreateOrder(ctx, *order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, database.ErrDuplicateOrderNumber) {
			return fmt.Errorf("ошибка создания заказа: %w", err)
		}

		logger.Log.Warn("номер заказа уже занят, берем следующий",
			zap.String("orderNumber", order.OrderNumber),
			zap.Int("attempt", attempt),
		)
	}

	return fmt.Errorf("%w: не удалось подобрать свободный номер за %d попыток", ErrConcurrentModification, maxOrderNumberAttempts)
}

// GetOrder возвращает заказ владельцу или администратору.
func (o *OrderService) GetOrder(ctx context.Context, actor *models.User, orderID string) (*models.Order, error) {
	order, err := o.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin() && order.CustomerID != actor.ID {
		return nil, ErrForbidden
	}

	return order, nil
}

// ListUserOrders возвращает страницу заказов пользователя.
func (o *OrderService) ListUserOrders(ctx context.Context, userID string, filter models.OrderFilter) (models.OrderList, error) {
	filter.CustomerID = userID
	filter.PaymentStatus = ""

	return o.listOrders(ctx, filter)
}

// ListAllOrders возвращает страницу всех заказов (для администратора).
func (o *OrderService) ListAllOrders(ctx context.Context, filter models.OrderFilter) (models.OrderList, error) {
	filter.CustomerID = ""

	return o.listOrders(ctx, filter)
}

func (o *OrderService) listOrders(ctx context.Context, filter models.OrderFilter) (models.OrderList, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return models.OrderList{}, invalidArgument("статус заказа %q", filter.Status)
	}
	if filter.PaymentStatus != "" && !filter.PaymentStatus.IsValid() {
		return models.OrderList{}, invalidArgument("статус оплаты %q", filter.PaymentStatus)
	}

	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	orders, total, err := o.storage.FindOrders(ctx, filter)
	if err != nil {
		return models.OrderList{}, fmt.Errorf("ошибка поиска заказов: %w", err)
	}

	if orders == nil {
		orders = []models.Order{}
	}

	return models.OrderList{
		Orders: orders,
		Pagination: models.Pagination{
			CurrentPage:  filter.Page,
			TotalPages:   (total + filter.Limit - 1) / filter.Limit,
			TotalItems:   total,
			ItemsPerPage: filter.Limit,
		},
	}, nil
}

// UpdateStatus меняет статус заказа и, при необходимости, статус оплаты.
func (o *OrderService) UpdateStatus(ctx context.Context, orderID string, update models.StatusUpdate) (*models.Order, error) {
	return o.transition(ctx, orderID, ChangeStatus{
		Status:        update.Status,
		PaymentStatus: update.PaymentStatus,
	})
}

// AddTracking дописывает запись в журнал доставки заказа.
func (o *OrderService) AddTracking(ctx context.Context, orderID string, update models.TrackingUpdateRequest) (*models.Order, error) {
	return o.transition(ctx, orderID, AddTracking{
		Status:      update.Status,
		Location:    update.Location,
		Description: update.Description,
		Number:      update.Number,
		Carrier:     update.Carrier,
	})
}

// ProcessRefund оформляет возврат по заказу от имени администратора.
func (o *OrderService) ProcessRefund(ctx context.Context, admin *models.User, orderID string, request models.RefundRequest) (*models.Order, error) {
	order, err := o.transition(ctx, orderID, ProcessRefund{
		Amount:      request.Amount,
		Reason:      request.Reason,
		ProcessedBy: admin.ID,
	})
	if err != nil {
		return nil, err
	}

	metrics.OrderRefunds.Inc()

	return order, nil
}

// GetStats возвращает сводку заказов и выручки.
func (o *OrderService) GetStats(ctx context.Context) (models.OrderStats, error) {
	today := startOfDay(o.now())
	dailySince := today.AddDate(0, 0, -(statsDailyWindow - 1))
	monthlySince := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, -(statsMonthlyWindow - 1), 0)

	stats, err := o.storage.FindOrderStats(ctx, dailySince, monthlySince)
	if err != nil {
		return models.OrderStats{}, fmt.Errorf("ошибка получения статистики заказов: %w", err)
	}

	return *stats, nil
}

// transition загружает заказ, применяет команду и сохраняет результат с проверкой версии.
func (o *OrderService) transition(ctx context.Context, orderID string, command TransitionCommand) (*models.Order, error) {
	current, err := o.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	next, event, err := ApplyTransition(*current, command, o.now())
	if err != nil {
		return nil, err
	}
	next.Version = current.Version + 1

	if err := o.storage.UpdateOrder(ctx, next, current.Version); err != nil {
		if errors.Is(err, database.ErrVersionConflict) {
			return nil, ErrConcurrentModification
		}
		return nil, fmt.Errorf("ошибка сохранения заказа: %w", err)
	}

	logger.Log.Info("заказ изменен",
		zap.String("orderNumber", next.OrderNumber),
		zap.String("event", string(event.Kind)),
		zap.String("status", string(next.Status)),
		zap.String("paymentStatus", string(next.PaymentStatus)),
	)

	o.events.Record(event)

	return &next, nil
}

func (o *OrderService) findOrder(ctx context.Context, orderID string) (*models.Order, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, ErrOrderNotFound
	}

	order, err := o.storage.FindOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска заказа: %w", err)
	}

	if order == nil {
		return nil, ErrOrderNotFound
	}

	return order, nil
}

func (o *OrderService) findDesign(ctx context.Context, designID string) (*models.Design, error) {
	if _, err := uuid.Parse(designID); err != nil {
		return nil, fmt.Errorf("%w %s", ErrDesignNotFound, designID)
	}

	design, err := o.designs.FindDesign(ctx, designID)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска дизайна: %w", err)
	}

	if design == nil {
		return nil, fmt.Errorf("%w %s", ErrDesignNotFound, designID)
	}

	return design, nil
}
