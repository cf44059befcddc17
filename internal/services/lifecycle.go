package services

import (
	"strings"
	"time"

	"github.com/Renal37/archmarket/internal/models"
	"github.com/Renal37/archmarket/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Totals денежные итоги заказа. Total всегда равен Subtotal + Tax.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals считает сумму позиций по зафиксированным ценам, налог по ставке taxRate
// (округление до копеек) и итог.
func ComputeTotals(items []models.OrderItem, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	tax := subtotal.Mul(taxRate).Round(2)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// TransitionCommand команда изменения заказа для ApplyTransition.
type TransitionCommand interface {
	apply(order *models.Order, now time.Time) (models.OrderEventKind, map[string]any, error)
}

// ChangeStatus выставляет статус и, если задан, статус оплаты.
// Любой статус может смениться на любой другой.
type ChangeStatus struct {
	Status        models.OrderStatus
	PaymentStatus *models.PaymentStatus
}

func (c ChangeStatus) apply(order *models.Order, _ time.Time) (models.OrderEventKind, map[string]any, error) {
	if !c.Status.IsValid() {
		return "", nil, invalidArgument("статус заказа %q", c.Status)
	}
	if c.PaymentStatus != nil && !c.PaymentStatus.IsValid() {
		return "", nil, invalidArgument("статус оплаты %q", *c.PaymentStatus)
	}

	payload := map[string]any{
		"from":   string(order.Status),
		"status": string(c.Status),
	}

	order.Status = c.Status
	if c.PaymentStatus != nil {
		payload["paymentFrom"] = string(order.PaymentStatus)
		payload["paymentStatus"] = string(*c.PaymentStatus)
		order.PaymentStatus = *c.PaymentStatus
	}

	return models.EventStatusChanged, payload, nil
}

// AddTracking дописывает запись в журнал доставки. Повторный статус тоже добавляется.
type AddTracking struct {
	Status      string
	Location    string
	Description string
	Number      string
	Carrier     string
}

func (c AddTracking) apply(order *models.Order, now time.Time) (models.OrderEventKind, map[string]any, error) {
	status := strings.TrimSpace(c.Status)
	if status == "" {
		return "", nil, invalidArgument("статус доставки не может быть пустым")
	}

	order.Tracking.Updates = append(order.Tracking.Updates, models.TrackingUpdate{
		Status:      status,
		Location:    c.Location,
		Description: c.Description,
		Timestamp:   utils.RFC3339Date{Time: now},
	})
	order.Tracking.Status = status
	if c.Number != "" {
		order.Tracking.Number = c.Number
	}
	if c.Carrier != "" {
		order.Tracking.Carrier = c.Carrier
	}

	return models.EventTrackingAdded, map[string]any{
		"status":   status,
		"location": c.Location,
		"updates":  len(order.Tracking.Updates),
	}, nil
}

// ProcessRefund оформляет возврат. Сумма может быть меньше итога заказа, но статус
// и статус оплаты всегда становятся refunded: частичный возврат отдельным статусом не выражается.
type ProcessRefund struct {
	Amount      decimal.Decimal
	Reason      string
	ProcessedBy string
}

func (c ProcessRefund) apply(order *models.Order, now time.Time) (models.OrderEventKind, map[string]any, error) {
	if !c.Amount.IsPositive() {
		return "", nil, invalidArgument("сумма возврата должна быть больше нуля")
	}
	if c.Amount.GreaterThan(order.Total) {
		return "", nil, ErrRefundExceedsTotal
	}
	reason := strings.TrimSpace(c.Reason)
	if reason == "" {
		return "", nil, invalidArgument("причина возврата не может быть пустой")
	}

	order.Refund = &models.Refund{
		Amount:      c.Amount,
		Reason:      reason,
		ProcessedAt: utils.RFC3339Date{Time: now},
		ProcessedBy: c.ProcessedBy,
	}
	order.Status = models.StatusRefunded
	order.PaymentStatus = models.PaymentRefunded

	return models.EventRefunded, map[string]any{
		"amount":      c.Amount.String(),
		"reason":      reason,
		"processedBy": c.ProcessedBy,
	}, nil
}

// ApplyTransition применяет команду к копии заказа и возвращает новое состояние вместе
// с событием для журнала. Исходный заказ не изменяется; при ошибке он возвращается как есть.
// Сохранение результата остается за вызывающим кодом.
func ApplyTransition(order models.Order, command TransitionCommand, now time.Time) (models.Order, models.OrderEvent, error) {
	next := cloneOrder(order)

	kind, payload, err := command.apply(&next, now)
	if err != nil {
		return order, models.OrderEvent{}, err
	}

	next.UpdatedAt = utils.RFC3339Date{Time: now}

	return next, models.OrderEvent{
		ID:          uuid.NewString(),
		OrderID:     next.ID,
		OrderNumber: next.OrderNumber,
		Kind:        kind,
		Payload:     payload,
		OccurredAt:  now,
	}, nil
}

func cloneOrder(order models.Order) models.Order {
	clone := order

	clone.Items = append([]models.OrderItem(nil), order.Items...)
	clone.Tracking.Updates = append(make([]models.TrackingUpdate, 0, len(order.Tracking.Updates)+1), order.Tracking.Updates...)

	if order.Refund != nil {
		refund := *order.Refund
		clone.Refund = &refund
	}

	return clone
}
