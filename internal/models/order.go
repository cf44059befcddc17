package models

import (
	"time"

	"github.com/Renal37/archmarket/internal/utils"
	"github.com/shopspring/decimal"
)

// OrderStatus статус выполнения заказа.
// Граф переходов не задан: администратор может перевести заказ из любого статуса в любой,
// включая completed -> pending.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
	StatusRefunded   OrderStatus = "refunded"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// PaymentStatus статус оплаты, независимый от OrderStatus.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// LicenseKind категория прав использования купленного дизайна.
type LicenseKind string

const (
	LicensePersonal   LicenseKind = "personal"
	LicenseCommercial LicenseKind = "commercial"
	LicenseExclusive  LicenseKind = "exclusive"
)

type PaymentMethod string

const (
	PaymentMethodStripe       PaymentMethod = "stripe"
	PaymentMethodPaypal       PaymentMethod = "paypal"
	PaymentMethodBankTransfer PaymentMethod = "bank-transfer"
	PaymentMethodCrypto       PaymentMethod = "crypto"
)

type Address struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"max=32"`
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// OrderItem позиция заказа. Price фиксируется в момент покупки и не пересчитывается
// при последующем изменении цены в каталоге.
type OrderItem struct {
	DesignID string          `json:"design"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	License  LicenseKind     `json:"license"`
}

type TrackingUpdate struct {
	Status      string            `json:"status"`
	Location    string            `json:"location,omitempty"`
	Description string            `json:"description,omitempty"`
	Timestamp   utils.RFC3339Date `json:"timestamp"`
}

// Tracking журнал доставки. Status всегда совпадает со статусом последней записи Updates.
type Tracking struct {
	Number  string           `json:"number,omitempty"`
	Carrier string           `json:"carrier,omitempty"`
	Status  string           `json:"status,omitempty"`
	Updates []TrackingUpdate `json:"updates"`
}

type Refund struct {
	Amount      decimal.Decimal   `json:"amount"`
	Reason      string            `json:"reason"`
	ProcessedAt utils.RFC3339Date `json:"processedAt"`
	ProcessedBy string            `json:"processedBy"`
}

type Order struct {
	ID              string            `json:"id"`
	OrderNumber     string            `json:"orderNumber"`
	CustomerID      string            `json:"customer"`
	Items           []OrderItem       `json:"items"`
	Subtotal        decimal.Decimal   `json:"subtotal"`
	Tax             decimal.Decimal   `json:"tax"`
	Total           decimal.Decimal   `json:"total"`
	Status          OrderStatus       `json:"status"`
	PaymentStatus   PaymentStatus     `json:"paymentStatus"`
	PaymentMethod   PaymentMethod     `json:"paymentMethod"`
	BillingAddress  Address           `json:"billingAddress"`
	ShippingAddress Address           `json:"shippingAddress"`
	Notes           string            `json:"notes,omitempty"`
	Tracking        Tracking          `json:"tracking"`
	Refund          *Refund           `json:"refund,omitempty"`
	Version         int               `json:"-"`
	CreatedAt       utils.RFC3339Date `json:"createdAt"`
	UpdatedAt       utils.RFC3339Date `json:"updatedAt"`
}

type NewOrderItem struct {
	DesignID string      `json:"designId" validate:"required"`
	Quantity int         `json:"quantity" validate:"required,min=1"`
	License  LicenseKind `json:"license" validate:"required,oneof=personal commercial exclusive"`
}

type NewOrder struct {
	Items           []NewOrderItem `json:"items" validate:"required,min=1,dive"`
	PaymentMethod   PaymentMethod  `json:"paymentMethod" validate:"required,oneof=stripe paypal bank-transfer crypto"`
	BillingAddress  *Address       `json:"billingAddress" validate:"required"`
	ShippingAddress *Address       `json:"shippingAddress,omitempty" validate:"omitempty"`
	Notes           string         `json:"notes,omitempty" validate:"max=1000"`
}

type OrderCreated struct {
	Message string `json:"message"`
	Order   *Order `json:"order"`
}

type StatusUpdate struct {
	Status        OrderStatus    `json:"status" validate:"required"`
	PaymentStatus *PaymentStatus `json:"paymentStatus,omitempty"`
}

type TrackingUpdateRequest struct {
	Status      string `json:"status" validate:"required,max=64"`
	Location    string `json:"location,omitempty" validate:"max=200"`
	Description string `json:"description,omitempty" validate:"max=1000"`
	Number      string `json:"number,omitempty" validate:"max=64"`
	Carrier     string `json:"carrier,omitempty" validate:"max=64"`
}

type RefundRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason" validate:"required,max=500"`
}

// OrderFilter параметры выборки списка заказов.
type OrderFilter struct {
	CustomerID    string
	Status        OrderStatus
	PaymentStatus PaymentStatus
	Page          int
	Limit         int
}

type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

type OrderList struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

type StatusCount struct {
	Status OrderStatus `json:"status"`
	Count  int64       `json:"count"`
}

type RevenuePoint struct {
	Period  string          `json:"period"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// OrderStats сводка для администратора. Выручка считается только по оплаченным заказам.
type OrderStats struct {
	TotalOrders  int64           `json:"totalOrders"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	ByStatus     []StatusCount   `json:"byStatus"`
	Daily        []RevenuePoint  `json:"daily"`
	Monthly      []RevenuePoint  `json:"monthly"`
}

type OrderEventKind string

const (
	EventOrderCreated  OrderEventKind = "created"
	EventStatusChanged OrderEventKind = "status_changed"
	EventTrackingAdded OrderEventKind = "tracking_added"
	EventRefunded      OrderEventKind = "refunded"
)

// OrderEvent запись журнала изменений заказа.
type OrderEvent struct {
	ID          string
	OrderID     string
	OrderNumber string
	Kind        OrderEventKind
	Payload     map[string]any
	OccurredAt  time.Time
}
