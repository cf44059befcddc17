package models

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -destination=mocks/mock_auth.go . AuthService
type AuthService interface {
	Register(ctx context.Context, user UnknownUser) error

	Login(ctx context.Context, user UnknownUser) error

	GetUser(ctx context.Context, login string) (*User, error)
}

//go:generate mockgen -destination=mocks/mock_jwt.go . JWTService
type JWTService interface {
	GenerateJWT(subject string) (string, error)

	ValidateToken(token string) (*jwt.Token, error)
}

//go:generate mockgen -destination=mocks/mock_order.go . OrderService
type OrderService interface {
	CreateOrder(ctx context.Context, customer *User, request NewOrder) (*Order, error)

	GetOrder(ctx context.Context, actor *User, orderID string) (*Order, error)

	ListUserOrders(ctx context.Context, userID string, filter OrderFilter) (OrderList, error)

	ListAllOrders(ctx context.Context, filter OrderFilter) (OrderList, error)

	UpdateStatus(ctx context.Context, orderID string, update StatusUpdate) (*Order, error)

	AddTracking(ctx context.Context, orderID string, update TrackingUpdateRequest) (*Order, error)

	ProcessRefund(ctx context.Context, admin *User, orderID string, request RefundRequest) (*Order, error)

	GetStats(ctx context.Context) (OrderStats, error)
}

//go:generate mockgen -destination=mocks/mock_design.go . DesignService
type DesignService interface {
	CreateDesign(ctx context.Context, design NewDesign) (*Design, error)

	GetDesign(ctx context.Context, designID string) (*Design, error)

	UpdateDesignStatus(ctx context.Context, designID string, status DesignStatus) (*Design, error)
}
