package models

import (
	"github.com/Renal37/archmarket/internal/utils"
	"github.com/shopspring/decimal"
)

type DesignKind string

const (
	DesignKindPlan2D  DesignKind = "2d-plan"
	DesignKindModel3D DesignKind = "3d-model"
)

// DesignStatus состояние публикации дизайна в каталоге.
type DesignStatus string

const (
	DesignStatusDraft     DesignStatus = "draft"
	DesignStatusPublished DesignStatus = "published"
	DesignStatusArchived  DesignStatus = "archived"
)

func (s DesignStatus) IsValid() bool {
	switch s {
	case DesignStatusDraft, DesignStatusPublished, DesignStatusArchived:
		return true
	}
	return false
}

type Design struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Kind      DesignKind        `json:"kind"`
	Price     decimal.Decimal   `json:"price"`
	Status    DesignStatus      `json:"status"`
	CreatedAt utils.RFC3339Date `json:"createdAt"`
}

type NewDesign struct {
	Title  string          `json:"title" validate:"required,max=200"`
	Kind   DesignKind      `json:"kind" validate:"required,oneof=2d-plan 3d-model"`
	Price  decimal.Decimal `json:"price"`
	Status DesignStatus    `json:"status" validate:"omitempty,oneof=draft published archived"`
}

type DesignStatusUpdate struct {
	Status DesignStatus `json:"status" validate:"required,oneof=draft published archived"`
}
