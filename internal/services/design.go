package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Renal37/archmarket/internal/logger"
	"github.com/Renal37/archmarket/internal/models"
	"github.com/Renal37/archmarket/internal/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock_design_storage.go . DesignStorage

// DesignStorage хранилище каталога дизайнов.
type DesignStorage interface {
	CreateDesign(ctx context.Context, design models.Design) error
	FindDesign(ctx context.Context, designID string) (*models.Design, error)
	UpdateDesignStatus(ctx context.Context, designID string, status models.DesignStatus) (bool, error)
}

// DesignService управляет каталогом в объеме, нужном для оформления заказов.
type DesignService struct {
	storage DesignStorage
	now     func() time.Time
}

func NewDesignService(storage DesignStorage) *DesignService {
	return &DesignService{storage: storage, now: time.Now}
}

// CreateDesign добавляет дизайн в каталог. Без явного статуса дизайн создается черновиком.
func (d *DesignService) CreateDesign(ctx context.Context, request models.NewDesign) (*models.Design, error) {
	if !request.Price.IsPositive() {
		return nil, invalidArgument("цена должна быть больше нуля")
	}

	status := request.Status
	if status == "" {
		status = models.DesignStatusDraft
	}
	if !status.IsValid() {
		return nil, invalidArgument("статус дизайна %q", status)
	}

	design := models.Design{
		ID:        uuid.NewString(),
		Title:     request.Title,
		Kind:      request.Kind,
		Price:     request.Price.Round(2),
		Status:    status,
		CreatedAt: utils.RFC3339Date{Time: d.now()},
	}

	if err := d.storage.CreateDesign(ctx, design); err != nil {
		return nil, fmt.Errorf("ошибка создания дизайна: %w", err)
	}

	logger.Log.Info("дизайн добавлен в каталог", zap.String("design", design.ID), zap.String("status", string(status)))

	return &design, nil
}

// GetDesign возвращает дизайн по идентификатору.
func (d *DesignService) GetDesign(ctx context.Context, designID string) (*models.Design, error) {
	if _, err := uuid.Parse(designID); err != nil {
		return nil, ErrDesignNotFound
	}

	design, err := d.storage.FindDesign(ctx, designID)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска дизайна: %w", err)
	}

	if design == nil {
		return nil, ErrDesignNotFound
	}

	return design, nil
}

// UpdateDesignStatus публикует, снимает с публикации или архивирует дизайн.
// Уже оформленные заказы не затрагиваются.
func (d *DesignService) UpdateDesignStatus(ctx context.Context, designID string, status models.DesignStatus) (*models.Design, error) {
	if !status.IsValid() {
		return nil, invalidArgument("статус дизайна %q", status)
	}
	if _, err := uuid.Parse(designID); err != nil {
		return nil, ErrDesignNotFound
	}

	updated, err := d.storage.UpdateDesignStatus(ctx, designID, status)
	if err != nil {
		return nil, fmt.Errorf("ошибка обновления статуса дизайна: %w", err)
	}

	if !updated {
		return nil, ErrDesignNotFound
	}

	return d.GetDesign(ctx, designID)
}
