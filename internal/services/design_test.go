package services

import (
	"context"
	"testing"
	"time"

	"github.com/Renal37/archmarket/internal/models"
	mock_services "github.com/Renal37/archmarket/internal/services/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignService(t *testing.T) {
	now := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	newService := func(t *testing.T) (*DesignService, *mock_services.MockDesignStorage) {
		storage := mock_services.NewMockDesignStorage(gomock.NewController(t))
		service := NewDesignService(storage)
		service.now = func() time.Time { return now }
		return service, storage
	}

	t.Run("Новый дизайн без статуса создается черновиком", func(t *testing.T) {
		service, storage := newService(t)

		storage.EXPECT().CreateDesign(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, design models.Design) error {
			assert.Equal(t, models.DesignStatusDraft, design.Status)
			assert.Equal(t, "99.99", design.Price.String())
			return nil
		})

		design, err := service.CreateDesign(context.Background(), models.NewDesign{
			Title: "Коттедж",
			Kind:  models.DesignKindModel3D,
			Price: decimal.RequireFromString("99.989"),
		})
		require.NoError(t, err)

		assert.NotEmpty(t, design.ID)
		assert.Equal(t, now, design.CreatedAt.Time)
	})

	t.Run("Цена должна быть положительной", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.CreateDesign(context.Background(), models.NewDesign{
			Title: "Коттедж",
			Kind:  models.DesignKindModel3D,
			Price: decimal.Zero,
		})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Публикация дизайна", func(t *testing.T) {
		service, storage := newService(t)

		storage.EXPECT().UpdateDesignStatus(gomock.Any(), testDesignID1, models.DesignStatusPublished).Return(true, nil)
		storage.EXPECT().FindDesign(gomock.Any(), testDesignID1).Return(publishedDesign(testDesignID1, 10), nil)

		design, err := service.UpdateDesignStatus(context.Background(), testDesignID1, models.DesignStatusPublished)
		require.NoError(t, err)
		assert.Equal(t, models.DesignStatusPublished, design.Status)
	})

	t.Run("Смена статуса несуществующего дизайна", func(t *testing.T) {
		service, storage := newService(t)

		storage.EXPECT().UpdateDesignStatus(gomock.Any(), testDesignID1, models.DesignStatusArchived).Return(false, nil)

		_, err := service.UpdateDesignStatus(context.Background(), testDesignID1, models.DesignStatusArchived)
		assert.ErrorIs(t, err, ErrDesignNotFound)
	})

	t.Run("Неизвестный статус дизайна", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.UpdateDesignStatus(context.Background(), testDesignID1, "hidden")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Поиск дизайна", func(t *testing.T) {
		service, storage := newService(t)

		storage.EXPECT().FindDesign(gomock.Any(), testDesignID2).Return(nil, nil)

		_, err := service.GetDesign(context.Background(), testDesignID2)
		assert.ErrorIs(t, err, ErrDesignNotFound)

		_, err = service.GetDesign(context.Background(), "plan-1")
		assert.ErrorIs(t, err, ErrDesignNotFound)
	})
}
