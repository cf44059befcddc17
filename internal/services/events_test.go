package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Renal37/archmarket/internal/models"
	mock_services "github.com/Renal37/archmarket/internal/services/mocks"
	"github.com/golang/mock/gomock"
)

func TestOrderEventRecorder(t *testing.T) {
	event := models.OrderEvent{
		ID:          "event-id",
		OrderID:     testOrderID,
		OrderNumber: "ORD250115001",
		Kind:        models.EventRefunded,
		Payload:     map[string]any{"amount": "217"},
		OccurredAt:  time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Событие записывается в хранилище через очередь", func(t *testing.T) {
		storage := mock_services.NewMockEventStorage(gomock.NewController(t))
		queue := NewJobQueueService(context.Background(), 4, 1)
		recorder := NewOrderEventRecorder(storage, queue)

		storage.EXPECT().CreateOrderEvent(gomock.Any(), event).Return(nil)

		recorder.Record(event)
		queue.Shutdown()
	})

	t.Run("Ошибка записи журнала только логируется", func(t *testing.T) {
		storage := mock_services.NewMockEventStorage(gomock.NewController(t))
		queue := NewJobQueueService(context.Background(), 4, 1)
		recorder := NewOrderEventRecorder(storage, queue)

		storage.EXPECT().CreateOrderEvent(gomock.Any(), event).Return(errors.New("disk full"))

		recorder.Record(event)
		queue.Shutdown()
	})

	t.Run("При закрытой очереди событие отбрасывается", func(t *testing.T) {
		storage := mock_services.NewMockEventStorage(gomock.NewController(t))
		queue := NewJobQueueService(context.Background(), 4, 1)
		queue.Shutdown()

		NewOrderEventRecorder(storage, queue).Record(event)
	})
}
