package services

import (
	"context"

	"github.com/Renal37/archmarket/internal/logger"
	"github.com/Renal37/archmarket/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks/mock_events.go . EventStorage,EventRecorder

// EventStorage сохраняет события заказов.
type EventStorage interface {
	CreateOrderEvent(ctx context.Context, event models.OrderEvent) error
}

// EventRecorder принимает события изменения заказов.
type EventRecorder interface {
	Record(event models.OrderEvent)
}

type eventQueue interface {
	Enqueue(job Job) error
}

// OrderEventRecorder асинхронно пишет журнал событий заказов через очередь заданий.
// Ошибки записи журнала не влияют на результат запроса и только логируются.
type OrderEventRecorder struct {
	storage EventStorage
	queue   eventQueue
}

func NewOrderEventRecorder(storage EventStorage, queue eventQueue) *OrderEventRecorder {
	return &OrderEventRecorder{storage: storage, queue: queue}
}

// Record ставит событие в очередь на запись.
func (r *OrderEventRecorder) Record(event models.OrderEvent) {
	err := r.queue.Enqueue(func(ctx context.Context) {
		if err := r.storage.CreateOrderEvent(ctx, event); err != nil {
			logger.Log.Error("не удалось сохранить событие заказа",
				zap.String("orderNumber", event.OrderNumber),
				zap.String("kind", string(event.Kind)),
				zap.Error(err),
			)
		}
	})

	if err != nil {
		logger.Log.Warn("событие заказа отброшено",
			zap.String("orderNumber", event.OrderNumber),
			zap.String("kind", string(event.Kind)),
			zap.Error(err),
		)
	}
}
