package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Renal37/archmarket/internal/models"
)

const InsertOrderEventQuery = `
	INSERT INTO
		order_events (id, order_id, order_number, kind, payload, occurred_at)
	VALUES ($1, $2, $3, $4, $5, $6)
`

// CreateOrderEvent добавляет запись в журнал событий заказа
func (d *Database) CreateOrderEvent(ctx context.Context, event models.OrderEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("ошибка сериализации события заказа: %w", err)
	}

	_, err = d.db.Exec(ctx, InsertOrderEventQuery,
		event.ID,
		event.OrderID,
		event.OrderNumber,
		string(event.Kind),
		payload,
		event.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("ошибка сохранения события заказа: %w", err)
	}

	return nil
}
