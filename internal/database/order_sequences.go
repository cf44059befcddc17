package database

import (
	"context"
	"fmt"
	"time"
)

// NextOrderSequenceQuery атомарно увеличивает счетчик дня. Конкурентные вставки одного дня
// сериализуются на первичном ключе, поэтому каждый вызов получает собственное значение.
const NextOrderSequenceQuery = `
	INSERT INTO
		order_sequences (day, value)
	VALUES ($1::date, 1)
	ON CONFLICT (day) DO UPDATE
		SET value = order_sequences.value + 1
	RETURNING value
`

// NextDailySequence возвращает следующий порядковый номер заказа за календарный день day.
func (d *Database) NextDailySequence(ctx context.Context, day time.Time) (int, error) {
	var value int32

	if err := d.db.QueryRow(ctx, NextOrderSequenceQuery, day.Format(time.DateOnly)).Scan(&value); err != nil {
		return 0, fmt.Errorf("ошибка получения порядкового номера заказа: %w", err)
	}

	return int(value), nil
}
