package services

import (
	"context"
	"fmt"
	"time"
)

// maxDailySequence ограничен тремя цифрами в номере заказа.
const maxDailySequence = 999

// OrderNumberCounter выдает порядковый номер заказа за календарный день.
// Реализация обязана быть атомарной: два параллельных вызова за один день
// никогда не получают одно и то же значение.
type OrderNumberCounter interface {
	NextDailySequence(ctx context.Context, day time.Time) (int, error)
}

// FormatOrderNumber собирает номер вида ORDyyMMddNNN, например ORD250115007.
func FormatOrderNumber(day time.Time, sequence int) (string, error) {
	if sequence < 1 || sequence > maxDailySequence {
		return "", fmt.Errorf("%w: %s, порядковый номер %d", ErrDailyCapacityExceeded, day.Format(time.DateOnly), sequence)
	}

	return fmt.Sprintf("ORD%s%03d", day.Format("060102"), sequence), nil
}

// startOfDay возвращает начало календарного дня в часовом поясе t.
func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
