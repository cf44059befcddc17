package services

import (
	"errors"
	"fmt"
)

// Ошибки предметной области. Обработчики HTTP сопоставляют их с кодами ответа через errors.Is.
var (
	ErrNotFound               = errors.New("объект не найден")
	ErrForbidden              = errors.New("доступ запрещен")
	ErrUnavailable            = errors.New("дизайн недоступен для покупки")
	ErrInvalidArgument        = errors.New("недопустимое значение")
	ErrConcurrentModification = errors.New("заказ был изменен параллельно, повторите запрос")
	ErrDailyCapacityExceeded  = errors.New("исчерпан лимит номеров заказов на день")
)

var (
	ErrOrderNotFound      = fmt.Errorf("%w: заказ", ErrNotFound)
	ErrDesignNotFound     = fmt.Errorf("%w: дизайн", ErrNotFound)
	ErrRefundExceedsTotal = fmt.Errorf("%w: сумма возврата превышает сумму заказа", ErrInvalidArgument)
)

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
