package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Renal37/archmarket/internal/models"
	"github.com/Renal37/archmarket/internal/utils"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Определение пользовательских ошибок
var (
	ErrDuplicateOrderNumber = errors.New("номер заказа уже существует")             // Нарушение уникальности номера заказа
	ErrVersionConflict      = errors.New("версия заказа изменилась после чтения") // Заказ обновлен другим запросом
)

const orderColumns = `
	id::text,
	order_number,
	customer_id::text,
	items,
	subtotal,
	tax,
	total,
	status,
	payment_status,
	payment_method,
	billing_address,
	shipping_address,
	notes,
	tracking,
	refund,
	version,
	created_at,
	updated_at
`

// SQL-запросы для работы с заказами
const (
	InsertOrderQuery = `
		INSERT INTO
			orders (
				id, order_number, customer_id, items, subtotal, tax, total,
				status, payment_status, payment_method, billing_address, shipping_address,
				notes, tracking, refund, version, created_at, updated_at
			)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`
	SelectOrderQuery = `SELECT` + orderColumns + `FROM orders WHERE id = $1`

	SelectOrdersQuery      = `SELECT` + orderColumns + `FROM orders`
	SelectOrdersCountQuery = `SELECT count(*) FROM orders`

	// UpdateOrderQuery меняет только изменяемые после оформления поля; состав, суммы
	// и номер заказа не перезаписываются.
	UpdateOrderQuery = `
		UPDATE
			orders
		SET
			status = $3,
			payment_status = $4,
			tracking = $5,
			refund = $6,
			version = $7,
			updated_at = $8
		WHERE
			id = $1 AND version = $2
	`
)

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateOrder сохраняет новый заказ
func (d *Database) CreateOrder(ctx context.Context, order models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("ошибка сериализации позиций заказа: %w", err)
	}
	billing, err := json.Marshal(order.BillingAddress)
	if err != nil {
		return fmt.Errorf("ошибка сериализации адреса плательщика: %w", err)
	}
	shipping, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("ошибка сериализации адреса доставки: %w", err)
	}
	tracking, err := json.Marshal(order.Tracking)
	if err != nil {
		return fmt.Errorf("ошибка сериализации данных доставки: %w", err)
	}
	refund, err := marshalRefund(order.Refund)
	if err != nil {
		return err
	}

	_, err = d.db.Exec(ctx, InsertOrderQuery,
		order.ID,
		order.OrderNumber,
		order.CustomerID,
		items,
		order.Subtotal,
		order.Tax,
		order.Total,
		string(order.Status),
		string(order.PaymentStatus),
		string(order.PaymentMethod),
		billing,
		shipping,
		order.Notes,
		tracking,
		refund,
		order.Version,
		order.CreatedAt.Time,
		order.UpdatedAt.Time,
	)
	if err != nil {
		// Проверяем, не является ли ошибка нарушением уникальности номера
		if isUniqueViolation(err) {
			return ErrDuplicateOrderNumber
		}
		return fmt.Errorf("ошибка создания заказа: %w", err)
	}

	return nil
}

// FindOrder ищет заказ по идентификатору; если заказа нет, возвращает nil без ошибки
func (d *Database) FindOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := scanOrder(d.db.QueryRow(ctx, SelectOrderQuery, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка поиска заказа: %w", err)
	}

	return order, nil
}

// FindOrders возвращает страницу заказов по фильтру (новые сначала) и общее число подходящих заказов
func (d *Database) FindOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, int, error) {
	where, args := orderFilterCondition(filter)

	var total int64
	if err := d.db.QueryRow(ctx, SelectOrdersCountQuery+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчета заказов: %w", err)
	}

	if total == 0 {
		return []models.Order{}, 0, nil
	}

	pageArgs := append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := SelectOrdersQuery + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)

	rows, err := d.db.Query(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка поиска заказов: %w", err)
	}
	defer rows.Close()

	result := make([]models.Order, 0, filter.Limit)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("ошибка обработки строки с заказом: %w", err)
		}
		result = append(result, *order)
	}

	// Проверка на ошибки при итерации по строкам
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	return result, int(total), nil
}

// UpdateOrder сохраняет изменения заказа, если его версия в базе все еще равна expectedVersion
func (d *Database) UpdateOrder(ctx context.Context, order models.Order, expectedVersion int) error {
	tracking, err := json.Marshal(order.Tracking)
	if err != nil {
		return fmt.Errorf("ошибка сериализации данных доставки: %w", err)
	}
	refund, err := marshalRefund(order.Refund)
	if err != nil {
		return err
	}

	tag, err := d.db.Exec(ctx, UpdateOrderQuery,
		order.ID,
		expectedVersion,
		string(order.Status),
		string(order.PaymentStatus),
		tracking,
		refund,
		order.Version,
		order.UpdatedAt.Time,
	)
	if err != nil {
		return fmt.Errorf("ошибка обновления заказа: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrVersionConflict
	}

	return nil
}

func orderFilterCondition(filter models.OrderFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	add := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.CustomerID != "" {
		add("customer_id = $%d", filter.CustomerID)
	}
	if filter.Status != "" {
		add("status = $%d", string(filter.Status))
	}
	if filter.PaymentStatus != "" {
		add("payment_status = $%d", string(filter.PaymentStatus))
	}

	if len(conditions) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func marshalRefund(refund *models.Refund) (any, error) {
	if refund == nil {
		return nil, nil
	}

	data, err := json.Marshal(refund)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации возврата: %w", err)
	}

	return data, nil
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var (
		order                                   models.Order
		items, billing, shipping, tracking, ref []byte
		subtotal, tax, total                    decimal.Decimal
		status, paymentStatus, paymentMethod    string
		createdAt, updatedAt                    time.Time
	)

	err := row.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.CustomerID,
		&items,
		&subtotal,
		&tax,
		&total,
		&status,
		&paymentStatus,
		&paymentMethod,
		&billing,
		&shipping,
		&order.Notes,
		&tracking,
		&ref,
		&order.Version,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("некорректные позиции заказа: %w", err)
	}
	if err := json.Unmarshal(billing, &order.BillingAddress); err != nil {
		return nil, fmt.Errorf("некорректный адрес плательщика: %w", err)
	}
	if err := json.Unmarshal(shipping, &order.ShippingAddress); err != nil {
		return nil, fmt.Errorf("некорректный адрес доставки: %w", err)
	}
	if err := json.Unmarshal(tracking, &order.Tracking); err != nil {
		return nil, fmt.Errorf("некорректные данные доставки: %w", err)
	}
	if order.Tracking.Updates == nil {
		order.Tracking.Updates = []models.TrackingUpdate{}
	}
	if len(ref) > 0 {
		order.Refund = &models.Refund{}
		if err := json.Unmarshal(ref, order.Refund); err != nil {
			return nil, fmt.Errorf("некорректные данные возврата: %w", err)
		}
	}

	order.Subtotal = subtotal
	order.Tax = tax
	order.Total = total
	order.Status = models.OrderStatus(status)
	order.PaymentStatus = models.PaymentStatus(paymentStatus)
	order.PaymentMethod = models.PaymentMethod(paymentMethod)
	order.CreatedAt = utils.RFC3339Date{Time: createdAt}
	order.UpdatedAt = utils.RFC3339Date{Time: updatedAt}

	return &order, nil
}
