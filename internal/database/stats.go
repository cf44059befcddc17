package database

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Renal37/archmarket/internal/models"
	"github.com/shopspring/decimal"
)

// SQL-запросы для сводной статистики. Выручка учитывает только оплаченные заказы.
const (
	SelectOrderTotalsQuery = `
		SELECT
			count(*),
			coalesce(sum(total) FILTER (WHERE payment_status = 'paid'), 0)
		FROM
			orders
	`
	SelectOrdersByStatusQuery = `
		SELECT
			status,
			count(*)
		FROM
			orders
		GROUP BY
			status
		ORDER BY
			status
	`
	SelectDailyRevenueQuery = `
		SELECT
			to_char(date_trunc('day', created_at AT TIME ZONE $2::text), 'YYYY-MM-DD'),
			count(*),
			coalesce(sum(total) FILTER (WHERE payment_status = 'paid'), 0)
		FROM
			orders
		WHERE
			created_at >= $1
		GROUP BY
			1
		ORDER BY
			1
	`
	SelectMonthlyRevenueQuery = `
		SELECT
			to_char(date_trunc('month', created_at AT TIME ZONE $2::text), 'YYYY-MM'),
			count(*),
			coalesce(sum(total) FILTER (WHERE payment_status = 'paid'), 0)
		FROM
			orders
		WHERE
			created_at >= $1
		GROUP BY
			1
		ORDER BY
			1
	`
)

// FindOrderStats собирает сводку заказов: общие итоги, разбивку по статусам,
// выручку по дням начиная с dailySince и по месяцам начиная с monthlySince.
// Дни и месяцы считаются в часовом поясе dailySince, а не в поясе сессии базы.
func (d *Database) FindOrderStats(ctx context.Context, dailySince, monthlySince time.Time) (*models.OrderStats, error) {
	stats := &models.OrderStats{
		ByStatus: []models.StatusCount{},
	}

	if err := d.db.QueryRow(ctx, SelectOrderTotalsQuery).Scan(&stats.TotalOrders, &stats.TotalRevenue); err != nil {
		return nil, fmt.Errorf("ошибка подсчета итогов заказов: %w", err)
	}

	rows, err := d.db.Query(ctx, SelectOrdersByStatusQuery)
	if err != nil {
		return nil, fmt.Errorf("ошибка подсчета заказов по статусам: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("ошибка обработки строки статистики: %w", err)
		}
		stats.ByStatus = append(stats.ByStatus, models.StatusCount{Status: models.OrderStatus(status), Count: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	zone := timeZoneName(dailySince)

	if stats.Daily, err = d.findRevenue(ctx, SelectDailyRevenueQuery, dailySince, zone); err != nil {
		return nil, err
	}
	if stats.Monthly, err = d.findRevenue(ctx, SelectMonthlyRevenueQuery, monthlySince, zone); err != nil {
		return nil, err
	}

	return stats, nil
}

func (d *Database) findRevenue(ctx context.Context, query string, since time.Time, zone string) ([]models.RevenuePoint, error) {
	rows, err := d.db.Query(ctx, query, since, zone)
	if err != nil {
		return nil, fmt.Errorf("ошибка подсчета выручки: %w", err)
	}
	defer rows.Close()

	result := []models.RevenuePoint{}
	for rows.Next() {
		var (
			point   models.RevenuePoint
			revenue decimal.Decimal
		)
		if err := rows.Scan(&point.Period, &point.Orders, &revenue); err != nil {
			return nil, fmt.Errorf("ошибка обработки строки выручки: %w", err)
		}
		point.Revenue = revenue
		result = append(result, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка итерации по строкам: %w", err)
	}

	return result, nil
}

// timeZoneName возвращает имя пояса для AT TIME ZONE. Для time.Local берется TZ,
// а если он не задан, фиксированное смещение в POSIX-записи (знак в ней обратный).
func timeZoneName(t time.Time) string {
	name := t.Location().String()
	if name == "Local" {
		name = strings.TrimPrefix(os.Getenv("TZ"), ":")
	}
	if name != "" && name != "Local" {
		return name
	}

	_, offset := t.Zone()
	if offset == 0 {
		return "UTC"
	}

	sign := "-"
	if offset < 0 {
		sign = "+"
		offset = -offset
	}

	return fmt.Sprintf("UTC%s%02d:%02d", sign, offset/3600, offset%3600/60)
}
