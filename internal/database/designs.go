package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Renal37/archmarket/internal/models"
	"github.com/Renal37/archmarket/internal/utils"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SQL-запросы для работы с каталогом дизайнов
const (
	InsertDesignQuery = `
		INSERT INTO
			designs (id, title, kind, price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	SelectDesignQuery = `
		SELECT
			id::text,
			title,
			kind,
			price,
			status,
			created_at
		FROM
			designs
		WHERE
			id = $1
	`
	UpdateDesignStatusQuery = `
		UPDATE
			designs
		SET
			status = $2
		WHERE
			id = $1
	`
)

// CreateDesign сохраняет новый дизайн
func (d *Database) CreateDesign(ctx context.Context, design models.Design) error {
	_, err := d.db.Exec(ctx, InsertDesignQuery,
		design.ID,
		design.Title,
		string(design.Kind),
		design.Price,
		string(design.Status),
		design.CreatedAt.Time,
	)
	if err != nil {
		return fmt.Errorf("ошибка создания дизайна: %w", err)
	}

	return nil
}

// FindDesign ищет дизайн по идентификатору; если дизайна нет, возвращает nil без ошибки
func (d *Database) FindDesign(ctx context.Context, designID string) (*models.Design, error) {
	var (
		design    models.Design
		kind      string
		price     decimal.Decimal
		status    string
		createdAt time.Time
	)

	err := d.db.QueryRow(ctx, SelectDesignQuery, designID).
		Scan(&design.ID, &design.Title, &kind, &price, &status, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка поиска дизайна: %w", err)
	}

	design.Kind = models.DesignKind(kind)
	design.Price = price
	design.Status = models.DesignStatus(status)
	design.CreatedAt = utils.RFC3339Date{Time: createdAt}

	return &design, nil
}

// UpdateDesignStatus меняет статус публикации; возвращает false, если дизайн не найден
func (d *Database) UpdateDesignStatus(ctx context.Context, designID string, status models.DesignStatus) (bool, error) {
	tag, err := d.db.Exec(ctx, UpdateDesignStatusQuery, designID, string(status))
	if err != nil {
		return false, fmt.Errorf("ошибка обновления статуса дизайна: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
