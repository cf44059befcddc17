package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/Renal37/archmarket/internal/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrDuplicateUser = errors.New("пользователь уже существует")

// SQL-запросы для работы с пользователями
const (
	InsertUserQuery = `
		INSERT INTO
			users (login, hash, role)
		VALUES ($1, $2, $3)
	`
	SelectUserQuery = `
		SELECT
			id::text,
			login,
			hash,
			role
		FROM
			users
		WHERE
			login = $1
	`
)

// UserDB пользователь в том виде, в котором он хранится в базе, вместе с хэшем пароля.
type UserDB struct {
	models.User
}

// CreateUser сохраняет пользователя; без явной роли он становится покупателем
func (d *Database) CreateUser(ctx context.Context, user UserDB) error {
	role := user.Role
	if role == "" {
		role = models.RoleCustomer
	}

	_, err := d.db.Exec(ctx, InsertUserQuery, user.Login, user.Hash, string(role))
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

// FindUser ищет пользователя по логину; если пользователя нет, возвращает nil без ошибки
func (d *Database) FindUser(ctx context.Context, login string) (*UserDB, error) {
	var (
		user UserDB
		role string
	)

	err := d.db.QueryRow(ctx, SelectUserQuery, login).Scan(&user.ID, &user.Login, &user.Hash, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	user.Role = models.Role(role)

	return &user, nil
}

// isUniqueViolation сообщает, нарушено ли ограничение уникальности
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
