package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Renal37/archmarket/internal/database"
	"github.com/Renal37/archmarket/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -destination=mocks/mock_auth_storage.go . AuthStorage

// Определение пользовательских ошибок
var (
	ErrUserIsAlreadyRegistered = errors.New("пользователь уже зарегистрирован")
	ErrUserIsNotExist          = errors.New("пользователь не существует")
	ErrPasswordIsIncorrect     = errors.New("пароль неверен")
)

// AuthService представляет сервис для аутентификации и управления пользователями
type AuthService struct {
	storage     AuthStorage
	adminLogins map[string]struct{}
}

// AuthStorage определяет интерфейс для взаимодействия с хранилищем данных пользователей
type AuthStorage interface {
	CreateUser(ctx context.Context, user database.UserDB) error           // Создание нового пользователя
	FindUser(ctx context.Context, login string) (*database.UserDB, error) // Поиск пользователя по логину
}

// NewAuthService создает новый экземпляр AuthService с заданным хранилищем.
// Пользователи из adminLogins при регистрации получают роль администратора.
func NewAuthService(storage AuthStorage, adminLogins ...string) *AuthService {
	admins := make(map[string]struct{}, len(adminLogins))
	for _, login := range adminLogins {
		if login != "" {
			admins[login] = struct{}{}
		}
	}

	return &AuthService{storage: storage, adminLogins: admins}
}

// Register регистрирует нового пользователя
func (auth *AuthService) Register(ctx context.Context, user models.UnknownUser) error {
	// Проверка валидности входных данных
	if err := validateUser(user); err != nil {
		return err
	}

	// Хэширование пароля
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хэшировании пароля: %w", err)
	}

	// Роль администратора получают только логины из конфигурации
	role := models.RoleCustomer
	if _, ok := auth.adminLogins[*user.Login]; ok {
		role = models.RoleAdmin
	}

	// Создание пользователя в хранилище
	err = auth.storage.CreateUser(ctx, database.UserDB{
		User: models.User{
			Login: *user.Login,
			Hash:  string(hashedPassword),
			Role:  role,
		},
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicateUser) {
			return ErrUserIsAlreadyRegistered
		}
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

// Login выполняет аутентификацию пользователя
func (auth *AuthService) Login(ctx context.Context, user models.UnknownUser) error {
	// Проверка валидности входных данных
	if err := validateUser(user); err != nil {
		return err
	}

	// Поиск пользователя по логину
	stored, err := auth.lookup(ctx, *user.Login)
	if err != nil {
		return err
	}

	// Сравнение пароля с сохраненным хэшем
	err = bcrypt.CompareHashAndPassword([]byte(stored.Hash), []byte(*user.Password))
	switch {
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordIsIncorrect
	case err != nil:
		return fmt.Errorf("ошибка при сравнении паролей: %w", err)
	}

	return nil
}

// GetUser возвращает информацию о пользователе по логину
func (auth *AuthService) GetUser(ctx context.Context, login string) (*models.User, error) {
	stored, err := auth.lookup(ctx, login)
	if err != nil {
		return nil, err
	}

	return &stored.User, nil
}

// lookup ищет пользователя и превращает отсутствие записи в ErrUserIsNotExist
func (auth *AuthService) lookup(ctx context.Context, login string) (*database.UserDB, error) {
	stored, err := auth.storage.FindUser(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске пользователя: %w", err)
	}
	if stored == nil {
		return nil, ErrUserIsNotExist
	}

	return stored, nil
}

// validateUser проверяет валидность входных данных пользователя
func validateUser(user models.UnknownUser) error {
	if user.Login == nil || *user.Login == "" {
		return invalidArgument("логин не может быть пустым")
	}
	if user.Password == nil || *user.Password == "" {
		return invalidArgument("пароль не может быть пустым")
	}
	return nil
}
