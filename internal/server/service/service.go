// Package service содержит бизнес-логику приложения.
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dkovalyov/go-user-store/internal/server/config"
	"github.com/dkovalyov/go-user-store/internal/server/models"
)

//go:generate mockgen -source=service.go -destination=mocks/users_repo.go -package=mocks

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Users *UsersService
}

// NewServices собирает все сервисы приложения.
// cfg нужен UsersService (таймаут запросов к БД).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Users: NewUsersService(repos.Users, cfg.DB.QueryTimeout.Std(), nil),
	}
}

// IDGenerator — генератор идентификаторов новых пользователей.
// Выделен в зависимость, чтобы тесты могли подставлять детерминированные id.
type IDGenerator func() string

// NewUUID — генератор по умолчанию: случайный UUID v4 строкой (36 символов).
func NewUUID() string {
	return uuid.NewString()
}

// UserPatch — частичное обновление пользователя.
// nil-поле означает "оставить без изменений".
type UserPatch struct {
	Name  *string
	Email *string
	Age   *int
}

// UsersRepo — репозиторий пользователей (CRUD + health-check).
type UsersRepo interface {
	Create(ctx context.Context, u models.User) error
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context, skip, limit int) ([]models.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (models.User, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
