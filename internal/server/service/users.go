package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dkovalyov/go-user-store/internal/server/models"
	serr "github.com/dkovalyov/go-user-store/internal/shared/errors"
	sharedModels "github.com/dkovalyov/go-user-store/internal/shared/models"
)

// UsersService реализует бизнес-логику работы с пользователями.
// Сервис:
//   - валидирует входные данные (go-playground/validator по тегам DTO);
//   - генерирует id новых пользователей;
//   - выполняет best-effort проверку занятости email до записи
//     (авторитетен unique constraint в базе, его нарушение ловит repository);
//   - не знает о HTTP и БД напрямую.
type UsersService struct {
	repo     UsersRepo
	validate *validator.Validate
	newID    IDGenerator

	queryTimeout time.Duration
}

// NewUsersService создаёт новый UsersService.
//
// gen == nil означает генерацию случайных UUID v4 (NewUUID);
// тесты передают сюда детерминированный генератор.
func NewUsersService(repo UsersRepo, queryTimeout time.Duration, gen IDGenerator) *UsersService {
	if gen == nil {
		gen = NewUUID
	}
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &UsersService{
		repo:         repo,
		validate:     validator.New(),
		newID:        gen,
		queryTimeout: queryTimeout,
	}
}

// opCtx ограничивает каждую операцию с хранилищем дедлайном queryTimeout.
// Соединение не удерживается дольше одного стейтмента (или короткой
// read-then-write последовательности в Update).
func (s *UsersService) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}

// validateInput прогоняет DTO через validator и превращает ошибки
// в ErrInvalidInput с пер-полевыми деталями.
func (s *UsersService) validateInput(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", serr.ErrInvalidInput, fieldDetail(verrs))
	}
	return serr.ErrInvalidInput
}

// fieldDetail собирает человекочитаемое описание нарушенных правил по полям.
func fieldDetail(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("%s must be 1-50 characters", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", field))
		case "gt", "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than 0 and at most 150", field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}

// normalizeEmail приводит email к каноничному виду для сравнения и хранения.
func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// Create создаёт нового пользователя.
//
// Валидация: name 1–50 символов, email валидного формата, age в (0, 150].
// id генерируется сервером (UUID v4) и никогда не принимается от клиента.
//
// Между pre-check и INSERT возможна гонка по email: конкурентный Create
// с тем же email упрётся в unique constraint, repository вернёт ErrEmailTaken.
//
// Ошибки:
//   - ErrInvalidInput — невалидные поля (с деталями)
//   - ErrEmailTaken — email уже зарегистрирован
//   - ErrInternal — ошибка хранилища
func (s *UsersService) Create(ctx context.Context, req sharedModels.CreateUserRequest) (models.User, error) {
	req.Email = normalizeEmail(req.Email)

	if err := s.validateInput(req); err != nil {
		return models.User{}, err
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	// best-effort проверка занятости email до INSERT
	_, err := s.repo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return models.User{}, serr.ErrEmailTaken
	case errors.Is(err, serr.ErrNotFound):
		// email свободен
	default:
		return models.User{}, err
	}

	u := models.User{
		ID:    s.newID(),
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return models.User{}, err
	}

	return u, nil
}

// GetByID возвращает пользователя по id.
//
// Формат id не проверяется: некорректная строка просто не находит строку
// и отдаётся как ErrNotFound (не раскрываем ожидания по формату).
func (s *UsersService) GetByID(ctx context.Context, id string) (models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	return s.repo.GetByID(ctx, id)
}

// List возвращает страницу пользователей.
//
// skip и limit должны быть неотрицательными; limit=0 легально
// и возвращает пустой список. Дефолты (skip=0, limit=100) проставляет api слой.
func (s *UsersService) List(ctx context.Context, skip, limit int) ([]models.User, error) {
	if skip < 0 || limit < 0 {
		return nil, fmt.Errorf("%w: skip and limit must be non-negative", serr.ErrInvalidInput)
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	return s.repo.List(ctx, skip, limit)
}

// Update частично обновляет пользователя.
//
// Переданные поля валидируются по тем же правилам, что и при создании;
// nil-поля остаются без изменений. Пустой patch — no-op, возвращает
// пользователя как есть.
//
// Ошибки:
//   - ErrInvalidInput — невалидные переданные поля
//   - ErrNotFound — пользователя с таким id нет
//   - ErrEmailTaken — новый email занят другим пользователем
//   - ErrInternal — ошибка хранилища
func (s *UsersService) Update(ctx context.Context, id string, req sharedModels.UpdateUserRequest) (models.User, error) {
	if req.Email != nil {
		norm := normalizeEmail(*req.Email)
		req.Email = &norm
	}

	if err := s.validateInput(req); err != nil {
		return models.User{}, err
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	return s.repo.Update(ctx, id, UserPatch{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
}

// Delete удаляет пользователя навсегда (hard delete, без tombstone).
func (s *UsersService) Delete(ctx context.Context, id string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	return s.repo.Delete(ctx, id)
}

// Ping проверяет доступность хранилища (health-check).
func (s *UsersService) Ping(ctx context.Context) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	return s.repo.Ping(ctx)
}
