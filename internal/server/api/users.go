package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dkovalyov/go-user-store/internal/server/models"
	serr "github.com/dkovalyov/go-user-store/internal/shared/errors"
	sharedModels "github.com/dkovalyov/go-user-store/internal/shared/models"
)

// Дефолты пагинации, если query-параметры не переданы
const (
	defaultSkip  = 0
	defaultLimit = 100
)

// toDTO переводит серверную модель в модель HTTP API.
func toDTO(u models.User) sharedModels.User {
	return sharedModels.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Age:   u.Age,
	}
}

// CreateUser создаёт нового пользователя.
//
// Сервер:
//   - валидирует name/email/age по правилам схемы;
//   - проверяет занятость email (pre-check + unique constraint);
//   - генерирует id (UUID v4) на своей стороне.
//
// Возможные ошибки:
//   - ErrBadJSON / ErrInvalidInput — неверное тело или поля запроса;
//   - ErrEmailTaken — email уже зарегистрирован;
//   - ErrInternal — внутренняя ошибка сервера.
//
// @Summary      Create user
// @Description  Creates a new user. The id is generated server-side (UUID v4).
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body models.CreateUserRequest true "Create user request"
// @Success      201 {object} models.User
// @Failure      400 {object} ErrorResponse "Invalid input, bad JSON or duplicate email"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req sharedModels.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	u, err := h.Svc.Users.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrEmailTaken):
			WriteError(w, http.StatusBadRequest, err)
		default:
			if h.Log != nil {
				h.Log.Logger.Sugar().Errorw(
					"create user failed",
					"error", err,
				)
			}
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, toDTO(u))
}

// ListUsers возвращает страницу пользователей.
//
// Пагинация offset-based: ?skip=&limit= (по умолчанию skip=0, limit=100).
// limit=0 легально возвращает пустой список.
//
// @Summary      List users
// @Description  Returns users with offset/limit pagination (defaults skip=0, limit=100).
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        skip  query int false "rows to skip"  default(0)
// @Param        limit query int false "max rows"      default(100)
// @Success      200 {array} models.User
// @Failure      400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip", defaultSkip)
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}
	limit, err := queryInt(r, "limit", defaultLimit)
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	users, err := h.Svc.Users.List(r.Context(), skip, limit)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		default:
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	resp := make([]sharedModels.User, 0, len(users))
	for _, u := range users {
		resp = append(resp, toDTO(u))
	}

	WriteJSON(w, http.StatusOK, resp)
}

// GetUser возвращает пользователя по id.
//
// Некорректный формат id не отличается от отсутствующего — оба дают 404.
//
// @Summary      Get user by id
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID (UUID)"
// @Success      200 {object} models.User
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, err := h.Svc.Users.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, toDTO(u))
}

// UpdateUser частично обновляет пользователя.
//
// Идентификатор передаётся в URL-параметре `{id}`, изменяемые поля — в теле.
// Непереданные поля остаются без изменений.
//
// @Summary      Update user
// @Description  Partially updates name/email/age. Absent fields keep prior values.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id      path string true "User ID (UUID)"
// @Param        request body models.UpdateUserRequest true "Fields to update"
// @Success      200 {object} models.User
// @Failure      400 {object} ErrorResponse "Invalid input, bad JSON or duplicate email"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req sharedModels.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	u, err := h.Svc.Users.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrEmailTaken):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			if h.Log != nil {
				h.Log.Logger.Sugar().Errorw(
					"update user failed",
					"error", err,
					"user_id", id,
				)
			}
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, toDTO(u))
}

// DeleteUser удаляет пользователя по id (hard delete).
//
// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID (UUID)"
// @Success      204 "No content"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Svc.Users.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, err)
		default:
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Ping проверяет доступность сервера и базы данных.
//
// @Summary      Health check
// @Tags         health
// @Success      200 "OK"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /ping [get]
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Users.Ping(r.Context()); err != nil {
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// queryInt читает целочисленный query-параметр с дефолтом.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
