// Package http реализует маршрутизацию HTTP-слоя сервера User Store.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов.
package http

import (
	"net/http"

	"github.com/dkovalyov/go-user-store/internal/server/api"
	"github.com/dkovalyov/go-user-store/internal/server/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware логирования для всех запросов;
//   - health-check /ping;
//   - CRUD-маршруты ресурса /users;
//   - swagger UI.
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// health-check
	r.Get("/ping", h.Ping)

	// CRUD запросы для пользователей
	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.CreateUser)       // создание, id генерирует сервер
		r.Get("/", h.ListUsers)         // список с ?skip=&limit=
		r.Get("/{id}", h.GetUser)       // точечное чтение по id
		r.Put("/{id}", h.UpdateUser)    // partial update: только переданные поля
		r.Delete("/{id}", h.DeleteUser) // hard delete
	})

	return r
}
