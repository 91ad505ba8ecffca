package api

import (
	"fmt"
	"net/url"

	sharedModels "github.com/dkovalyov/go-user-store/internal/shared/models"
)

// CreateUser создаёт нового пользователя на сервере.
//
// Выполняет запрос:
//
//	POST /users
//
// Тело запроса сериализуется в JSON из sharedModels.CreateUserRequest.
// id генерируется сервером и возвращается в ответе.
func (c *Client) CreateUser(req sharedModels.CreateUserRequest) (sharedModels.User, error) {
	var resp sharedModels.User
	err := c.PostJSON("/users", req, &resp)
	return resp, err
}

// GetUser возвращает пользователя по ID.
//
// Выполняет запрос:
//
//	GET /users/{id}
func (c *Client) GetUser(id string) (sharedModels.User, error) {
	var resp sharedModels.User
	err := c.GetJSON(fmt.Sprintf("/users/%s", url.PathEscape(id)), &resp)
	return resp, err
}

// ListUsers загружает страницу пользователей с сервера.
//
// Выполняет запрос:
//
//	GET /users?skip=N&limit=M
func (c *Client) ListUsers(skip, limit int) ([]sharedModels.User, error) {
	var resp []sharedModels.User
	err := c.GetJSON(fmt.Sprintf("/users?skip=%d&limit=%d", skip, limit), &resp)
	return resp, err
}

// UpdateUser обновляет существующего пользователя на сервере по ID.
//
// Выполняет запрос:
//
//	PUT /users/{id}
//
// Для partial update передаются только изменяемые поля
// (nil-поля сервер оставляет без изменений).
func (c *Client) UpdateUser(id string, req sharedModels.UpdateUserRequest) (sharedModels.User, error) {
	var resp sharedModels.User
	err := c.PutJSON(fmt.Sprintf("/users/%s", url.PathEscape(id)), req, &resp)
	return resp, err
}

// DeleteUser удаляет пользователя на сервере по ID.
//
// Выполняет запрос:
//
//	DELETE /users/{id}
//
// Возвращает nil при успешном удалении (204 No Content).
func (c *Client) DeleteUser(id string) error {
	return c.DeleteJSON(fmt.Sprintf("/users/%s", url.PathEscape(id)), nil)
}
