package models

// User — плоская модель пользователя, используемая в HTTP API.
//
// Поля:
//   - ID: уникальный идентификатор пользователя (UUID v4 в виде строки, 36 символов)
//   - Name: имя пользователя (1–50 символов)
//   - Email: email пользователя, уникален среди всех пользователей
//   - Age: возраст (1–150)
//
// ID всегда генерируется сервером и никогда не принимается от клиента.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// CreateUserRequest — запрос на создание нового пользователя.
//
// Используется в:
//
//	POST /users
//
// Теги validate проверяются библиотекой go-playground/validator
// в сервисном слое до обращения к базе.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=50"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"required,gt=0,lte=150"`
}

// UpdateUserRequest — запрос на обновление пользователя (partial update) по ID.
//
// Используется в:
//
//	PUT /users/{id}
//
// Поля Name/Email/Age — указатели, чтобы отличать "поле не передано"
// от "поле передано" (omitempty работает корректно).
// nil означает "оставить без изменений"; очистить поле до пустого
// значения через этот запрос нельзя.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Age   *int    `json:"age,omitempty" validate:"omitempty,gt=0,lte=150"`
}
