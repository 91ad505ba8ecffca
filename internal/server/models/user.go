// Серверная модель пользователя
package models

// User — строка таблицы users.
//
// ID хранится как строка (varchar(36)), а не uuid.UUID: за счёт этого
// некорректный идентификатор в запросе просто не находит строку
// и отдаётся как not found, без отдельной ошибки формата.
type User struct {
	ID    string
	Name  string
	Email string
	Age   int
}
