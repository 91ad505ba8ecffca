// Package cli реализует командный интерфейс (CLI) администратора User Store.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера User Store (например, "http://127.0.0.1:8080").
	ServerURL string
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "http://127.0.0.1:8080",
	}

	cmd := &cobra.Command{
		Use:   "userctl",
		Short: "userctl — администрирование пользователей User Store",
		Long: `userctl — CLI для работы с User Store API.

Команды:
  create   Создать пользователя
  get      Получить пользователя по id
  list     Список пользователей (skip/limit)
  update   Частично обновить пользователя
  delete   Удалить пользователя
  version  Версия и дата сборки

Примеры:

Создание:
  userctl create --name Alice --email alice@example.com --age 30

Чтение:
  userctl get 2f0d1a9e-8f2c-4b51-9c1d-3b1f0a6e9c44

Список:
  userctl list --skip 0 --limit 20

Обновление (меняется только возраст):
  userctl update 2f0d1a9e-8f2c-4b51-9c1d-3b1f0a6e9c44 --age 31

Удаление:
  userctl delete 2f0d1a9e-8f2c-4b51-9c1d-3b1f0a6e9c44
`,
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "http://127.0.0.1:8080", "server base URL")

	cmd.AddCommand(NewUserCreateCmd(app))
	cmd.AddCommand(NewUserGetCmd(app))
	cmd.AddCommand(NewUserListCmd(app))
	cmd.AddCommand(NewUserUpdateCmd(app))
	cmd.AddCommand(NewUserDeleteCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
