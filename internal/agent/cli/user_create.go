package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sharedModels "github.com/dkovalyov/go-user-store/internal/shared/models"
)

// NewUserCreateCmd создаёт CLI-команду для создания нового пользователя.
//
// Команда отправляет на сервер имя, email и возраст; id генерирует сервер
// и возвращает его в ответе.
//
// Обязательные флаги:
//
//	--name   — имя пользователя (1–50 символов)
//	--email  — email (должен быть валидным и незанятым)
//	--age    — возраст (1–150)
//
// Примеры использования:
//
//	userctl create --name Alice --email alice@example.com --age 30
//
// В случае успешного выполнения команда выводит: "created user <id>".
func NewUserCreateCmd(app *App) *cobra.Command {
	var (
		name  string
		email string
		age   int
	)

	cmd := &cobra.Command{
		Use:          "create",
		Short:        "Создать нового пользователя",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || email == "" {
				return fmt.Errorf("--name and --email are required")
			}

			c := NewAPIClient(app.ServerURL)

			created, err := c.CreateUser(sharedModels.CreateUserRequest{
				Name:  name,
				Email: email,
				Age:   age,
			})
			if err != nil {
				return err
			}
			if created.ID == "" {
				return fmt.Errorf("server returned empty id on create")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created user %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "user name (1-50 chars)")
	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().IntVar(&age, "age", 0, "user age (1-150)")

	return cmd
}
