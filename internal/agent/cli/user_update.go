package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sharedModels "github.com/dkovalyov/go-user-store/internal/shared/models"
)

// NewUserUpdateCmd создаёт CLI-команду частичного обновления пользователя.
//
// В запрос попадают только флаги, которые были явно переданы
// (cmd.Flags().Changed) — остальные поля сервер оставляет без изменений.
//
// Примеры использования:
//
//	# поменять только возраст
//	userctl update 2f0d1a9e-8f2c-4b51-9c1d-3b1f0a6e9c44 --age 31
//
//	# поменять имя и email
//	userctl update 2f0d1a9e-8f2c-4b51-9c1d-3b1f0a6e9c44 --name Bob --email bob@example.com
func NewUserUpdateCmd(app *App) *cobra.Command {
	var (
		name  string
		email string
		age   int
	)

	cmd := &cobra.Command{
		Use:          "update <id>",
		Short:        "Частично обновить пользователя",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req sharedModels.UpdateUserRequest

			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("email") {
				req.Email = &email
			}
			if cmd.Flags().Changed("age") {
				req.Age = &age
			}

			if req.Name == nil && req.Email == nil && req.Age == nil {
				return fmt.Errorf("nothing to update: pass at least one of --name/--email/--age")
			}

			c := NewAPIClient(app.ServerURL)

			u, err := c.UpdateUser(args[0], req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated user %s\n", u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new user name")
	cmd.Flags().StringVar(&email, "email", "", "new user email")
	cmd.Flags().IntVar(&age, "age", 0, "new user age")

	return cmd
}
