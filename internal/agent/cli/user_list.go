package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUserListCmd создаёт CLI-команду получения списка пользователей.
//
// Пагинация offset-based, как и у сервера: --skip/--limit
// (по умолчанию 0/100). Вывод — по одному пользователю на строку.
//
// Пример использования:
//
//	userctl list --skip 0 --limit 20
func NewUserListCmd(app *App) *cobra.Command {
	var (
		skip  int
		limit int
	)

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "Список пользователей (skip/limit)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)

			users, err := c.ListUsers(skip, limit)
			if err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no users")
				return nil
			}

			for _, u := range users {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n", u.ID, u.Name, u.Email, u.Age)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "rows to skip")
	cmd.Flags().IntVar(&limit, "limit", 100, "max rows")

	return cmd
}
