package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUserGetCmd создаёт CLI-команду получения пользователя по id.
//
// Пример использования:
//
//	userctl get 2f0d1a9e-8f2c-4b51-9c1d-3b1f0a6e9c44
func NewUserGetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "get <id>",
		Short:        "Получить пользователя по id",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)

			u, err := c.GetUser(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n", u.ID, u.Name, u.Email, u.Age)
			return nil
		},
	}

	return cmd
}
