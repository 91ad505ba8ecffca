package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUserDeleteCmd создаёт CLI-команду удаления пользователя по id.
//
// Удаление необратимо (hard delete на сервере).
//
// Пример использования:
//
//	userctl delete 2f0d1a9e-8f2c-4b51-9c1d-3b1f0a6e9c44
func NewUserDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "delete <id>",
		Short:        "Удалить пользователя по id",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)

			if err := c.DeleteUser(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted user %s\n", args[0])
			return nil
		},
	}

	return cmd
}
