package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/utils"
)

// NewMeCmd печатает профиль владельца токена.
func NewMeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Показать свой профиль",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			user, err := app.client().Me(cmd.Context(), token)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), user)
		},
	}
}

// NewProfileCmd меняет имя и/или описание. Не переданный флаг не меняется.
//
// Пример использования:
//
//	mesto profile --about "Капитан"
func NewProfileCmd(app *App) *cobra.Command {
	var name, about string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Изменить имя и/или описание",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			if name == "" && about == "" {
				return errors.New("nothing to update: set --name and/or --about")
			}

			user, err := app.client().UpdateProfile(cmd.Context(), token, utils.StrPtrOrNil(name), utils.StrPtrOrNil(about))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), user)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&about, "about", "", "new about")
	return cmd
}

// NewAvatarCmd меняет аватар.
func NewAvatarCmd(app *App) *cobra.Command {
	var avatar string

	cmd := &cobra.Command{
		Use:   "avatar",
		Short: "Изменить аватар",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			user, err := app.client().UpdateAvatar(cmd.Context(), token, avatar)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), user)
		},
	}

	cmd.Flags().StringVar(&avatar, "url", "", "avatar URL")
	cmd.MarkFlagRequired("url")
	return cmd
}

// NewUsersCmd печатает всех пользователей, а с аргументом — одного.
func NewUsersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users [id]",
		Short: "Список пользователей или пользователь по id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}

			c := app.client()
			if len(args) == 1 {
				user, err := c.User(cmd.Context(), token, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), user)
			}

			users, err := c.Users(cmd.Context(), token)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), users)
		},
	}
}
