package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/agent/config"
	dto "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/models"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/utils"
)

// NewSignUpCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Обязателен --email. name, about и avatar необязательны: сервер подставит
// значения по умолчанию.
//
// Пример использования:
//
//	mesto signup --email test@example.com --password StrongPass123
func NewSignUpCmd(app *App) *cobra.Command {
	var req dto.SignUpRequest
	var name, about, avatar string
	var pw passwordFlags

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Регистрация нового пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := pw.get(cmd)
			if err != nil {
				return err
			}
			req.Password = password
			// пустой флаг не отправляем, иначе сервер ответит 400
			req.Name = utils.StrPtrOrNil(name)
			req.About = utils.StrPtrOrNil(about)
			req.Avatar = utils.StrPtrOrNil(avatar)

			user, err := app.client().SignUp(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registration successful, id=%s\n", user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "email for registration")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&about, "about", "", "about")
	cmd.Flags().StringVar(&avatar, "avatar", "", "avatar URL")
	pw.register(cmd)
	cmd.MarkFlagRequired("email")

	return cmd
}

// NewSignInCmd создаёт CLI-команду для входа.
//
// Полученный токен сохраняется в локальный конфигурационный файл
// и дальше отправляется в заголовке Authorization.
//
// Пример использования:
//
//	mesto signin --email test@example.com
func NewSignInCmd(app *App) *cobra.Command {
	var email string
	var pw passwordFlags

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Вход (токен сохраняется локально)",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := pw.get(cmd)
			if err != nil {
				return err
			}

			token, err := app.client().SignIn(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			app.Creds = &config.Credentials{Token: token, Email: email}
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "signin ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for signin")
	pw.register(cmd)
	cmd.MarkFlagRequired("email")

	return cmd
}

// NewSignOutCmd создаёт CLI-команду выхода: сообщает серверу и удаляет локальный токен.
//
// Локальный токен удаляется, даже если сервер недоступен.
func NewSignOutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Выход (удаляет локальный токен)",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}

			serverErr := app.client().SignOut(cmd.Context(), token)
			if err := config.Remove(app.CredsPath); err != nil {
				return err
			}
			app.Creds = &config.Credentials{}

			if serverErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "server signout failed: %v\n", serverErr)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}
