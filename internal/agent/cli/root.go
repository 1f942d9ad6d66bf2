// Package cli реализует командный интерфейс (CLI) клиента Mesto.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальных учётных данных (токена) из конфигурационного файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/agent/api"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/agent/config"
)

// DefaultServerURL — адрес сервера по умолчанию.
const DefaultServerURL = "http://127.0.0.1:3000"

// ErrNotSignedIn — команде нужен токен, а его нет.
var ErrNotSignedIn = errors.New("not signed in, run: mesto signin")

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к серверу и загруженные учётные данные.
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера Mesto.
	ServerURL string
	// Insecure — не проверять TLS-сертификат сервера.
	Insecure bool

	// CredsPath — путь к файлу с сохранённым токеном.
	CredsPath string
	// Creds — загруженные учётные данные из файла конфигурации.
	// Может быть nil, если загрузка не выполнялась или завершилась ошибкой.
	Creds *config.Credentials
}

// client создаёт API-клиент с настройками приложения.
func (app *App) client() *api.Client {
	return NewAPIClient(app.ServerURL, api.Options{Insecure: app.Insecure})
}

// token возвращает сохранённый токен или ErrNotSignedIn.
func (app *App) token() (string, error) {
	if !app.Creds.SignedIn() {
		return "", ErrNotSignedIn
	}
	return app.Creds.Token, nil
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE определяется путь к файлу учётных данных и загружается токен.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:   "mesto",
		Short: "Mesto CLI — пользователи и карточки сервиса Mesto",
		Long: `Mesto CLI.

Команды:
  signup    Регистрация нового пользователя
  signin    Вход (токен сохраняется локально)
  signout   Выход
  me        Свой профиль
  profile   Изменить имя и/или описание
  avatar    Изменить аватар
  users     Список пользователей или один пользователь по id
  cards     Карточки: list, add, rm, like, dislike
  version   Версия и дата сборки

Примеры:

Регистрация:
  mesto signup --email test@example.com --password StrongPass123

Вход:
  mesto signin --email test@example.com
  (пароль будет запрошен без отображения)

Карточка:
  mesto cards add --name "Байкал" --link https://example.com/baikal.jpg
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.CredsPath == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				app.CredsPath = p
			}

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", DefaultServerURL, "server base URL")
	cmd.PersistentFlags().BoolVar(&app.Insecure, "insecure", false, "skip TLS certificate verification (dev only)")
	cmd.PersistentFlags().StringVar(&app.CredsPath, "creds", "", "credentials file (default ~/.mesto/credentials.json)")

	cmd.AddCommand(NewSignUpCmd(app))
	cmd.AddCommand(NewSignInCmd(app))
	cmd.AddCommand(NewSignOutCmd(app))
	cmd.AddCommand(NewMeCmd(app))
	cmd.AddCommand(NewProfileCmd(app))
	cmd.AddCommand(NewAvatarCmd(app))
	cmd.AddCommand(NewUsersCmd(app))
	cmd.AddCommand(NewCardsCmd(app))
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
