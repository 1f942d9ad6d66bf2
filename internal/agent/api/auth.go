// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация, вход и выход.
package api

import (
	"context"
	"net/http"

	dto "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/models"
)

// SignUp регистрирует пользователя и возвращает созданный профиль.
func (c *Client) SignUp(ctx context.Context, req dto.SignUpRequest) (dto.User, error) {
	var resp dto.User
	err := c.do(ctx, http.MethodPost, "/signup", "", req, &resp)
	return resp, err
}

// SignIn выполняет вход и возвращает JWT.
//
// Сервер также ставит cookie, но CLI её не хранит: токен уходит в Authorization.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	var resp dto.TokenResponse
	err := c.do(ctx, http.MethodPost, "/signin", "", dto.SignInRequest{Email: email, Password: password}, &resp)
	return resp.Token, err
}

// SignOut сообщает серверу о выходе.
func (c *Client) SignOut(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/signout", token, nil, nil)
}
