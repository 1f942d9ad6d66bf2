package api

import (
	"context"
	"net/http"
	"net/url"

	dto "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/models"
)

// Me — профиль владельца токена.
func (c *Client) Me(ctx context.Context, token string) (dto.User, error) {
	var resp dto.User
	err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &resp)
	return resp, err
}

// Users — все пользователи.
func (c *Client) Users(ctx context.Context, token string) ([]dto.User, error) {
	var resp []dto.User
	err := c.do(ctx, http.MethodGet, "/users", token, nil, &resp)
	return resp, err
}

// User — пользователь по id.
func (c *Client) User(ctx context.Context, token, id string) (dto.User, error) {
	var resp dto.User
	err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), token, nil, &resp)
	return resp, err
}

// UpdateProfile меняет name и/или about. nil-поле не отправляется.
func (c *Client) UpdateProfile(ctx context.Context, token string, name, about *string) (dto.User, error) {
	var resp dto.User
	err := c.do(ctx, http.MethodPatch, "/users/me", token, dto.UpdateProfileRequest{Name: name, About: about}, &resp)
	return resp, err
}

// UpdateAvatar меняет ссылку на аватар.
func (c *Client) UpdateAvatar(ctx context.Context, token, avatar string) (dto.User, error) {
	var resp dto.User
	err := c.do(ctx, http.MethodPatch, "/users/me/avatar", token, dto.UpdateAvatarRequest{Avatar: avatar}, &resp)
	return resp, err
}
