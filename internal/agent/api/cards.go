package api

import (
	"context"
	"net/http"
	"net/url"

	dto "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/models"
)

// Cards — все карточки.
func (c *Client) Cards(ctx context.Context, token string) ([]dto.Card, error) {
	var resp []dto.Card
	err := c.do(ctx, http.MethodGet, "/cards", token, nil, &resp)
	return resp, err
}

// CreateCard создаёт карточку от имени владельца токена.
func (c *Client) CreateCard(ctx context.Context, token, name, link string) (dto.Card, error) {
	var resp dto.Card
	err := c.do(ctx, http.MethodPost, "/cards", token, dto.CreateCardRequest{Name: name, Link: link}, &resp)
	return resp, err
}

// DeleteCard удаляет свою карточку.
func (c *Client) DeleteCard(ctx context.Context, token, id string) (dto.Card, error) {
	return c.cardCall(ctx, http.MethodDelete, "/cards/"+url.PathEscape(id), token)
}

// LikeCard ставит лайк.
func (c *Client) LikeCard(ctx context.Context, token, id string) (dto.Card, error) {
	return c.cardCall(ctx, http.MethodPut, "/cards/"+url.PathEscape(id)+"/likes", token)
}

// DislikeCard снимает лайк.
func (c *Client) DislikeCard(ctx context.Context, token, id string) (dto.Card, error) {
	return c.cardCall(ctx, http.MethodDelete, "/cards/"+url.PathEscape(id)+"/likes", token)
}

func (c *Client) cardCall(ctx context.Context, method, path, token string) (dto.Card, error) {
	var resp dto.Card
	err := c.do(ctx, method, path, token, nil, &resp)
	return resp, err
}
