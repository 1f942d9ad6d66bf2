package api

import (
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/models"
	dto "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/models"
)

func toUser(u models.User) dto.User {
	return dto.User{
		ID:     u.ID.String(),
		Name:   u.Name,
		About:  u.About,
		Avatar: u.Avatar,
		Email:  u.Email,
	}
}

func toUsers(users []models.User) []dto.User {
	out := make([]dto.User, 0, len(users))
	for _, u := range users {
		out = append(out, toUser(u))
	}
	return out
}

func toCard(c models.Card) dto.Card {
	likes := make([]string, 0, len(c.Likes))
	for _, id := range c.Likes {
		likes = append(likes, id.String())
	}
	return dto.Card{
		ID:        c.ID.String(),
		Name:      c.Name,
		Link:      c.Link,
		Owner:     c.Owner.String(),
		Likes:     likes,
		CreatedAt: c.CreatedAt,
	}
}

func toCards(cards []models.Card) []dto.Card {
	out := make([]dto.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCard(c))
	}
	return out
}
