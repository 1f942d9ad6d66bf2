package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

// CardsService — карточки и лайки.
//
// Удалять карточку может только её владелец, ставить и снимать лайк — любой
// аутентифицированный пользователь.
type CardsService struct {
	cards CardsRepo
}

func NewCardsService(cards CardsRepo) *CardsService {
	return &CardsService{cards: cards}
}

func (s *CardsService) List(ctx context.Context) ([]models.Card, error) {
	cards, err := s.cards.List(ctx)
	if err != nil {
		return nil, reclassify(err, serr.MsgCardNotFound)
	}
	return cards, nil
}

// Create создаёт карточку, владелец — текущий пользователь.
func (s *CardsService) Create(ctx context.Context, rawOwnerID, name, link string) (models.Card, error) {
	owner, err := parseID(rawOwnerID)
	if err != nil {
		return models.Card{}, err
	}

	card, err := s.cards.Create(ctx, name, link, owner)
	if err != nil {
		return models.Card{}, reclassify(err, serr.MsgCardNotFound)
	}
	return card, nil
}

// Delete удаляет карточку, если её владелец — rawUserID.
//
// Ошибки:
//   - NotFound, если карточки нет
//   - Forbidden, если карточка чужая
func (s *CardsService) Delete(ctx context.Context, rawCardID, rawUserID string) (models.Card, error) {
	cardID, err := parseID(rawCardID)
	if err != nil {
		return models.Card{}, err
	}
	userID, err := parseID(rawUserID)
	if err != nil {
		return models.Card{}, err
	}

	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return models.Card{}, reclassify(err, serr.MsgCardNotFound)
	}
	if card.Owner != userID {
		return models.Card{}, serr.Forbidden(serr.MsgForeignCard, nil)
	}

	deleted, err := s.cards.Delete(ctx, cardID)
	if err != nil {
		return models.Card{}, reclassify(err, serr.MsgCardNotFound)
	}
	return deleted, nil
}

// Like ставит лайк. Повторный лайк того же пользователя ничего не меняет.
func (s *CardsService) Like(ctx context.Context, rawCardID, rawUserID string) (models.Card, error) {
	cardID, err := parseID(rawCardID)
	if err != nil {
		return models.Card{}, err
	}
	userID, err := parseID(rawUserID)
	if err != nil {
		return models.Card{}, err
	}

	card, err := s.cards.Like(ctx, cardID, userID)
	if err != nil {
		return models.Card{}, reclassify(err, serr.MsgCardNotFound)
	}
	return card, nil
}

// Dislike снимает лайк. Снятие отсутствующего лайка — не ошибка.
func (s *CardsService) Dislike(ctx context.Context, rawCardID, rawUserID string) (models.Card, error) {
	cardID, err := parseID(rawCardID)
	if err != nil {
		return models.Card{}, err
	}
	userID, err := parseID(rawUserID)
	if err != nil {
		return models.Card{}, err
	}

	card, err := s.cards.Dislike(ctx, cardID, userID)
	if err != nil {
		return models.Card{}, reclassify(err, serr.MsgCardNotFound)
	}
	return card, nil
}
