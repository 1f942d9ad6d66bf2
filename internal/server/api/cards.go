package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/models"
	dto "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/models"
)

// ListCards возвращает все карточки в порядке создания.
//
// @Summary      List cards
// @Tags         cards
// @Produce      json
// @Security     CookieAuth
// @Success      200 {array} dto.Card
// @Failure      401 {object} ErrorResponse
// @Router       /cards [get]
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) error {
	cards, err := h.Svc.Cards.List(r.Context())
	if err != nil {
		return err
	}
	render.JSON(w, r, toCards(cards))
	return nil
}

// CreateCard создаёт карточку от имени текущего пользователя.
//
// @Summary      Create card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        request body dto.CreateCardRequest true "Card"
// @Success      201 {object} dto.Card
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /cards [post]
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) error {
	userID, err := currentUser(r)
	if err != nil {
		return err
	}
	req, err := body[dto.CreateCardRequest](r)
	if err != nil {
		return err
	}

	card, err := h.Svc.Cards.Create(r.Context(), userID, req.Name, req.Link)
	if err != nil {
		return err
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toCard(card))
	return nil
}

// DeleteCard удаляет карточку текущего пользователя и возвращает её.
//
// @Summary      Delete card
// @Tags         cards
// @Produce      json
// @Security     CookieAuth
// @Param        cardId path string true "Card id"
// @Success      200 {object} dto.Card
// @Failure      400 {object} ErrorResponse "Malformed id"
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Card belongs to another user"
// @Failure      404 {object} ErrorResponse "Card not found"
// @Router       /cards/{cardId} [delete]
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) error {
	return h.cardAction(w, r, h.Svc.Cards.Delete)
}

// LikeCard ставит лайк. Повторный вызов ничего не меняет.
//
// @Summary      Like card
// @Tags         cards
// @Produce      json
// @Security     CookieAuth
// @Param        cardId path string true "Card id"
// @Success      200 {object} dto.Card
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /cards/{cardId}/likes [put]
func (h *Handler) LikeCard(w http.ResponseWriter, r *http.Request) error {
	return h.cardAction(w, r, h.Svc.Cards.Like)
}

// DislikeCard снимает лайк. Снятие отсутствующего лайка — не ошибка.
//
// @Summary      Dislike card
// @Tags         cards
// @Produce      json
// @Security     CookieAuth
// @Param        cardId path string true "Card id"
// @Success      200 {object} dto.Card
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /cards/{cardId}/likes [delete]
func (h *Handler) DislikeCard(w http.ResponseWriter, r *http.Request) error {
	return h.cardAction(w, r, h.Svc.Cards.Dislike)
}

type cardActionFunc func(ctx context.Context, cardID, userID string) (models.Card, error)

// cardAction — общий путь для действий над одной карточкой от имени текущего пользователя.
func (h *Handler) cardAction(w http.ResponseWriter, r *http.Request, action cardActionFunc) error {
	userID, err := currentUser(r)
	if err != nil {
		return err
	}

	card, err := action(r.Context(), chi.URLParam(r, "cardId"), userID)
	if err != nil {
		return err
	}
	render.JSON(w, r, toCard(card))
	return nil
}
