package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

// likes отдаём текстовым массивом: database/sql через pgx возвращает его строкой "{...}",
// которую разбирает pgtype.TextArray.
const cardColumns = "id, name, link, owner, likes::text[], created_at"

type CardsRepository struct {
	db *sql.DB
}

func NewCardsRepository(db *sql.DB) *CardsRepository {
	return &CardsRepository{db: db}
}

// List возвращает все карточки в порядке создания.
func (r *CardsRepository) List(ctx context.Context) ([]models.Card, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cardColumns+` FROM cards ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	cards := make([]models.Card, 0)
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, classify(err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return cards, nil
}

// Create сохраняет карточку с пустым списком лайков.
func (r *CardsRepository) Create(ctx context.Context, name, link string, owner uuid.UUID) (models.Card, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO cards (name, link, owner)
		 VALUES ($1,$2,$3)
		 RETURNING `+cardColumns,
		name, link, owner,
	)

	card, err := scanCard(row)
	if err != nil {
		return models.Card{}, classify(err)
	}
	return card, nil
}

func (r *CardsRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Card, error) {
	card, err := scanCard(r.db.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE id=$1`,
		id,
	))
	if err != nil {
		return models.Card{}, classify(err)
	}
	return card, nil
}

// Delete удаляет карточку и возвращает её последнее состояние.
func (r *CardsRepository) Delete(ctx context.Context, id uuid.UUID) (models.Card, error) {
	card, err := scanCard(r.db.QueryRowContext(ctx,
		`DELETE FROM cards WHERE id=$1 RETURNING `+cardColumns,
		id,
	))
	if err != nil {
		return models.Card{}, classify(err)
	}
	return card, nil
}

// Like добавляет userID в likes, если его там ещё нет. Проверка и запись
// выполняются одним UPDATE, поэтому параллельные лайки не теряются и не дублируются.
func (r *CardsRepository) Like(ctx context.Context, cardID, userID uuid.UUID) (models.Card, error) {
	card, err := scanCard(r.db.QueryRowContext(ctx,
		`UPDATE cards
		 SET likes = CASE WHEN $2::uuid = ANY(likes) THEN likes ELSE array_append(likes, $2::uuid) END
		 WHERE id=$1
		 RETURNING `+cardColumns,
		cardID, userID,
	))
	if err != nil {
		return models.Card{}, classify(err)
	}
	return card, nil
}

// Dislike убирает userID из likes. Отсутствующий лайк — не ошибка.
func (r *CardsRepository) Dislike(ctx context.Context, cardID, userID uuid.UUID) (models.Card, error) {
	card, err := scanCard(r.db.QueryRowContext(ctx,
		`UPDATE cards
		 SET likes = array_remove(likes, $2::uuid)
		 WHERE id=$1
		 RETURNING `+cardColumns,
		cardID, userID,
	))
	if err != nil {
		return models.Card{}, classify(err)
	}
	return card, nil
}

func scanCard(row rowScanner) (models.Card, error) {
	var (
		c     models.Card
		likes pgtype.TextArray
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Link, &c.Owner, &likes, &c.CreatedAt); err != nil {
		return models.Card{}, err
	}

	c.Likes = make([]uuid.UUID, 0, len(likes.Elements))
	for _, el := range likes.Elements {
		id, err := uuid.Parse(el.String)
		if err != nil {
			return models.Card{}, fmt.Errorf("%w: like id %q: %v", serr.ErrInternal, el.String, err)
		}
		c.Likes = append(c.Likes, id)
	}
	return c, nil
}
