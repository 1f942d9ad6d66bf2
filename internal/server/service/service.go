// Package service содержит бизнес-логику приложения (mesto).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
//
// Сервисы принимают id в виде строк из URL/токена, сами разбирают их в uuid
// и возвращают только классифицированные ошибки *errors.Error.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/config"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
	Cards CardsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth  *AuthService
	Users *UsersService
	Cards *CardsService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (стоимость bcrypt, секрет и срок жизни токена).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:  NewAuthService(repos.Users, cfg),
		Users: NewUsersService(repos.Users),
		Cards: NewCardsService(repos.Cards),
	}
}

// HealthRepo — минимально нужное для health-check.
type HealthRepo interface {
	PingContext(ctx context.Context) error
}

// UsersRepo — репозиторий пользователей.
type UsersRepo interface {
	Create(ctx context.Context, u models.NewUser) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (models.User, error)
}

// CardsRepo — репозиторий карточек. Like/Dislike обязаны быть атомарными.
type CardsRepo interface {
	List(ctx context.Context) ([]models.Card, error)
	Create(ctx context.Context, name, link string, owner uuid.UUID) (models.Card, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Card, error)
	Delete(ctx context.Context, id uuid.UUID) (models.Card, error)
	Like(ctx context.Context, cardID, userID uuid.UUID) (models.Card, error)
	Dislike(ctx context.Context, cardID, userID uuid.UUID) (models.Card, error)
}
