package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

// UsersService — чтение и изменение профилей пользователей.
type UsersService struct {
	users UsersRepo
}

func NewUsersService(users UsersRepo) *UsersService {
	return &UsersService{users: users}
}

func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, reclassify(err, serr.MsgUserNotFound)
	}
	return users, nil
}

// Get возвращает пользователя по id. Для /users/me сюда передаётся id из токена.
func (s *UsersService) Get(ctx context.Context, rawID string) (models.User, error) {
	id, err := parseID(rawID)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, reclassify(err, serr.MsgUserNotFound)
	}
	return user, nil
}

// UpdateProfile меняет name и/или about. nil-поле оставляет прежнее значение.
func (s *UsersService) UpdateProfile(ctx context.Context, rawID string, name, about *string) (models.User, error) {
	return s.update(ctx, rawID, models.ProfileUpdate{Name: name, About: about})
}

// UpdateAvatar меняет только аватар.
func (s *UsersService) UpdateAvatar(ctx context.Context, rawID string, avatar string) (models.User, error) {
	return s.update(ctx, rawID, models.ProfileUpdate{Avatar: &avatar})
}

func (s *UsersService) update(ctx context.Context, rawID string, upd models.ProfileUpdate) (models.User, error) {
	id, err := parseID(rawID)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.users.Update(ctx, id, upd)
	if err != nil {
		return models.User{}, reclassify(err, serr.MsgUserNotFound)
	}
	return user, nil
}
