package service

import (
	"errors"

	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

// parseID разбирает id из URL или токена. Неверный формат — BadRequest.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, serr.BadRequest(serr.MsgBadRequest, err)
	}
	return id, nil
}

// reclassify переводит sentinel-ошибку репозитория в *errors.Error.
// notFound — сообщение для случая, когда запись не найдена.
func reclassify(err error, notFound string) error {
	if err == nil {
		return nil
	}
	if _, ok := serr.As(err); ok {
		return err
	}

	switch {
	case errors.Is(err, serr.ErrNotFound):
		return serr.NotFound(notFound, err)
	case errors.Is(err, serr.ErrInvalidInput):
		return serr.BadRequest(serr.MsgBadRequest, err)
	case errors.Is(err, serr.ErrAlreadyExists):
		return serr.Conflict(serr.MsgEmailTaken, err)
	default:
		return serr.Server(serr.MsgServerError, err)
	}
}
