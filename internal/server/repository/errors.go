package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"

	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

// classify переводит ошибку драйвера в sentinel-ошибку пакета shared/errors.
//
// Для ErrInternal исходная ошибка сохраняется в цепочке, чтобы её можно было залогировать.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return serr.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return serr.ErrAlreadyExists
		case pgerrcode.InvalidTextRepresentation,
			pgerrcode.CheckViolation,
			pgerrcode.NotNullViolation,
			pgerrcode.ForeignKeyViolation,
			pgerrcode.StringDataRightTruncationDataException:
			return fmt.Errorf("%w: %s", serr.ErrInvalidInput, pgErr.ConstraintName)
		}
	}

	return fmt.Errorf("%w: %v", serr.ErrInternal, err)
}
