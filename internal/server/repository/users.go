// Package repository реализует доступ к таблицам users и cards в PostgreSQL.
//
// Ошибки драйвера наружу не выходят: их заменяют sentinel-ошибки из shared/errors
// (ErrNotFound, ErrAlreadyExists, ErrInvalidInput, ErrInternal).
package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

const userColumns = "id, name, about, avatar, email, created_at"

// psql — построитель запросов с плейсхолдерами $1, $2, ...
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create сохраняет нового пользователя. Занятый email — ErrAlreadyExists.
func (r *UsersRepository) Create(ctx context.Context, u models.NewUser) (models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, about, avatar, email, password_hash)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING `+userColumns,
		u.Name, u.About, u.Avatar, u.Email, u.PasswordHash,
	)

	user, err := scanUser(row)
	if err != nil {
		return models.User{}, classify(err)
	}
	return user, nil
}

func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`,
		id,
	)

	user, err := scanUser(row)
	if err != nil {
		return models.User{}, classify(err)
	}
	return user, nil
}

// GetByEmail ищет пользователя по email и, в отличие от остальных методов,
// возвращает хэш пароля. Нужен только для входа.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User

	err := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+`, password_hash FROM users WHERE email=$1`,
		email,
	).Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.CreatedAt, &u.PasswordHash)
	if err != nil {
		return models.User{}, classify(err)
	}
	return u, nil
}

func (r *UsersRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, classify(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return users, nil
}

// Update меняет только переданные (не nil) поля профиля и возвращает обновлённого пользователя.
// Если менять нечего — просто читает текущую запись.
func (r *UsersRepository) Update(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (models.User, error) {
	q := psql.Update("users")
	changed := false
	if upd.Name != nil {
		q = q.Set("name", *upd.Name)
		changed = true
	}
	if upd.About != nil {
		q = q.Set("about", *upd.About)
		changed = true
	}
	if upd.Avatar != nil {
		q = q.Set("avatar", *upd.Avatar)
		changed = true
	}
	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := q.Where("id = ?", id).Suffix("RETURNING " + userColumns).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: build update: %v", serr.ErrInternal, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.User{}, classify(err)
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.CreatedAt)
	return u, err
}
