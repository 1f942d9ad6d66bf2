package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/config"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

// AuthService реализует регистрацию и вход.
//
// Ответственность:
//   - регистрация (хэш пароля, значения профиля по умолчанию)
//   - вход по email и паролю
//   - выпуск JWT на 7 дней
type AuthService struct {
	users UsersRepo

	bcryptCost int
	jwt        crypto.JWTConfig

	now func() time.Time
}

// SignUpInput — данные регистрации. nil в name/about/avatar заменяется значением по умолчанию.
type SignUpInput struct {
	Name     *string
	About    *string
	Avatar   *string
	Email    string
	Password string
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users:      users,
		bcryptCost: cfg.Password.Bcrypt.Cost,
		jwt: crypto.JWTConfig{
			SigningKey: cfg.SigningKey(),
			TTL:        cfg.Auth.TokenTTL,
		},
		now: time.Now,
	}
}

// TokenTTL — срок жизни выдаваемых токенов (он же max-age cookie).
func (s *AuthService) TokenTTL() time.Duration {
	if s.jwt.TTL <= 0 {
		return crypto.DefaultTokenTTL
	}
	return s.jwt.TTL
}

// SignUp регистрирует нового пользователя и возвращает его без хэша пароля.
//
// Ошибки:
//   - Conflict, если email уже зарегистрирован
//   - BadRequest, если пароль пустой или длиннее 72 байт
//   - BadRequest, если база отвергла данные
//   - Server в остальных случаях
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (models.User, error) {
	hash, err := crypto.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, crypto.ErrEmptyPassword) || errors.Is(err, crypto.ErrPasswordTooLong) {
			return models.User{}, serr.BadRequest(serr.MsgBadRequest, err)
		}
		return models.User{}, serr.Server(serr.MsgServerError, err)
	}

	u := models.NewUser{
		Name:         orDefault(in.Name, models.DefaultUserName),
		About:        orDefault(in.About, models.DefaultUserAbout),
		Avatar:       orDefault(in.Avatar, models.DefaultUserAvatar),
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
	}

	user, err := s.users.Create(ctx, u)
	if err != nil {
		return models.User{}, reclassify(err, serr.MsgUserNotFound)
	}
	user.PasswordHash = ""
	return user, nil
}

// SignIn проверяет email и пароль и выдаёт токен.
//
// Не раскрывает, существует ли email: и отсутствие пользователя,
// и неверный пароль дают одну и ту же ошибку Authentication.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return "", serr.Authentication(serr.MsgBadCredentials, serr.ErrInvalidCredentials)
		}
		return "", reclassify(err, serr.MsgBadCredentials)
	}

	ok, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", serr.Server(serr.MsgServerError, err)
	}
	if !ok {
		return "", serr.Authentication(serr.MsgBadCredentials, serr.ErrInvalidCredentials)
	}

	token, err := crypto.NewToken(user.ID.String(), s.jwt, s.now())
	if err != nil {
		return "", serr.Server(serr.MsgServerError, err)
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func orDefault(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
