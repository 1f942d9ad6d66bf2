// Package crypto содержит криптографические примитивы,
// используемые сервером Mesto.
//
// В частности, пакет отвечает за:
//   - хэширование и проверку паролей (bcrypt);
//   - выпуск и проверку JWT-токенов (HS256, срок жизни 7 дней).
package crypto

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL — срок жизни токена по умолчанию.
const DefaultTokenTTL = 7 * 24 * time.Hour

var (
	// ErrTokenExpired — подпись верна, но срок жизни истёк.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid — токен не разобрался, подпись неверна или нет _id.
	ErrTokenInvalid = errors.New("invalid token")
)

// JWTConfig описывает параметры выпуска и проверки токена.
type JWTConfig struct {
	// SigningKey — секретный ключ для подписи токена (HS256).
	SigningKey string
	// TTL — срок жизни токена.
	TTL time.Duration
}

// Claims — полезная нагрузка токена: id пользователя в поле _id плюс стандартные exp/iat.
type Claims struct {
	ID string `json:"_id"`
	jwt.RegisteredClaims
}

// NewToken создаёт и подписывает JWT для пользователя.
func NewToken(userID string, cfg JWTConfig, now time.Time) (string, error) {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	claims := Claims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// ParseToken проверяет подпись и срок жизни токена и возвращает id пользователя.
func ParseToken(tokenStr, signingKey string) (string, error) {
	claims := &Claims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	)
	_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(signingKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	userID := strings.TrimSpace(claims.ID)
	if userID == "" {
		return "", ErrTokenInvalid
	}
	return userID, nil
}
