// Хэширование паролей
package crypto

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost — умеренная стоимость bcrypt, если в конфиге не задано иное.
const DefaultBcryptCost = 10

var (
	// ErrEmptyPassword возвращается при попытке захэшировать пустой пароль.
	ErrEmptyPassword = errors.New("empty password")
	// ErrPasswordTooLong — пароль длиннее 72 байт, bcrypt его не примет.
	ErrPasswordTooLong = bcrypt.ErrPasswordTooLong
)

// HashPassword возвращает bcrypt-хэш пароля в формате $2a$<cost>$<salt+hash>.
//
// Пароль длиннее 72 байт даёт ErrPasswordTooLong.
// cost вне диапазона [bcrypt.MinCost, bcrypt.MaxCost] заменяется на DefaultBcryptCost.
func HashPassword(password string, cost int) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword сравнивает пароль с сохранённым хэшем.
//
// Несовпадение — это (false, nil); ошибка возвращается только для битого хэша.
func VerifyPassword(password, encoded string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("bcrypt: %w", err)
	}
}
