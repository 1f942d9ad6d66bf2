// Package models содержит серверные модели, с которыми работают service и repository.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Значения по умолчанию для профиля, если при регистрации поля не переданы.
const (
	DefaultUserName   = "Жак-Ив Кусто"
	DefaultUserAbout  = "Исследователь"
	DefaultUserAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

// User — серверная модель пользователя.
//
// PasswordHash заполняется только там, где он явно нужен (вход в систему),
// и никогда не сериализуется в ответ.
type User struct {
	ID           uuid.UUID
	Name         string
	About        string
	Avatar       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser описывает данные для создания пользователя: хэш уже посчитан.
type NewUser struct {
	Name         string
	About        string
	Avatar       string
	Email        string
	PasswordHash string
}

// ProfileUpdate — частичное обновление профиля; nil-поле не меняется.
type ProfileUpdate struct {
	Name   *string
	About  *string
	Avatar *string
}
