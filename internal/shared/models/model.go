// Package models содержит модели HTTP API, общие для сервера и CLI-клиента.
//
// Теги validate читает слой валидации сервера (go-playground/validator),
// клиент их игнорирует.
package models

import "time"

// User — публичное представление пользователя. Пароль (и его хэш) сюда не попадает никогда.
type User struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}

// Card — публичное представление карточки.
//
// Likes — множество id пользователей, без повторов. Порядок не важен.
type Card struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// SignInRequest — тело POST /signin.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

// SignUpRequest — тело POST /signup (и POST /users).
//
// name, about и avatar необязательны, при отсутствии сервер подставит значения по умолчанию.
// Переданное поле проверяется всегда: "name": "" — ошибка, а не значение по умолчанию.
// Пароль ограничен 72 байтами (предел bcrypt).
type SignUpRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=30"`
	About    *string `json:"about,omitempty" validate:"omitempty,min=2,max=30"`
	Avatar   *string `json:"avatar,omitempty" validate:"omitempty,mestourl"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8,maxbytes=72"`
}

// UpdateProfileRequest — тело PATCH /users/me. Отсутствующее поле не меняется.
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=2,max=30"`
	About *string `json:"about,omitempty" validate:"omitempty,min=2,max=30"`
}

// UpdateAvatarRequest — тело PATCH /users/me/avatar.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,mestourl"`
}

// CreateCardRequest — тело POST /cards. Владелец берётся из токена, не из тела.
type CreateCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,mestourl"`
}

// TokenResponse — ответ POST /signin.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse — ответ с текстовым сообщением (signout, ошибки).
type MessageResponse struct {
	Message string `json:"message"`
}
