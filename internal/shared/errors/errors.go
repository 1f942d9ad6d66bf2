// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Sentinel-ошибки (ErrNotFound, ErrAlreadyExists, ...) возвращает слой repository.
// Сервисный слой переклассифицирует их в *Error с одним из видов Kind и
// локализованным сообщением, а api слой по Kind выбирает HTTP-статус.
package errors

import (
	"errors"
	"fmt"
)

var (
	// Входные данные невалидны (неправильный формат id, нарушение check-ограничения и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// ожидаемая ошибка
	ErrExpectedError = errors.New("expected error")
)

// Сообщения, которые видит клиент.
const (
	MsgBadRequest     = "Переданы некорректные данные"
	MsgUserNotFound   = "Пользователь не найден"
	MsgCardNotFound   = "Карточка не найдена"
	MsgEmailTaken     = "Пользователь с таким email уже существует"
	MsgBadCredentials = "Неправильные почта или пароль"
	MsgAuthRequired   = "Необходима авторизация"
	MsgForeignCard    = "Нельзя удалять чужие карточки"
	MsgPageNotFound   = "Страница не найдена"
	MsgServerError    = "На сервере произошла ошибка"
	MsgTooManyRequest = "Слишком много запросов"
	MsgSignedOut      = "Выход выполнен"
)

// Kind — закрытый набор классов ошибок, которые понимает api слой.
type Kind int

const (
	// KindServer — всё, что не удалось классифицировать. Нулевое значение.
	KindServer Kind = iota
	KindBadRequest
	KindAuthentication
	KindForbidden
	KindNotFound
	KindConflict
	KindTooManyRequests
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindAuthentication:
		return "authentication"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindTooManyRequests:
		return "too_many_requests"
	default:
		return "server"
	}
}

// Violation описывает одно нарушенное ограничение поля запроса.
type Violation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Error — классифицированная ошибка с сообщением для клиента.
//
// Message уходит в тело ответа, Err — исходная причина, только для логов.
type Error struct {
	Kind       Kind
	Message    string
	Violations []Violation
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New создаёт классифицированную ошибку.
func New(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

func BadRequest(msg string, cause error) *Error     { return New(KindBadRequest, msg, cause) }
func Authentication(msg string, cause error) *Error { return New(KindAuthentication, msg, cause) }
func Forbidden(msg string, cause error) *Error      { return New(KindForbidden, msg, cause) }
func NotFound(msg string, cause error) *Error       { return New(KindNotFound, msg, cause) }
func Conflict(msg string, cause error) *Error       { return New(KindConflict, msg, cause) }
func Server(msg string, cause error) *Error         { return New(KindServer, msg, cause) }

func TooManyRequests(msg string, cause error) *Error { return New(KindTooManyRequests, msg, cause) }

// Invalid создаёт BadRequest с перечнем нарушенных ограничений.
func Invalid(msg string, violations []Violation, cause error) *Error {
	e := New(KindBadRequest, msg, cause)
	e.Violations = violations
	return e
}

// As достаёт *Error из цепочки. Если его нет — ok=false.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf возвращает класс ошибки; неклассифицированные ошибки считаются KindServer.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindServer
}
