// Package validation проверяет входные данные до того, как запрос дойдёт до хендлера.
//
// Правила описываются тегами validate у структур запросов (shared/models),
// плюс собственное правило mestourl для ссылок на картинки.
// Любое нарушение превращается в BadRequest со списком полей.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator"

	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

// URLTag — имя правила для ссылок (аватар, картинка карточки).
const URLTag = "mestourl"

// MaxBytesTag — ограничение длины строки в байтах (max у validator считает руны).
// Нужен для пароля: bcrypt принимает не больше 72 байт.
const MaxBytesTag = "maxbytes"

var urlPattern = regexp.MustCompile(`^https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)

// IsURL сообщает, подходит ли строка под формат ссылки.
func IsURL(s string) bool {
	return urlPattern.MatchString(s)
}

// Validator — обёртка над go-playground/validator с зарегистрированными правилами.
type Validator struct {
	v *validator.Validate
}

// New создаёт Validator. Поля в ошибках называются по json-тегам.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// ошибка возможна только при пустом имени тега
	_ = v.RegisterValidation(URLTag, func(fl validator.FieldLevel) bool {
		return IsURL(fl.Field().String())
	})

	_ = v.RegisterValidation(MaxBytesTag, func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= n
	})

	return &Validator{v: v}
}

// Struct проверяет структуру. nil — всё в порядке, иначе *errors.Error вида BadRequest.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return serr.BadRequest(serr.MsgBadRequest, err)
	}

	violations := make([]serr.Violation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, serr.Violation{Field: fe.Field(), Rule: rule(fe)})
	}
	return serr.Invalid(serr.MsgBadRequest, violations, serr.ErrInvalidInput)
}

func rule(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}
