package validation

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

// ErrorWriter пишет ошибку клиенту. Передаётся из api, чтобы ответ формировался в одном месте.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

type bodyKey[T any] struct{}

// Body разбирает JSON-тело в T, проверяет его и кладёт в контекст.
// Хендлер достаёт тело через BodyFrom[T].
func Body[T any](v *Validator, onError ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body T
			if err := render.DecodeJSON(r.Body, &body); err != nil {
				onError(w, r, serr.BadRequest(serr.MsgBadRequest, fmt.Errorf("%w: %v", serr.ErrBadJSON, err)))
				return
			}
			if err := v.Struct(body); err != nil {
				onError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), bodyKey[T]{}, body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BodyFrom возвращает тело, сохранённое middleware Body[T].
func BodyFrom[T any](ctx context.Context) (T, bool) {
	body, ok := ctx.Value(bodyKey[T]{}).(T)
	return body, ok
}

// IDParam проверяет, что параметр маршрута name — корректный id.
// Иначе запрос отклоняется до хендлера и до базы.
func IDParam(name string, onError ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := chi.URLParam(r, name)
			if _, err := uuid.Parse(raw); err != nil {
				onError(w, r, serr.Invalid(serr.MsgBadRequest,
					[]serr.Violation{{Field: name, Rule: "uuid"}},
					fmt.Errorf("%w: %s=%q", serr.ErrInvalidInput, name, raw)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
