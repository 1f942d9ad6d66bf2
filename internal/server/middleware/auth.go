// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// userIDKey — ключ контекста, под которым хранится ID аутентифицированного пользователя.
const userIDKey ctxKey = "user_id"

// DefaultCookieName — cookie, в которой сервер выдаёт токен при входе.
const DefaultCookieName = "jwt"

// ErrorWriter пишет ошибку клиенту (api.Handler.WriteError).
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// JWTVerifier инкапсулирует параметры проверки JWT.
//
// Используется в HTTP middleware для:
//   - поиска токена в cookie или в заголовке Authorization
//   - проверки подписи и срока жизни токена
//   - извлечения userID из claim _id
type JWTVerifier struct {
	SigningKey string      // симметричный ключ для подписи (HS256)
	CookieName string      // имя cookie с токеном
	OnError    ErrorWriter // как ответить на отказ; nil — простой JSON 401
}

// NewJWTVerifier создаёт новый JWTVerifier с заданными параметрами.
func NewJWTVerifier(signingKey, cookieName string, onError ErrorWriter) *JWTVerifier {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &JWTVerifier{SigningKey: signingKey, CookieName: cookieName, OnError: onError}
}

// UserIDFromContext извлекает userID аутентифицированного пользователя из контекста.
//
// Возвращает:
//   - userID
//   - false, если пользователь не аутентифицирован
func UserIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(userIDKey)
	s, ok := v.(string)
	return s, ok
}

// WithUserID кладёт userID в контекст так же, как это делает AuthMiddleware.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// AuthMiddleware возвращает HTTP middleware для проверки JWT.
//
// Middleware:
//   - берёт токен из cookie, а если её нет или токен в ней невалиден —
//     из Authorization: Bearer <token>
//   - валидирует подпись и срок жизни
//   - сохраняет userID в context.Context
//
// В случае ошибки отвечает 401 "Необходима авторизация".
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := v.authenticate(r)
			if err != nil {
				v.fail(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// authenticate проверяет кандидатов по порядку: cookie, затем заголовок.
// Устаревшая cookie не мешает клиенту, который прислал валидный Bearer.
func (v *JWTVerifier) authenticate(r *http.Request) (string, error) {
	err := serr.ErrUnauthorized
	for _, tokenStr := range v.candidates(r) {
		userID, perr := crypto.ParseToken(tokenStr, v.SigningKey)
		if perr == nil {
			return userID, nil
		}
		err = perr
	}
	return "", err
}

func (v *JWTVerifier) candidates(r *http.Request) []string {
	tokens := make([]string, 0, 2)
	if c, err := r.Cookie(v.CookieName); err == nil && strings.TrimSpace(c.Value) != "" {
		tokens = append(tokens, strings.TrimSpace(c.Value))
	}
	if bearer := ExtractBearer(r.Header.Get("Authorization")); bearer != "" {
		tokens = append(tokens, bearer)
	}
	return tokens
}

func (v *JWTVerifier) fail(w http.ResponseWriter, r *http.Request, cause error) {
	err := serr.Authentication(serr.MsgAuthRequired, cause)

	if v.OnError != nil {
		v.OnError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"message":"` + serr.MsgAuthRequired + `"}`))
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
