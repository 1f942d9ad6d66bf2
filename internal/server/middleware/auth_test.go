package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

const key = "secret"

// Вспомогательная функция для JWT
func makeToken(t *testing.T, userID string, ttl time.Duration) string {
	t.Helper()

	token, err := crypto.NewToken(userID, crypto.JWTConfig{SigningKey: key, TTL: ttl}, time.Now())
	require.NoError(t, err)
	return token
}

// хендлер, который запоминает userID из контекста
func protected(t *testing.T, gotID *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := middleware.UserIDFromContext(r.Context())
		require.True(t, ok)
		*gotID = uid
		w.WriteHeader(http.StatusOK)
	})
}

// Успех: токен в cookie
func TestAuthMiddleware_Cookie(t *testing.T) {
	v := middleware.NewJWTVerifier(key, "", nil)
	userID := uuid.NewString()

	var got string
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: makeToken(t, userID, time.Hour)})
	rr := httptest.NewRecorder()

	v.AuthMiddleware()(protected(t, &got)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, userID, got)
}

// Успех: токен в заголовке
func TestAuthMiddleware_Bearer(t *testing.T) {
	v := middleware.NewJWTVerifier(key, "jwt", nil)
	userID := uuid.NewString()

	var got string
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+makeToken(t, userID, time.Hour))
	rr := httptest.NewRecorder()

	v.AuthMiddleware()(protected(t, &got)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, userID, got)
}

// Cookie важнее заголовка
func TestAuthMiddleware_CookieWins(t *testing.T) {
	v := middleware.NewJWTVerifier(key, "jwt", nil)
	cookieUser, headerUser := uuid.NewString(), uuid.NewString()

	var got string
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: makeToken(t, cookieUser, time.Hour)})
	req.Header.Set("Authorization", "Bearer "+makeToken(t, headerUser, time.Hour))
	rr := httptest.NewRecorder()

	v.AuthMiddleware()(protected(t, &got)).ServeHTTP(rr, req)

	require.Equal(t, cookieUser, got)
}

// Невалидная cookie не перекрывает валидный заголовок
func TestAuthMiddleware_FallbackToBearer(t *testing.T) {
	v := middleware.NewJWTVerifier(key, "jwt", nil)
	headerUser := uuid.NewString()

	expired, err := crypto.NewToken(uuid.NewString(), crypto.JWTConfig{SigningKey: key, TTL: time.Minute}, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	cookies := map[string]string{
		"expired": expired,
		"garbage": "abc.def.ghi",
	}
	for name, cookie := range cookies {
		t.Run(name, func(t *testing.T) {
			var got string
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			req.AddCookie(&http.Cookie{Name: "jwt", Value: cookie})
			req.Header.Set("Authorization", "Bearer "+makeToken(t, headerUser, time.Hour))
			rr := httptest.NewRecorder()

			v.AuthMiddleware()(protected(t, &got)).ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			require.Equal(t, headerUser, got)
		})
	}
}

// Оба токена невалидны — 401
func TestAuthMiddleware_BothInvalid(t *testing.T) {
	v := middleware.NewJWTVerifier(key, "jwt", nil)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "abc.def.ghi"})
	req.Header.Set("Authorization", "Bearer xyz")
	rr := httptest.NewRecorder()

	v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})).ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	cases := map[string]func(r *http.Request){
		"no token": func(r *http.Request) {},
		"expired": func(r *http.Request) {
			token, err := crypto.NewToken(uuid.NewString(), crypto.JWTConfig{SigningKey: key, TTL: time.Minute}, time.Now().Add(-time.Hour))
			require.NoError(t, err)
			r.AddCookie(&http.Cookie{Name: "jwt", Value: token})
		},
		"wrong key": func(r *http.Request) {
			token, err := crypto.NewToken(uuid.NewString(), crypto.JWTConfig{SigningKey: "other"}, time.Now())
			require.NoError(t, err)
			r.Header.Set("Authorization", "Bearer "+token)
		},
		"garbage":      func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc.def.ghi") },
		"not bearer":   func(r *http.Request) { r.Header.Set("Authorization", "Basic dXNlcjpwYXNz") },
		"empty cookie": func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "jwt", Value: ""}) },
		"other cookie": func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "token", Value: makeToken(t, uuid.NewString(), time.Hour)})
		},
	}

	for name, prepare := range cases {
		t.Run(name, func(t *testing.T) {
			var gotErr error
			v := middleware.NewJWTVerifier(key, "jwt", func(w http.ResponseWriter, r *http.Request, err error) {
				gotErr = err
				w.WriteHeader(http.StatusUnauthorized)
			})

			req := httptest.NewRequest(http.MethodGet, "/cards", nil)
			prepare(req)
			rr := httptest.NewRecorder()

			v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not be called")
			})).ServeHTTP(rr, req)

			require.Equal(t, http.StatusUnauthorized, rr.Code)
			e, ok := serr.As(gotErr)
			require.True(t, ok)
			require.Equal(t, serr.KindAuthentication, e.Kind)
			require.Equal(t, serr.MsgAuthRequired, e.Message)
		})
	}
}

// без OnError middleware отвечает сам
func TestAuthMiddleware_DefaultErrorBody(t *testing.T) {
	v := middleware.NewJWTVerifier(key, "", nil)

	rr := httptest.NewRecorder()
	v.AuthMiddleware()(http.NotFoundHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.JSONEq(t, `{"message":"Необходима авторизация"}`, rr.Body.String())
}

func TestExtractBearer(t *testing.T) {
	require.Equal(t, "abc", middleware.ExtractBearer("Bearer abc"))
	require.Equal(t, "abc", middleware.ExtractBearer("  bearer   abc "))
	require.Equal(t, "", middleware.ExtractBearer("Bearer"))
	require.Equal(t, "", middleware.ExtractBearer("Token abc"))
	require.Equal(t, "", middleware.ExtractBearer(""))
}
