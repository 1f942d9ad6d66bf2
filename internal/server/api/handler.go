// Package api реализует HTTP-слой сервера Mesto.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - перевод классифицированных ошибок в HTTP-коды и сообщения (WriteError);
//   - подключение middleware (логирование, проверка JWT, валидация и т.д.).
package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/service"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/validation"
	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/logger"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: проверка JWT и middleware авторизации;
//   - Validator: проверка тел запросов;
//   - Health: то, что пингуется в /healthz.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc       *service.Services
	Log       *logger.HTTPLogger
	Verifier  *middleware.JWTVerifier
	Validator *validation.Validator
	Health    service.HealthRepo

	cookieName   string
	secureCookie bool
}

// Options — настройки Handler, приходят из конфига.
type Options struct {
	SigningKey   string // секрет проверки токенов
	CookieName   string // cookie с токеном; пусто — "jwt"
	SecureCookie bool   // ставить Secure (нужно при HTTPS)
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// Ошибки авторизации и валидации отдаются тем же WriteError, что и ошибки хендлеров.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, health service.HealthRepo, opts Options) *Handler {
	h := &Handler{
		Svc:          svc,
		Log:          log,
		Validator:    validation.New(),
		Health:       health,
		cookieName:   opts.CookieName,
		secureCookie: opts.SecureCookie,
	}
	if h.cookieName == "" {
		h.cookieName = middleware.DefaultCookieName
	}
	h.Verifier = middleware.NewJWTVerifier(opts.SigningKey, h.cookieName, h.WriteError)
	return h
}

// handlerFunc — хендлер, который не пишет ошибки сам, а возвращает их.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// wrap превращает handlerFunc в http.HandlerFunc: любая ошибка уходит в WriteError.
func (h *Handler) wrap(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.WriteError(w, r, err)
		}
	}
}

// currentUser — id пользователя из токена. Без AuthMiddleware его нет.
func currentUser(r *http.Request) (string, error) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok || id == "" {
		return "", serr.Authentication(serr.MsgAuthRequired, serr.ErrUnauthorized)
	}
	return id, nil
}

// body достаёт тело, проверенное validation.Body[T].
func body[T any](r *http.Request) (T, error) {
	b, ok := validation.BodyFrom[T](r.Context())
	if !ok {
		return b, serr.BadRequest(serr.MsgBadRequest, serr.ErrBadJSON)
	}
	return b, nil
}
