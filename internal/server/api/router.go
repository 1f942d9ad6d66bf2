package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/validation"
	dto "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/models"
)

// RouterOptions — необязательные части роутера.
type RouterOptions struct {
	Metrics      *middleware.Metrics     // nil — без /metrics
	MetricsPath  string                  // по умолчанию /metrics
	RateLimiter  *middleware.RateLimiter // nil — без ограничения
	Pprof        bool
	PprofPrefix  string // по умолчанию /debug
	MaxBodyBytes int64
}

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - служебные пути (/swagger/*, /healthz, /metrics, pprof);
//   - публичные /signin и /signup (только валидация тела);
//   - всё остальное за AuthMiddleware: сначала токен, потом параметры и тело;
//   - 404 "Страница не найдена" для неизвестных путей и методов.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	r.Use(chimw.Recoverer)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	r.Use(middleware.BodyLimit(opts.MaxBodyBytes))

	// неизвестный путь — тоже только после авторизации
	notFound := h.Verifier.AuthMiddleware()(h.wrap(h.NotFound)).ServeHTTP
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/healthz", h.wrap(h.Healthz))

	if opts.Metrics != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, opts.Metrics.Handler())
	}
	if opts.Pprof {
		prefix := opts.PprofPrefix
		if prefix == "" {
			prefix = "/debug"
		}
		r.Mount(prefix, chimw.Profiler())
	}

	// Публичные пути
	r.Group(func(r chi.Router) {
		if opts.RateLimiter != nil {
			r.Use(opts.RateLimiter.Middleware)
		}
		r.With(validation.Body[dto.SignInRequest](h.Validator, h.WriteError)).
			Post("/signin", h.wrap(h.SignIn))
		r.With(validation.Body[dto.SignUpRequest](h.Validator, h.WriteError)).
			Post("/signup", h.wrap(h.SignUp))
	})

	// защищённые пути
	r.Group(func(r chi.Router) {
		// проверка токена
		r.Use(h.Verifier.AuthMiddleware())
		if opts.RateLimiter != nil {
			r.Use(opts.RateLimiter.Middleware)
		}

		r.Post("/signout", h.wrap(h.SignOut))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.wrap(h.ListUsers))
			r.With(validation.Body[dto.SignUpRequest](h.Validator, h.WriteError)).
				Post("/", h.wrap(h.CreateUser))

			r.Get("/me", h.wrap(h.GetMe))
			r.With(validation.Body[dto.UpdateProfileRequest](h.Validator, h.WriteError)).
				Patch("/me", h.wrap(h.UpdateMe))
			r.With(validation.Body[dto.UpdateAvatarRequest](h.Validator, h.WriteError)).
				Patch("/me/avatar", h.wrap(h.UpdateAvatar))

			r.With(validation.IDParam("userId", h.WriteError)).
				Get("/{userId}", h.wrap(h.GetUser))
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", h.wrap(h.ListCards))
			r.With(validation.Body[dto.CreateCardRequest](h.Validator, h.WriteError)).
				Post("/", h.wrap(h.CreateCard))

			r.Route("/{cardId}", func(r chi.Router) {
				r.Use(validation.IDParam("cardId", h.WriteError))
				r.Delete("/", h.wrap(h.DeleteCard))
				r.Put("/likes", h.wrap(h.LikeCard))
				r.Delete("/likes", h.wrap(h.DislikeCard))
			})
		})
	})

	return r
}
