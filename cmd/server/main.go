// @title           Mesto API
// @version         1.0
// @description     Backend сервиса Mesto.
// @description     Пользователи, карточки с фотографиями и лайки, аутентификация по JWT в cookie.

// @contact.name   Ivan Chernomyrdin
// @contact.url    https://github.com/IvanChernomyrdin

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name jwt
//
// Package main содержит точку входа серверного приложения Mesto.
//
// Пакет отвечает за инициализацию и жизненный цикл HTTP(S)-сервера, а именно:
//   - загрузку переменных окружения из файла .env (если он присутствует);
//   - загрузку конфигурации сервера из файла ./configs/server.yaml;
//   - подключение к базе данных и применение миграций;
//   - создание репозиториев, сервисов, middleware и HTTP-обработчиков;
//   - запуск сервера (HTTPS, если включён TLS) с заданными таймаутами;
//   - корректное (graceful) завершение по SIGINT, SIGTERM, SIGQUIT.
//
// Пакет не содержит бизнес-логики и не предназначен для unit-тестирования.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/api"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/config"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/repository"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/service"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/logger"

	_ "github.com/IvanChernomyrdin/go-yandex-mesto/swagger/docs"
)

func main() {
	// .env не обязателен, ошибку покажем после создания логгера
	envErr := godotenv.Load()

	cfg, err := config.Load("./configs/server.yaml")
	if err != nil {
		zap.NewExample().Sugar().Fatal(err)
	}

	httpLogger, err := logger.NewHTTPLogger(logger.Options{
		File:        cfg.Log.File,
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.Log.Development,
		MaxSizeMB:   cfg.Log.MaxSizeMB,
		MaxBackups:  cfg.Log.MaxBackups,
		MaxAgeDays:  cfg.Log.MaxAgeDays,
	})
	if err != nil {
		zap.NewExample().Sugar().Fatal(err)
	}
	defer httpLogger.Sync()
	sugar := httpLogger.Sugar()

	if envErr != nil {
		sugar.Debugf("no .env file loaded, error: %v", envErr)
	}

	// создаём контекст и errgroup
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// подключаем базу данных
	db, err := config.OpenDB(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	defer db.Close()

	if cfg.Migrations.Enabled {
		if err := config.RunMigrations(db, httpLogger); err != nil {
			sugar.Fatal(err)
		}
	}

	// создаём репы
	repos := service.Repositories{
		Users: repository.NewUsersRepository(db),
		Cards: repository.NewCardsRepository(db),
	}
	// создаём сервис
	svc := service.NewServices(repos, cfg)
	// создаём хандлер
	handler := api.NewHandler(svc, httpLogger, db, api.Options{
		SigningKey:   cfg.SigningKey(),
		CookieName:   cfg.Auth.Cookie.Name,
		SecureCookie: cfg.TLS.Enabled || cfg.Auth.Cookie.Secure,
	})

	routerOpts := api.RouterOptions{
		MetricsPath:  cfg.Observability.Metrics.Path,
		Pprof:        cfg.Observability.Pprof.Enabled,
		PprofPrefix:  cfg.Observability.Pprof.PathPrefix,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	}
	if cfg.Observability.Metrics.Enabled {
		routerOpts.Metrics = middleware.NewMetrics()
	}
	if rl := cfg.Security.RateLimit; rl.Enabled {
		routerOpts.RateLimiter = middleware.NewRateLimiter(rl.RPS, rl.Burst, rl.Key, handler.WriteError)
	}
	// создаём роутер
	router := api.NewRouter(handler, routerOpts)

	//создаём сервер
	addr := cfg.Server.Addr()
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}
	if cfg.TLS.Enabled {
		server.TLSConfig = &tls.Config{MinVersion: tlsVersion(cfg.TLS.MinVersion)}
	}

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		sugar.Infof("server started on %s (env=%s, tls=%t)", addr, cfg.Env, cfg.TLS.Enabled)

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		sugar.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единная обработка ошибок
	if err := g.Wait(); err != nil {
		sugar.Fatalf("server stopped with error: %v", err)
	}
	sugar.Info("server gracefully stopped")
}

func tlsVersion(v string) uint16 {
	if v == "1.3" {
		return tls.VersionTLS13
	}
	return tls.VersionTLS12
}
