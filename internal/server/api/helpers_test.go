package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/api"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/config"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/service"
	svcmocks "github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/service/mocks"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/logger"
)

// testEnv — роутер с настоящими сервисами поверх моков репозиториев
type testEnv struct {
	router http.Handler
	cfg    *config.Config
	users  *svcmocks.MockUsersRepo
	cards  *svcmocks.MockCardsRepo
	health *svcmocks.MockHealthRepo
}

// newTestEnv создаёт окружение через dependency injection
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := &testEnv{
		users:  svcmocks.NewMockUsersRepo(ctrl),
		cards:  svcmocks.NewMockCardsRepo(ctrl),
		health: svcmocks.NewMockHealthRepo(ctrl),
	}

	cfg := &config.Config{
		DB:       config.DBConfig{DSN: "postgres://test"},
		Password: config.PasswordConfig{Bcrypt: config.BcryptConfig{Cost: 4}},
	}
	config.ApplyDefaults(cfg)
	env.cfg = cfg

	svc := service.NewServices(service.Repositories{Users: env.users, Cards: env.cards}, cfg)
	h := api.NewHandler(svc, logger.NewNop(), env.health, api.Options{
		SigningKey: cfg.SigningKey(),
		CookieName: cfg.Auth.Cookie.Name,
	})
	env.router = api.NewRouter(h, api.RouterOptions{
		Metrics:      middleware.NewMetrics(),
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	})
	return env
}

// token выпускает токен так же, как это делает вход
func (e *testEnv) token(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	tok, err := crypto.NewToken(userID.String(), crypto.JWTConfig{SigningKey: e.cfg.SigningKey()}, time.Now())
	require.NoError(t, err)
	return tok
}

// do выполняет запрос; непустой token кладётся в cookie jwt
func (e *testEnv) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// message достаёт поле message из тела ошибки
func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Message
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func serve(e *testEnv, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}
