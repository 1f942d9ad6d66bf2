package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/api"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

func TestUnknownRoute_WithToken(t *testing.T) {
	env := newTestEnv(t)
	tok := env.token(t, uuid.New())

	rec := env.do(t, http.MethodGet, "/no/such/path", "", tok)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, serr.MsgPageNotFound, message(t, rec))

	// неподдерживаемый метод на существующем пути — тоже 404
	rec = env.do(t, http.MethodPut, "/users", "", tok)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, serr.MsgPageNotFound, message(t, rec))
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)

	env.health.EXPECT().PingContext(gomock.Any()).Return(nil)
	rec := env.do(t, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	env.health.EXPECT().PingContext(gomock.Any()).Return(errors.New("connection refused"))
	rec = env.do(t, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "connection refused")
}

// /metrics публичный и считает запросы по шаблону маршрута
func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	userID := uuid.New()
	env.users.EXPECT().GetByID(gomock.Any(), userID).Return(models.User{ID: userID}, nil)
	env.do(t, http.MethodGet, "/users/"+userID.String(), "", env.token(t, uuid.New()))

	rec := env.do(t, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "mesto_http_requests_total")
	require.Contains(t, rec.Body.String(), `route="/users/{userId}"`)
}

func TestStatusOf(t *testing.T) {
	cases := map[serr.Kind]int{
		serr.KindBadRequest:      http.StatusBadRequest,
		serr.KindAuthentication:  http.StatusUnauthorized,
		serr.KindForbidden:       http.StatusForbidden,
		serr.KindNotFound:        http.StatusNotFound,
		serr.KindConflict:        http.StatusConflict,
		serr.KindTooManyRequests: http.StatusTooManyRequests,
		serr.KindServer:          http.StatusInternalServerError,
	}
	for kind, want := range cases {
		require.Equal(t, want, api.StatusOf(kind), kind.String())
	}
}
