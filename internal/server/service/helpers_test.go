package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/config"
	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		DB:       config.DBConfig{DSN: "postgres://test"},
		Password: config.PasswordConfig{Bcrypt: config.BcryptConfig{Cost: 4}},
	}
	config.ApplyDefaults(cfg)
	return cfg
}

// requireKind проверяет класс ошибки и сообщение для клиента.
func requireKind(t *testing.T, err error, kind serr.Kind, msg string) {
	t.Helper()

	e, ok := serr.As(err)
	require.True(t, ok, "ожидалась *errors.Error, получено %v", err)
	require.Equal(t, kind, e.Kind)
	if msg != "" {
		require.Equal(t, msg, e.Message)
	}
}
