package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

func TestKindOf(t *testing.T) {
	require.Equal(t, serr.KindNotFound, serr.KindOf(serr.NotFound(serr.MsgCardNotFound, nil)))
	require.Equal(t, serr.KindConflict, serr.KindOf(fmt.Errorf("wrap: %w", serr.Conflict(serr.MsgEmailTaken, nil))))

	// неклассифицированная ошибка — серверная
	require.Equal(t, serr.KindServer, serr.KindOf(errors.New("boom")))
	require.Equal(t, serr.KindServer, serr.KindOf(nil))
}

func TestError_UnwrapKeepsCause(t *testing.T) {
	err := serr.BadRequest(serr.MsgBadRequest, serr.ErrInvalidInput)

	require.ErrorIs(t, err, serr.ErrInvalidInput)
	require.Contains(t, err.Error(), "bad_request")
	require.Contains(t, err.Error(), serr.MsgBadRequest)
}

func TestInvalid_CarriesViolations(t *testing.T) {
	v := []serr.Violation{{Field: "email", Rule: "email"}}
	err := serr.Invalid(serr.MsgBadRequest, v, nil)

	got, ok := serr.As(err)
	require.True(t, ok)
	require.Equal(t, serr.KindBadRequest, got.Kind)
	require.Equal(t, v, got.Violations)
}

func TestKind_String(t *testing.T) {
	cases := map[serr.Kind]string{
		serr.KindServer:          "server",
		serr.KindBadRequest:      "bad_request",
		serr.KindAuthentication:  "authentication",
		serr.KindForbidden:       "forbidden",
		serr.KindNotFound:        "not_found",
		serr.KindConflict:        "conflict",
		serr.KindTooManyRequests: "too_many_requests",
	}
	for k, want := range cases {
		require.Equal(t, want, k.String())
	}
}
