package api

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

// ErrorResponse стандартный формат ошибки API.
type ErrorResponse struct {
	Message string           `json:"message"`
	Details []serr.Violation `json:"details,omitempty"`
}

// WriteError — единственное место, где ошибка превращается в HTTP-ответ.
//
// Неклассифицированная ошибка считается серверной. Для серверных ошибок
// клиент видит только общее сообщение, подробности уходят в лог.
func (h *Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	e, ok := serr.As(err)
	if !ok {
		e = serr.Server(serr.MsgServerError, err)
	}

	status := StatusOf(e.Kind)
	resp := ErrorResponse{Message: e.Message, Details: e.Violations}

	fields := []zap.Field{
		zap.String("request_id", chimw.GetReqID(r.Context())),
		zap.String("method", r.Method),
		zap.String("uri", r.RequestURI),
		zap.Int("status", status),
		zap.Error(err),
	}
	if e.Kind == serr.KindServer {
		resp = ErrorResponse{Message: serr.MsgServerError}
		h.Log.Error("request failed", fields...)
	} else {
		h.Log.Debug("request rejected", fields...)
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}

// StatusOf сопоставляет класс ошибки и HTTP-статус.
func StatusOf(k serr.Kind) int {
	switch k {
	case serr.KindBadRequest:
		return http.StatusBadRequest
	case serr.KindAuthentication:
		return http.StatusUnauthorized
	case serr.KindForbidden:
		return http.StatusForbidden
	case serr.KindNotFound:
		return http.StatusNotFound
	case serr.KindConflict:
		return http.StatusConflict
	case serr.KindTooManyRequests:
		return http.StatusTooManyRequests
	case serr.KindServer:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NotFound — ответ на любой неизвестный путь или метод.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) error {
	return serr.NotFound(serr.MsgPageNotFound, nil)
}
