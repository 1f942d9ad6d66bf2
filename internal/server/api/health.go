package api

import (
	"net/http"

	"github.com/go-chi/render"

	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
)

// HealthResponse — ответ /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Healthz проверяет, что сервер жив и база отвечает.
//
// @Summary      Health check
// @Tags         service
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      500 {object} ErrorResponse
// @Router       /healthz [get]
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) error {
	if h.Health != nil {
		if err := h.Health.PingContext(r.Context()); err != nil {
			return serr.Server(serr.MsgServerError, err)
		}
	}
	render.JSON(w, r, HealthResponse{Status: "ok"})
	return nil
}
