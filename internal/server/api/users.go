package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	dto "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/models"
)

// ListUsers возвращает всех пользователей.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Success      200 {array} dto.User
// @Failure      401 {object} ErrorResponse
// @Router       /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.Svc.Users.List(r.Context())
	if err != nil {
		return err
	}
	render.JSON(w, r, toUsers(users))
	return nil
}

// GetUser возвращает пользователя по id.
//
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Param        userId path string true "User id"
// @Success      200 {object} dto.User
// @Failure      400 {object} ErrorResponse "Malformed id"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "User not found"
// @Router       /users/{userId} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) error {
	user, err := h.Svc.Users.Get(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		return err
	}
	render.JSON(w, r, toUser(user))
	return nil
}

// GetMe возвращает текущего пользователя.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     CookieAuth
// @Success      200 {object} dto.User
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /users/me [get]
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) error {
	userID, err := currentUser(r)
	if err != nil {
		return err
	}

	user, err := h.Svc.Users.Get(r.Context(), userID)
	if err != nil {
		return err
	}
	render.JSON(w, r, toUser(user))
	return nil
}

// UpdateMe меняет name и/или about текущего пользователя.
//
// @Summary      Update profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        request body dto.UpdateProfileRequest true "Profile"
// @Success      200 {object} dto.User
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /users/me [patch]
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) error {
	userID, err := currentUser(r)
	if err != nil {
		return err
	}
	req, err := body[dto.UpdateProfileRequest](r)
	if err != nil {
		return err
	}

	user, err := h.Svc.Users.UpdateProfile(r.Context(), userID, req.Name, req.About)
	if err != nil {
		return err
	}
	render.JSON(w, r, toUser(user))
	return nil
}

// UpdateAvatar меняет аватар текущего пользователя.
//
// @Summary      Update avatar
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        request body dto.UpdateAvatarRequest true "Avatar"
// @Success      200 {object} dto.User
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /users/me/avatar [patch]
func (h *Handler) UpdateAvatar(w http.ResponseWriter, r *http.Request) error {
	userID, err := currentUser(r)
	if err != nil {
		return err
	}
	req, err := body[dto.UpdateAvatarRequest](r)
	if err != nil {
		return err
	}

	user, err := h.Svc.Users.UpdateAvatar(r.Context(), userID, req.Avatar)
	if err != nil {
		return err
	}
	render.JSON(w, r, toUser(user))
	return nil
}
