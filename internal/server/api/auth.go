// HTTP-хендлеры регистрации, входа и выхода
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
	dto "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/models"
)

// SignUp обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 200 OK: пользователь создан (без пароля);
//   - 400 Bad Request: неверный JSON или невалидные данные;
//   - 409 Conflict: email уже занят;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Sign up
// @Description  Creates a user. Absent name, about and avatar get default values.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.SignUpRequest true "Sign up request"
// @Success      200 {object} dto.User
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      409 {object} ErrorResponse "Email already registered"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /signup [post]
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) error {
	req, err := body[dto.SignUpRequest](r)
	if err != nil {
		return err
	}

	user, err := h.Svc.Auth.SignUp(r.Context(), service.SignUpInput{
		Name:     req.Name,
		About:    req.About,
		Avatar:   req.Avatar,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	render.JSON(w, r, toUser(user))
	return nil
}

// CreateUser — то же, что SignUp, но для уже вошедшего пользователя (наполнение базы).
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        request body dto.SignUpRequest true "User"
// @Success      200 {object} dto.User
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) error {
	return h.SignUp(w, r)
}

// SignIn проверяет email и пароль, ставит cookie jwt и возвращает токен в теле.
//
// Ответы:
//   - 200 OK: успешный вход;
//   - 400 Bad Request: неверный JSON или невалидные данные;
//   - 401 Unauthorized: неверные почта или пароль;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.SignInRequest true "Credentials"
// @Success      200 {object} dto.TokenResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse "Wrong email or password"
// @Router       /signin [post]
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) error {
	req, err := body[dto.SignInRequest](r)
	if err != nil {
		return err
	}

	token, err := h.Svc.Auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	ttl := h.Svc.Auth.TokenTTL()
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})

	render.JSON(w, r, dto.TokenResponse{Token: token})
	return nil
}

// SignOut стирает cookie с токеном.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Security     CookieAuth
// @Success      200 {object} dto.MessageResponse
// @Failure      401 {object} ErrorResponse
// @Router       /signout [post]
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})

	render.JSON(w, r, dto.MessageResponse{Message: serr.MsgSignedOut})
	return nil
}
