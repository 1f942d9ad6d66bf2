package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/errors"
	dto "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/models"
)

// Без токена все защищённые пути отвечают 401, репозитории не трогаются
func TestProtectedRoutes_NoToken(t *testing.T) {
	env := newTestEnv(t)

	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/users", ""},
		{http.MethodGet, "/users/me", ""},
		{http.MethodGet, "/users/" + uuid.NewString(), ""},
		{http.MethodPatch, "/users/me", `{"name":"Имя"}`},
		{http.MethodPatch, "/users/me/avatar", `{"avatar":"https://a.ru/a.png"}`},
		{http.MethodGet, "/cards", ""},
		{http.MethodPost, "/cards", `{"name":"Байкал","link":"https://a.ru/b.jpg"}`},
		{http.MethodDelete, "/cards/" + uuid.NewString(), ""},
		{http.MethodPut, "/cards/" + uuid.NewString() + "/likes", ""},
		{http.MethodDelete, "/cards/not-an-id/likes", ""},
		{http.MethodGet, "/no/such/path", ""},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := env.do(t, tc.method, tc.path, tc.body, "")
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Equal(t, serr.MsgAuthRequired, message(t, rec))
		})
	}
}

func TestInvalidToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/users/me", "", "garbage.token.value")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, serr.MsgAuthRequired, message(t, rec))
}

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)

	env.users.EXPECT().List(gomock.Any()).Return([]models.User{
		{ID: uuid.New(), Name: "Первый", PasswordHash: "secret-hash"},
		{ID: uuid.New(), Name: "Второй", PasswordHash: "secret-hash"},
	}, nil)

	rec := env.do(t, http.MethodGet, "/users", "", env.token(t, uuid.New()))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "secret-hash")

	var got []dto.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	require.Equal(t, "Первый", got[0].Name)
}

func TestGetUser_NotFound(t *testing.T) {
	env := newTestEnv(t)

	id := uuid.New()
	env.users.EXPECT().GetByID(gomock.Any(), id).Return(models.User{}, serr.ErrNotFound)

	rec := env.do(t, http.MethodGet, "/users/"+id.String(), "", env.token(t, uuid.New()))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, serr.MsgUserNotFound, message(t, rec))
}

// Кривой id отсекается до сервиса
func TestGetUser_MalformedID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/users/123", "", env.token(t, uuid.New()))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string           `json:"message"`
		Details []serr.Violation `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, serr.MsgBadRequest, resp.Message)
	require.Equal(t, []serr.Violation{{Field: "userId", Rule: "uuid"}}, resp.Details)
}

func TestGetMe(t *testing.T) {
	env := newTestEnv(t)

	userID := uuid.New()
	env.users.EXPECT().
		GetByID(gomock.Any(), userID).
		Return(models.User{ID: userID, Name: "Жак", Email: "a@b.ru"}, nil)

	rec := env.do(t, http.MethodGet, "/users/me", "", env.token(t, userID))
	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, userID.String(), got.ID)
	require.Equal(t, "a@b.ru", got.Email)
}

// Отсутствующее поле не меняется: в репозиторий уходит только name
func TestUpdateMe_Partial(t *testing.T) {
	env := newTestEnv(t)

	userID := uuid.New()
	env.users.EXPECT().
		Update(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ any, _ uuid.UUID, upd models.ProfileUpdate) (models.User, error) {
			require.NotNil(t, upd.Name)
			require.Equal(t, "Новое имя", *upd.Name)
			require.Nil(t, upd.About)
			require.Nil(t, upd.Avatar)
			return models.User{ID: userID, Name: *upd.Name, About: "Исследователь"}, nil
		})

	rec := env.do(t, http.MethodPatch, "/users/me", `{"name":"Новое имя"}`, env.token(t, userID))
	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Новое имя", got.Name)
	require.Equal(t, "Исследователь", got.About)
}

func TestUpdateMe_TooShort(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPatch, "/users/me", `{"about":"x"}`, env.token(t, uuid.New()))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, serr.MsgBadRequest, message(t, rec))
}

func TestUpdateAvatar(t *testing.T) {
	env := newTestEnv(t)

	userID := uuid.New()
	env.users.EXPECT().
		Update(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ any, _ uuid.UUID, upd models.ProfileUpdate) (models.User, error) {
			require.NotNil(t, upd.Avatar)
			return models.User{ID: userID, Avatar: *upd.Avatar}, nil
		})

	rec := env.do(t, http.MethodPatch, "/users/me/avatar", `{"avatar":"https://a.ru/me.png"}`, env.token(t, userID))
	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "https://a.ru/me.png", got.Avatar)
}

func TestUpdateAvatar_NotURL(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPatch, "/users/me/avatar", `{"avatar":"ftp://a.ru/me.png"}`, env.token(t, uuid.New()))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// Серверная ошибка не раскрывает причину
func TestServerError_Hidden(t *testing.T) {
	env := newTestEnv(t)

	env.users.EXPECT().List(gomock.Any()).Return(nil, serr.ErrInternal)

	rec := env.do(t, http.MethodGet, "/users", "", env.token(t, uuid.New()))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, serr.MsgServerError, message(t, rec))
	require.NotContains(t, rec.Body.String(), "internal error")
}
