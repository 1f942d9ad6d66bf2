package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/agent/api"
	dto "github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/models"
	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/shared/utils"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestClient_SignIn_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/signin", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Empty(t, r.Header.Get("Authorization"))

		var req dto.SignInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "test@example.com", req.Email)
		require.Equal(t, "StrongPass123", req.Password)

		writeJSON(w, http.StatusOK, dto.TokenResponse{Token: "tok-1"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL+"/", api.Options{})
	tok, err := c.SignIn(context.Background(), "test@example.com", "StrongPass123")
	require.NoError(t, err)
	require.Equal(t, "tok-1", tok)
}

func TestClient_SignUp_Conflict(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/signup", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Пользователь с таким email уже существует"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL, api.Options{})
	_, err := c.SignUp(context.Background(), dto.SignUpRequest{Email: "a@b.ru", Password: "StrongPass123"})

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusConflict, apiErr.Status)
	require.Equal(t, "Пользователь с таким email уже существует", apiErr.Message)
}

// Нарушения полей попадают в текст ошибки
func TestClient_ValidationDetails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cards", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"message": "Переданы некорректные данные",
			"details": []map[string]string{{"field": "link", "rule": "mestourl"}},
		})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL, api.Options{})
	_, err := c.CreateCard(context.Background(), "tok", "Байкал", "nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "link: mestourl")
}

// Тело без JSON — текст ошибки берётся как есть
func TestClient_PlainTextError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway down", http.StatusBadGateway)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL, api.Options{})
	_, err := c.Me(context.Background(), "tok")

	var apiErr *api.Error
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
	require.Equal(t, "gateway down", apiErr.Message)
}

func TestClient_UpdateProfile_OmitsNil(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/me", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		require.Equal(t, map[string]any{"name": "Новое"}, raw)

		writeJSON(w, http.StatusOK, dto.User{ID: "u1", Name: "Новое"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL, api.Options{})
	u, err := c.UpdateProfile(context.Background(), "tok", utils.Ptr("Новое"), nil)
	require.NoError(t, err)
	require.Equal(t, "Новое", u.Name)
}

func TestClient_CardActions(t *testing.T) {
	var calls []string
	mux := http.NewServeMux()
	mux.HandleFunc("/cards/c1", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		writeJSON(w, http.StatusOK, dto.Card{ID: "c1"})
	})
	mux.HandleFunc("/cards/c1/likes", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		writeJSON(w, http.StatusOK, dto.Card{ID: "c1", Likes: []string{"u1"}})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	c := api.NewClient(srv.URL, api.Options{})

	card, err := c.LikeCard(ctx, "tok", "c1")
	require.NoError(t, err)
	require.Equal(t, []string{"u1"}, card.Likes)

	_, err = c.DislikeCard(ctx, "tok", "c1")
	require.NoError(t, err)
	_, err = c.DeleteCard(ctx, "tok", "c1")
	require.NoError(t, err)

	require.Equal(t, []string{
		"PUT /cards/c1/likes",
		"DELETE /cards/c1/likes",
		"DELETE /cards/c1",
	}, calls)
}

// 2xx с пустым телом — успех
func TestClient_SignOut_EmptyBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/signout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL, api.Options{})
	require.NoError(t, c.SignOut(context.Background(), "tok"))
}

func TestClient_Insecure_TLS(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []dto.User{{ID: "u1"}, {ID: "u2"}})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := api.NewClient(srv.URL, api.Options{Insecure: true})
	users, err := c.Users(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, users, 2)
}
