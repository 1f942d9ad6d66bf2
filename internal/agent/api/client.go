// Package api содержит HTTP-клиент для взаимодействия с сервером Mesto.
//
// Клиент построен на resty: базовый URL, таймаут и Bearer-токен задаются один раз,
// методы отправляют JSON и декодируют JSON-ответ.
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/").
//   - Пустое тело успешного ответа не считается ошибкой.
//   - При ответах не 2xx возвращается *Error с кодом и полем message из тела
//     (если его нет — текст статуса).
//
// ВНИМАНИЕ: Options.Insecure отключает проверку TLS-сертификата.
// Это допустимо только для разработки и локального окружения.
package api

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultTimeout — таймаут одного запроса, если не задан.
const DefaultTimeout = 10 * time.Second

// Error — ответ сервера с кодом не 2xx.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// errorBody — формат ошибки API сервера.
type errorBody struct {
	Message string `json:"message"`
	Details []struct {
		Field string `json:"field"`
		Rule  string `json:"rule"`
	} `json:"details"`
}

// Options — настройки клиента.
type Options struct {
	Timeout  time.Duration
	Insecure bool // не проверять сертификат сервера (только dev)
}

// Client реализует HTTP-клиент для общения с сервером Mesto.
type Client struct {
	rest *resty.Client
}

// NewClient создаёт новый HTTP-клиент для общения с сервером.
//
// baseURL — адрес сервера, например "http://127.0.0.1:3000".
func NewClient(baseURL string, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	rest := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")
	if opts.Insecure {
		rest.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) // только для dev
	}

	return &Client{rest: rest}
}

// do выполняет запрос. body == nil — без тела, out == nil — ответ не декодируется.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	req := c.rest.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	res, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if res.IsError() {
		return apiError(res)
	}

	raw := res.Body()
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// apiError достаёт message из тела ошибки.
func apiError(res *resty.Response) error {
	e := &Error{Status: res.StatusCode()}

	var b errorBody
	if err := json.Unmarshal(res.Body(), &b); err == nil && b.Message != "" {
		e.Message = b.Message
		for _, d := range b.Details {
			e.Message += fmt.Sprintf("; %s: %s", d.Field, d.Rule)
		}
		return e
	}

	e.Message = strings.TrimSpace(string(res.Body()))
	if e.Message == "" {
		e.Message = http.StatusText(res.StatusCode())
	}
	return e
}
