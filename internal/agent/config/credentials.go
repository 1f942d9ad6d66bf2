// Package config содержит функции для работы с локальной конфигурацией CLI-клиента.
//
// Конфигурация хранит токен, выданный сервером при входе, и размещается
// в домашней директории пользователя в файле:
//
//	~/.mesto/credentials.json
//
// Пакет предоставляет функции для получения пути по умолчанию, загрузки, сохранения
// и удаления конфигурации в JSON формате.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Credentials содержит учётные данные, используемые CLI-клиентом.
//
// Token передаётся серверу в заголовке Authorization: Bearer.
// Email — с каким адресом был выполнен вход, только для вывода.
type Credentials struct {
	Token string `json:"token"`
	Email string `json:"email,omitempty"`
}

// SignedIn сообщает, есть ли сохранённый токен.
func (c *Credentials) SignedIn() bool {
	return c != nil && c.Token != ""
}

// DefaultPath возвращает путь к конфигурационному файлу в домашней директории пользователя.
//
// Формат пути:
//
//	<home>/.mesto/credentials.json
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mesto", "credentials.json"), nil
}

// Load читает учётные данные. Нет файла — значит вход не выполнялся,
// возвращается пустой *Credentials. Битый JSON — ошибка.
func Load(path string) (*Credentials, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Credentials{}, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var c Credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

// Save пишет учётные данные в path (0600), создавая каталог (0700).
func Save(path string, c *Credentials) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// Remove удаляет файл с учётными данными. Отсутствие файла не ошибка.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
