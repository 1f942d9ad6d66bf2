// Package config отвечает за:
// - чтение server.yaml
// - подстановку переменных окружения вида ${JWT_SECRET}
// - переопределение настроек переменными окружения (NODE_ENV, PORT, DATABASE_URL, JWT_SECRET)
// - проставление дефолтов
// - валидацию (чтобы сервер не стартовал с дырявыми настройками)
//
// Конфиг собирается один раз в main и дальше передаётся зависимостям явно.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvProduction — значение env, при котором используется боевой секрет JWT.
const EnvProduction = "production"

// Config — корневая структура всего конфига сервера.
type Config struct {
	Env           string              `yaml:"env"` // development|production
	Server        ServerConfig        `yaml:"server"`
	TLS           TLSConfig           `yaml:"tls"`
	DB            DBConfig            `yaml:"db"`
	Migrations    MigrationsConfig    `yaml:"migrations"`
	Auth          AuthConfig          `yaml:"auth"`
	Password      PasswordConfig      `yaml:"password"`
	Security      SecurityConfig      `yaml:"security"`
	Log           LogConfig           `yaml:"log"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig — настройки HTTP-сервера.
type ServerConfig struct {
	Host              string        `yaml:"host"`
	Port              int           `yaml:"port"`
	ReadTimeout       time.Duration `yaml:"read_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"` // время на graceful shutdown
	MaxHeaderBytes    int           `yaml:"max_header_bytes"` // лимит размера заголовков
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`   // лимит размера тела запроса
}

// Addr возвращает адрес для http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// TLSConfig — настройки HTTPS. По умолчанию сервер слушает обычный HTTP.
type TLSConfig struct {
	Enabled    bool   `yaml:"enabled"`
	CertFile   string `yaml:"cert_file"`
	KeyFile    string `yaml:"key_file"`
	MinVersion string `yaml:"min_version"` // "1.2"|"1.3"
}

// DBConfig — настройки подключения к базе данных.
type DBConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// MigrationsConfig — применять ли встроенные миграции при старте.
type MigrationsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// AuthConfig — настройки аутентификации.
type AuthConfig struct {
	TokenTTL time.Duration `yaml:"token_ttl"`
	JWT      JWTConfig     `yaml:"jwt"`
	Cookie   CookieConfig  `yaml:"cookie"`
}

// JWTConfig — как подписываем JWT.
//
// SigningKey используется только в production, в остальных режимах — DevSigningKey.
type JWTConfig struct {
	Algorithm     string `yaml:"algorithm"`       // сейчас поддерживаем только HS256
	SigningKey    string `yaml:"signing_key"`     // может содержать ${JWT_SECRET}
	DevSigningKey string `yaml:"dev_signing_key"` // секрет вне production
}

// CookieConfig — параметры cookie с токеном.
type CookieConfig struct {
	Name   string `yaml:"name"`
	Secure bool   `yaml:"secure"`
}

// PasswordConfig — настройки хэширования паролей пользователей.
type PasswordConfig struct {
	Bcrypt BcryptConfig `yaml:"bcrypt"`
}

// BcryptConfig — параметры bcrypt.
type BcryptConfig struct {
	Cost int `yaml:"cost"`
}

// SecurityConfig — ограничения/защита.
type SecurityConfig struct {
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig — простой rate limit (по IP или по пользователю).
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
	Key     string  `yaml:"key"` // ip|user
}

// LogConfig — настройки логирования (zap).
type LogConfig struct {
	Level       string `yaml:"level"`  // debug|info|warn|error
	Format      string `yaml:"format"` // json|console
	File        string `yaml:"file"`
	Development bool   `yaml:"development"`
	MaxSizeMB   int    `yaml:"max_size_mb"`
	MaxBackups  int    `yaml:"max_backups"`
	MaxAgeDays  int    `yaml:"max_age_days"`
}

// ObservabilityConfig — метрики/pprof.
type ObservabilityConfig struct {
	Metrics MetricsConfig `yaml:"metrics"`
	Pprof   PprofConfig   `yaml:"pprof"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type PprofConfig struct {
	Enabled    bool   `yaml:"enabled"`
	PathPrefix string `yaml:"path_prefix"`
}

// envOverrides — переменные окружения, которые перекрывают значения из yaml.
type envOverrides struct {
	Env       string `env:"NODE_ENV"`
	Port      int    `env:"PORT"`
	DSN       string `env:"DATABASE_URL"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL"`
}

// Load читает YAML, подставляет переменные окружения вида ${VAR},
// затем парсит в структуру, применяет переопределения из окружения,
// проставляет дефолты и валидирует.
//
// Отсутствующий файл не ошибка: сервер поднимется на дефолтах и окружении.
func Load(path string) (*Config, error) {
	var cfg Config

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		// signing_key: "${JWT_SECRET}" -> signing_key: "реальное_значение"
		raw = []byte(ExpandEnvStrict(string(raw)))
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("не удалось распарсить yaml: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("не удалось прочитать конфиг: %w", err)
	}

	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	ApplyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var envPlaceholder = regexp.MustCompile(`\$\{([A-Z0-9_]+)\}`)

// ExpandEnvStrict заменяет ${VAR} на значение из окружения.
// Если переменная не задана — оставляем ${VAR} как есть,
// а потом Validate() упадёт с понятной ошибкой.
func ExpandEnvStrict(s string) string {
	return envPlaceholder.ReplaceAllStringFunc(s, func(m string) string {
		sub := envPlaceholder.FindStringSubmatch(m)
		if len(sub) != 2 {
			return m
		}
		if val, ok := os.LookupEnv(sub[1]); ok {
			return val
		}
		return m
	})
}

// ApplyEnvOverrides перекрывает значения конфига переменными окружения.
// Пустые переменные ничего не меняют.
func (c *Config) ApplyEnvOverrides() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if o.Env != "" {
		c.Env = o.Env
	}
	if o.Port > 0 {
		c.Server.Port = o.Port
	}
	if o.DSN != "" {
		c.DB.DSN = o.DSN
	}
	if o.JWTSecret != "" {
		c.Auth.JWT.SigningKey = o.JWTSecret
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	return nil
}

// ApplyDefaults — дефолтные значения, если в yaml поле не задано.
func ApplyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10 * time.Second
	}
	if cfg.Server.ReadHeaderTimeout == 0 {
		cfg.Server.ReadHeaderTimeout = 5 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15 * time.Second
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = 1 << 20
	}
	if cfg.DB.MaxOpenConns == 0 {
		cfg.DB.MaxOpenConns = 10
	}
	if cfg.DB.MaxIdleConns == 0 {
		cfg.DB.MaxIdleConns = 5
	}
	if cfg.DB.ConnMaxLifetime == 0 {
		cfg.DB.ConnMaxLifetime = 30 * time.Minute
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 7 * 24 * time.Hour
	}
	if cfg.Auth.JWT.Algorithm == "" {
		cfg.Auth.JWT.Algorithm = "HS256"
	}
	if cfg.Auth.JWT.DevSigningKey == "" {
		cfg.Auth.JWT.DevSigningKey = "dev-secret"
	}
	if cfg.Auth.Cookie.Name == "" {
		cfg.Auth.Cookie.Name = "jwt"
	}
	if cfg.Password.Bcrypt.Cost == 0 {
		cfg.Password.Bcrypt.Cost = 10
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Security.RateLimit.Key == "" {
		cfg.Security.RateLimit.Key = "ip"
	}
	if cfg.Observability.Metrics.Path == "" {
		cfg.Observability.Metrics.Path = "/metrics"
	}
	if cfg.Observability.Pprof.PathPrefix == "" {
		cfg.Observability.Pprof.PathPrefix = "/debug"
	}
}

// IsProduction сообщает, запущен ли сервер в боевом режиме.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), EnvProduction)
}

// SigningKey возвращает секрет, которым подписываются и проверяются токены:
// в production — JWT_SECRET, иначе — dev-секрет.
func (c *Config) SigningKey() string {
	if c.IsProduction() {
		return strings.TrimSpace(c.Auth.JWT.SigningKey)
	}
	return c.Auth.JWT.DevSigningKey
}

// Validate проверяет, что конфиг заполнен корректно и безопасно.
// Если что-то не так — возвращаем ошибку и сервер НЕ стартует.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port некорректен: %d", c.Server.Port)
	}

	// TLS/HTTPS
	if c.TLS.Enabled {
		if c.TLS.CertFile == "" || c.TLS.KeyFile == "" {
			return errors.New("tls.cert_file и tls.key_file обязательны при tls.enabled=true")
		}
		if c.TLS.MinVersion == "" {
			c.TLS.MinVersion = "1.2"
		}
		// TLS 1.0/1.1 считаются небезопасными — запрещаем
		if c.TLS.MinVersion != "1.2" && c.TLS.MinVersion != "1.3" {
			return fmt.Errorf("tls.min_version=%s не поддерживается; используй 1.2 или 1.3", c.TLS.MinVersion)
		}
	}

	// База данных
	if strings.TrimSpace(c.DB.DSN) == "" {
		return errors.New("db.dsn обязателен (или переменная DATABASE_URL)")
	}
	if strings.Contains(c.DB.DSN, "${") {
		return fmt.Errorf("db.dsn содержит неподставленную переменную: %q (нужно задать DATABASE_URL)", c.DB.DSN)
	}

	// JWT
	alg := strings.ToUpper(strings.TrimSpace(c.Auth.JWT.Algorithm))
	if alg != "HS256" {
		return fmt.Errorf("auth.jwt.algorithm должен быть HS256 (сейчас %q)", c.Auth.JWT.Algorithm)
	}
	if c.IsProduction() {
		key := strings.TrimSpace(c.Auth.JWT.SigningKey)
		if key == "" {
			return errors.New("в production auth.jwt.signing_key обязателен (через ${JWT_SECRET} или JWT_SECRET)")
		}
		// Если ${JWT_SECRET} не подставился — значит переменная окружения не задана
		if strings.Contains(key, "${") && strings.Contains(key, "}") {
			return fmt.Errorf("auth.jwt.signing_key содержит неподставленную переменную: %q (нужно задать JWT_SECRET)", key)
		}
		// Для HS256 ключ должен быть длинным и случайным
		if len(key) < 32 {
			return fmt.Errorf("auth.jwt.signing_key слишком короткий (%d символов); нужно >= 32", len(key))
		}
	}
	if c.Auth.TokenTTL < 0 {
		return errors.New("auth.token_ttl не может быть отрицательным")
	}

	// Хэширование паролей
	if c.Password.Bcrypt.Cost < 4 || c.Password.Bcrypt.Cost > 31 {
		return fmt.Errorf("password.bcrypt.cost должен быть в диапазоне 4..31 (сейчас %d)", c.Password.Bcrypt.Cost)
	}

	// Rate limit
	if c.Security.RateLimit.Enabled {
		if c.Security.RateLimit.RPS <= 0 {
			return errors.New("security.rate_limit.rps должен быть > 0 при включённом rate_limit")
		}
		if c.Security.RateLimit.Burst <= 0 {
			return errors.New("security.rate_limit.burst должен быть > 0 при включённом rate_limit")
		}
		if c.Security.RateLimit.Key != "ip" && c.Security.RateLimit.Key != "user" {
			return fmt.Errorf("security.rate_limit.key должен быть ip|user (сейчас %q)", c.Security.RateLimit.Key)
		}
	}

	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format должен быть json|console (сейчас %q)", c.Log.Format)
	}

	return nil
}
