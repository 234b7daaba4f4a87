package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// BackendPostgres настройки салонов хранятся в собственной БД
	BackendPostgres = "postgres"
	// BackendRemote настройки салонов хранятся во внешнем сервисе
	BackendRemote = "remote"
)

var (
	// ErrReadConfig ошибка чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read file")

	// ErrInvalidConfig ошибка валидации конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Redis       RedisConfig       `toml:"redis"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Settings    SettingsConfig    `toml:"settings"`
	SettingsAPI SettingsAPIConfig `toml:"settings_api"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig параметры подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`      // применять миграции goose при старте
	MigrationsDir   string `toml:"migrations_dir"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig хранилище пользовательских настроек.
// Пустой addr - настройки живут только в памяти процесса
type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
	TTL       int    `toml:"ttl"` // секунды, 0 - без срока жизни
}

// LogsConfig параметры логирования
type LogsConfig struct {
	File  string `toml:"file"` // пустая строка - только stderr
	Level string `toml:"level"`
}

// MetricsConfig параметры Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SettingsConfig выбор хранилища настроек салонов
type SettingsConfig struct {
	Backend string `toml:"backend"` // postgres | remote
}

// SettingsAPIConfig внешний сервис настроек (backend = remote)
type SettingsAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "salon",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			MigrationsDir:   "migrations",
		},
		Redis: RedisConfig{
			KeyPrefix: "salon:",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "salon_service",
		},
		Settings: SettingsConfig{
			Backend: BackendPostgres,
		},
		SettingsAPI: SettingsAPIConfig{
			Timeout: 5,
		},
	}
}

// Load читает конфигурацию из TOML файла поверх значений по умолчанию
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}
	return Parse(string(data))
}

// Parse разбирает TOML и проверяет конфигурацию
func Parse(data string) (*Config, error) {
	cfg := Default()

	meta, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность параметров
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	switch c.Settings.Backend {
	case BackendPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres backend", ErrInvalidConfig)
		}
		if c.Database.AutoMigrate && c.Database.MigrationsDir == "" {
			return fmt.Errorf("%w: database.migrations_dir is required when auto_migrate is on", ErrInvalidConfig)
		}
	case BackendRemote:
		if c.SettingsAPI.URL == "" {
			return fmt.Errorf("%w: settings_api.url is required for remote backend", ErrInvalidConfig)
		}
		if c.SettingsAPI.Timeout <= 0 {
			return fmt.Errorf("%w: settings_api.timeout must be positive", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: settings.backend must be %q or %q, got %q",
			ErrInvalidConfig, BackendPostgres, BackendRemote, c.Settings.Backend)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}
	if c.Redis.TTL < 0 {
		return fmt.Errorf("%w: redis.ttl must not be negative", ErrInvalidConfig)
	}

	return nil
}
