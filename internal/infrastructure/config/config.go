package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env       string
	Server    ServerConfig
	Database  DatabaseConfig
	Session   SessionConfig
	JWT       JWTConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	I18n      I18nConfig
}

type ServerConfig struct {
	Port           string
	Host           string
	BaseURL        string // URL base da API para construir URIs RFC 7807
	TrustedProxies string // lista separada por vírgula; vazio usa só o endereço da conexão
}

type DatabaseConfig struct {
	Driver      string // postgres | sqlite
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	Path        string // arquivo do sqlite
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type SessionConfig struct {
	Secret string
	MaxAge int // segundos
	Secure bool
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type RedisConfig struct {
	URL string
}

type RateLimitConfig struct {
	LoginLimit    int64
	Window        time.Duration
	LockThreshold int64
	LockTTL       time.Duration
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

type I18nConfig struct {
	LocalesDir      string
	DefaultLanguage string
}

// IsProduction indica ambiente de produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load carrega as configurações do ambiente (e do .env, se existir)
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom carrega as configurações usando o arquivo .env informado
func LoadFrom(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			Host:           v.GetString("HOST"),
			BaseURL:        v.GetString("API_BASE_URL"),
			TrustedProxies: v.GetString("TRUSTED_PROXIES"),
		},
		Database: DatabaseConfig{
			Driver:      strings.ToLower(v.GetString("DB_DRIVER")),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			Path:        v.GetString("DB_PATH"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
		},
		Session: SessionConfig{
			Secret: v.GetString("SESSION_SECRET"),
			MaxAge: v.GetInt("SESSION_MAX_AGE"),
			Secure: v.GetBool("SESSION_SECURE"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: v.GetDuration("JWT_ACCESS_EXPIRY"),
		},
		Redis: RedisConfig{
			URL: v.GetString("REDIS_URL"),
		},
		RateLimit: RateLimitConfig{
			LoginLimit:    v.GetInt64("LOGIN_RATE_LIMIT"),
			Window:        v.GetDuration("LOGIN_RATE_WINDOW"),
			LockThreshold: v.GetInt64("LOGIN_LOCK_THRESHOLD"),
			LockTTL:       v.GetDuration("LOGIN_LOCK_TTL"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		I18n: I18nConfig{
			LocalesDir:      v.GetString("I18N_LOCALES_DIR"),
			DefaultLanguage: v.GetString("I18N_DEFAULT_LANGUAGE"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "agendafoto")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_PATH", "agendafoto.db")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("SESSION_MAX_AGE", 14*24*3600)
	v.SetDefault("JWT_ACCESS_EXPIRY", "1h")
	v.SetDefault("LOGIN_RATE_LIMIT", 10)
	v.SetDefault("LOGIN_RATE_WINDOW", "1m")
	v.SetDefault("LOGIN_LOCK_THRESHOLD", 5)
	v.SetDefault("LOGIN_LOCK_TTL", "15m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("I18N_LOCALES_DIR", "./internal/infrastructure/i18n/locales")
	v.SetDefault("I18N_DEFAULT_LANGUAGE", "pt-BR")
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.IsProduction() {
		if len(c.Session.Secret) < 32 {
			return errors.New("SESSION_SECRET must have at least 32 bytes in production")
		}
		if len(c.JWT.Secret) < 32 {
			return errors.New("JWT_SECRET must have at least 32 bytes in production")
		}
	}

	return nil
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
