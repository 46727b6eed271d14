package config

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/joho/godotenv"
)

var (
	configOnce  sync.Once
	configValue *Config
)

// Load 는 환경 변수 기반 설정을 로드한다.
func Load() *Config {
	configOnce.Do(func() {
		_ = godotenv.Load()
		configValue = buildConfig()
	})
	return configValue
}

// ProvideConfig 는 설정을 로드하고 검증한다.
func ProvideConfig() (*Config, error) {
	cfg := Load()
	if cfg == nil {
		return nil, errors.New("config not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 는 설정 유효성을 검사한다.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Database.Name == "" || c.Database.User == "" {
		return errors.New("database name/user are required")
	}
	return nil
}

// LogEnvStatus 는 환경 설정 상태를 로그로 남긴다.
func LogEnvStatus(cfg *Config, logger *slog.Logger) {
	if logger == nil || cfg == nil {
		return
	}

	envFilePresent := fileExists(".env")
	logger.Debug(
		"env_status",
		"env_file", envFilePresent,
		"gemini_key", maskSecret(cfg.Gemini.APIKey),
		"gemini_usable", cfg.Gemini.KeyUsable(),
		"model", cfg.Gemini.Model,
		"gemini_timeout", cfg.Gemini.TimeoutSeconds,
		"db_host", cfg.Database.Host,
		"db_name", cfg.Database.Name,
		"cache_enabled", cfg.Cache.Enabled,
		"token_ttl_hours", cfg.Auth.TokenTTLHours,
	)

	if !cfg.Gemini.KeyUsable() {
		logger.Warn("gemini_api_key_missing_or_invalid_ai_disabled")
	}
}

func buildConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			APIKey:          parseGeminiKey(),
			Model:           getEnvString("GEMINI_MODEL", "gemini-2.0-flash-001"),
			Temperature:     getEnvFloat("GEMINI_TEMPERATURE", 0.7),
			MaxOutputTokens: getEnvInt("GEMINI_MAX_TOKENS", 2048),
			TimeoutSeconds:  getEnvInt("GEMINI_TIMEOUT", 10),
		},
		Auth: AuthConfig{
			JWTSecret:          getEnvString("JWT_SECRET", ""),
			TokenTTLHours:      getEnvInt("JWT_TTL_HOURS", 1),
			LoginFailLimit:     getEnvNonNegativeInt("LOGIN_FAIL_LIMIT", 5),
			LoginFailWindowMin: getEnvNonNegativeInt("LOGIN_FAIL_WINDOW_MINUTES", 10),
			LoginLockMinutes:   getEnvNonNegativeInt("LOGIN_LOCK_MINUTES", 15),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("LOG_LEVEL", "info"),
			LogDir:     getEnvString("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 1),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 30),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_FILE_COMPRESS", true),
		},
		HTTP: HTTPConfig{
			Host:         getEnvString("HTTP_HOST", "127.0.0.1"),
			Port:         getEnvInt("HTTP_PORT", 3001),
			HTTP2Enabled: getEnvBool("HTTP2_ENABLED", true),
			CORSOrigins:  parseCORSOrigins(),
		},
		Cache: CacheConfig{
			Host:     getEnvString("CACHE_HOST", "localhost"),
			Port:     getEnvInt("CACHE_PORT", 6379),
			Password: getEnvString("CACHE_PASSWORD", ""),
			DB:       getEnvInt("CACHE_DB", 0),
			Enabled:  getEnvBool("CACHE_ENABLED", false),
		},
		Database: DatabaseConfig{
			Host:                   getEnvString("DB_HOST", "localhost"),
			Port:                   getEnvInt("DB_PORT", 5432),
			Name:                   getEnvString("DB_NAME", "reactboard"),
			User:                   getEnvString("DB_USER", "reactboard"),
			Password:               getEnvString("DB_PASSWORD", ""),
			MinPool:                getEnvInt("DB_MIN_POOL", 1),
			MaxPool:                getEnvInt("DB_MAX_POOL", 5),
			ConnMaxLifetimeMinutes: getEnvNonNegativeInt("DB_CONN_MAX_LIFETIME_MINUTES", 60),
			ConnMaxIdleTimeMinutes: getEnvNonNegativeInt("DB_CONN_MAX_IDLE_TIME_MINUTES", 10),
		},
	}
}
