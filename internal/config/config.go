// Package config loads application settings from environment variables and
// an optional config file via Viper. Env vars take priority.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration.
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
	Store StoreConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// HTTPConfig holds the listen address.
type HTTPConfig struct {
	Addr string
}

// JWTConfig holds the session token settings.
type JWTConfig struct {
	Secret string
}

// StoreConfig selects and parameterizes the persistence backend.
type StoreConfig struct {
	Driver      string // memory, file, postgres, redis
	DataDir     string // file driver
	DatabaseURL string // postgres driver
	RedisAddr   string // redis driver
}

// Load reads configuration from env vars and, when present, a config.env
// file in the working directory.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // the file is optional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "warehouse-tracker")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("STORE_DRIVER", "file")
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		HTTP: HTTPConfig{
			Addr: v.GetString("HTTP_ADDR"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
		},
		Store: StoreConfig{
			Driver:      v.GetString("STORE_DRIVER"),
			DataDir:     v.GetString("DATA_DIR"),
			DatabaseURL: v.GetString("DATABASE_URL"),
			RedisAddr:   v.GetString("REDIS_ADDR"),
		},
	}
	return cfg, nil
}
