package config

import (
	"fmt"
	"os"
)

type Config struct {
	ServiceName string
	GinMode     string
	Port        string
	TZ          string

	DBDriver  string // "postgres" or "sqlite"
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	DBSSLMode string
	DBPath    string // sqlite only

	AMQPURL  string
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		ServiceName: getenv("SERVICE_NAME", "library-api"),
		GinMode:     getenv("GIN_MODE", "debug"),
		Port:        getenv("PORT", "4000"),
		TZ:          getenv("TZ", "UTC"),
		DBDriver:    getenv("DB_DRIVER", "postgres"),
		DBHost:      getenv("DB_HOST", "localhost"),
		DBPort:      getenv("DB_PORT", "5432"),
		DBUser:      getenv("DB_USER", "postgres"),
		DBPass:      getenv("DB_PASS", ""),
		DBName:      getenv("DB_NAME", "library"),
		DBSSLMode:   os.Getenv("DB_SSLMODE"),
		DBPath:      getenv("DB_PATH", "library.db"),
		AMQPURL:     os.Getenv("AMQP_URL"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	return cfg
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
