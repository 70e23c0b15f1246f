package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Opinet OpinetConfig
	CORS   CORSConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type OpinetConfig struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
}

type CORSConfig struct {
	AllowOrigins []string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Opinet: OpinetConfig{
			BaseURL:        viper.GetString("OPINET_BASE_URL"),
			APIKey:         viper.GetString("OPINET_API_KEY"),
			RequestTimeout: time.Duration(viper.GetInt("OPINET_REQUEST_TIMEOUT")) * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins: parseOrigins(viper.GetString("CORS_ALLOW_ORIGINS")),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Opinet.BaseURL == "" {
		cfg.Opinet.BaseURL = "https://www.opinet.co.kr/api"
	}
	if cfg.Opinet.RequestTimeout == 0 {
		cfg.Opinet.RequestTimeout = 10 * time.Second
	}
	if len(cfg.CORS.AllowOrigins) == 0 {
		cfg.CORS.AllowOrigins = []string{
			"http://127.0.0.1:5500",
			"http://localhost:5500",
			"null",
		}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	// API-ключ - секрет, живёт только в окружении
	if cfg.Opinet.APIKey == "" {
		return nil, fmt.Errorf("OPINET_API_KEY is required")
	}

	return cfg, nil
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
