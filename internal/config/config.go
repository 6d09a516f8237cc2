package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type APIConfig struct {
	Key     string
	Host    string
	Timeout time.Duration
}

type HTTPConfig struct {
	Host string
	Port int
}

type ReportConfig struct {
	Dir string
}

type AuthConfig struct {
	Token string
}

type Config struct {
	Environment string
	API         APIConfig
	HTTP        HTTPConfig
	Report      ReportConfig
	Auth        AuthConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()

	// A missing .env file is fine; the environment alone may carry the key.
	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		API: APIConfig{
			Key:     v.GetString("RAPIDAPI_KEY"),
			Host:    v.GetString("RAPIDAPI_HOST"),
			Timeout: v.GetDuration("API_TIMEOUT"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Report: ReportConfig{
			Dir: v.GetString("REPORTS_DIR"),
		},
		Auth: AuthConfig{
			Token: v.GetString("API_TOKEN"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.API.Host == "" {
		cfg.API.Host = "vehicle-rc-information-v2.p.rapidapi.com"
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 10 * time.Second
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.Report.Dir == "" {
		cfg.Report.Dir = "reports"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.API.Key == "" {
		return fmt.Errorf("RAPIDAPI_KEY is required")
	}
	return nil
}
