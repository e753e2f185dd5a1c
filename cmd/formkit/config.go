package main

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formkit/modules/customer"
	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/requestid"
)

// Backends of drafts and customers.
const (
	backendMemory   = "memory"
	backendRedis    = "redis"
	backendPostgres = "postgres"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL"`
	DefaultLang string `env:"DEFAULT_LANG" envDefault:"en"`

	DraftBackend    string `env:"DRAFT_BACKEND" envDefault:"memory"`
	CustomerBackend string `env:"CUSTOMER_BACKEND" envDefault:"memory"`

	// RateLimit is the sustained number of API requests per second allowed
	// per client IP; RateBurst bounds short bursts. Zero disables limiting.
	RateLimit int `env:"RATE_LIMIT" envDefault:"20"`
	RateBurst int `env:"RATE_BURST" envDefault:"40"`

	HTTP     httpserver.Config
	Customer customer.Config
}

func loadConfig(envFile string) (appConfig, error) {
	if envFile != "" {
		if err := config.LoadEnv(envFile); err != nil {
			return appConfig{}, err
		}
	}
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}

func newLogger(cfg appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "formkit"),
		logger.WithContextExtractors(requestid.LogExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	return logger.New(opts...)
}

func newTranslator(ctx context.Context, cfg appConfig, log *slog.Logger) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(customer.Locales, customer.LocalesDir),
		i18n.WithDefaultLanguage(cfg.DefaultLang),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(cfg.Env == logger.EnvDevelopment),
	)
}
