// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct tag parsing and
// github.com/joho/godotenv for .env files. Load caches each configuration type
// so it is parsed once per process; Parse reads a struct under an explicit
// variable prefix without caching:
//
//	var app struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//	config.MustLoad(&app)
//
//	var drafts redis.Config
//	if err := config.Parse(&drafts, "DRAFTS_"); err != nil {
//		return err
//	}
package config
