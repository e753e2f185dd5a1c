package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/modules/customer"
	"github.com/dmitrymomot/formkit/pkg/clientip"
	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/pg"
	"github.com/dmitrymomot/formkit/pkg/ratelimit"
	"github.com/dmitrymomot/formkit/pkg/redis"
	"github.com/dmitrymomot/formkit/pkg/requestid"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd.String("env-file"))
			if err != nil {
				return err
			}
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg appConfig) error {
	log := newLogger(cfg)

	translator, err := newTranslator(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	checks := map[string]httpserver.HealthCheck{}
	var cleanup []func()
	defer func() {
		for i := len(cleanup) - 1; i >= 0; i-- {
			cleanup[i]()
		}
	}()

	var drafts customer.DraftStore
	switch cfg.DraftBackend {
	case backendRedis:
		var rcfg redis.Config
		if err := config.Load(&rcfg); err != nil {
			return err
		}
		client, err := redis.Connect(ctx, rcfg)
		if err != nil {
			return err
		}
		cleanup = append(cleanup, func() { _ = client.Close() })
		checks["redis"] = redis.Healthcheck(client)
		drafts = customer.NewRedisDraftStore(redis.NewStorage(client, "formkit:drafts:"))
	case backendMemory, "":
	default:
		return fmt.Errorf("unknown draft backend %q", cfg.DraftBackend)
	}

	var repo customer.Repository
	switch cfg.CustomerBackend {
	case backendPostgres:
		var pcfg pg.Config
		if err := config.Load(&pcfg); err != nil {
			return err
		}
		pool, err := pg.Connect(ctx, pcfg)
		if err != nil {
			return err
		}
		cleanup = append(cleanup, pool.Close)
		if err := pg.Migrate(ctx, pool, pcfg, customer.Migrations, customer.MigrationsDir, log); err != nil {
			return err
		}
		checks["postgres"] = pg.Healthcheck(pool)
		repo = customer.NewPostgresRepository(pool)
	case backendMemory, "":
	default:
		return fmt.Errorf("unknown customer backend %q", cfg.CustomerBackend)
	}

	svc := customer.NewService(cfg.Customer, translator, drafts, repo, customer.WithLogger(log))

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(
		i18n.WithSupportedLanguages(translator.SupportedLanguages()...),
	)))

	r.Get("/healthz", httpserver.HealthCheckHandler(log, nil))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, checks))

	var api chi.Router = r
	if cfg.RateLimit > 0 {
		limit, err := rateLimiter(cfg, log)
		if err != nil {
			return err
		}
		api = r.With(limit)
	}
	api.Mount("/customers", svc.Handle())

	log.InfoContext(ctx, "starting formkit",
		slog.String("drafts", backendOrMemory(cfg.DraftBackend)),
		slog.String("customers", backendOrMemory(cfg.CustomerBackend)),
		logger.Component("cmd"),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithOnShutdown(svc.Close),
	)
	return srv.Run(ctx, r)
}

// rateLimiter throttles API calls per client IP and answers rejected calls
// with the JSON error envelope.
func rateLimiter(cfg appConfig, log *slog.Logger) (func(http.Handler) http.Handler, error) {
	limiter, err := ratelimit.NewTokenBucket(cfg.RateLimit, time.Second, ratelimit.WithBurst(cfg.RateBurst))
	if err != nil {
		return nil, err
	}
	return ratelimit.Middleware(limiter, ratelimit.ByIP(),
		ratelimit.WithOnLimitReached(func(w http.ResponseWriter, r *http.Request, _ *ratelimit.Result) {
			log.WarnContext(r.Context(), "rate limit reached",
				slog.String("client_ip", clientip.GetIPFromContext(r.Context())),
				logger.Component("ratelimit"),
			)
			_ = handler.JSONError(handler.ErrTooManyRequests).Render(w, r)
		}),
	), nil
}

func backendOrMemory(name string) string {
	if name == "" {
		return backendMemory
	}
	return name
}
