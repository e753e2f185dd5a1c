package httpserver

import (
	"context"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

type healthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthCheckHandler serves liveness and readiness. Without checks it answers
// 200 {"status":"alive"}. Otherwise every check runs; the handler answers 200
// {"status":"ready"} when all pass and 503 {"status":"not_ready"} listing the
// failing dependencies otherwise.
func HealthCheckHandler(log *slog.Logger, checks map[string]HealthCheck) http.HandlerFunc {
	log = logger.OrDiscard(log)
	names := slices.Sorted(maps.Keys(checks))

	return func(w http.ResponseWriter, r *http.Request) {
		report := healthReport{Status: "alive"}
		status := http.StatusOK

		if len(names) > 0 {
			report.Status = "ready"
			report.Checks = make(map[string]string, len(names))
			for _, name := range names {
				if err := checks[name](r.Context()); err != nil {
					log.ErrorContext(r.Context(), "readiness check failed", slog.String("check", name), logger.Error(err))
					report.Checks[name] = "failed"
					report.Status = "not_ready"
					status = http.StatusServiceUnavailable
					continue
				}
				report.Checks[name] = "ok"
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(report)
	}
}
