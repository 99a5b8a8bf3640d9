package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/vfg2006/inventory-intelligence-api/pkg/log"
)

const healthcheckTimeout = 2 * time.Second

// Pinger é uma dependência verificada pelo healthcheck
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde 200 quando todas as dependências respondem ao ping e 503 caso contrário
func HealthcheckHandler(dependencies map[string]Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
		defer cancel()

		names := make([]string, 0, len(dependencies))
		for name := range dependencies {
			names = append(names, name)
		}
		sort.Strings(names)

		status := http.StatusOK
		checks := make(map[string]string, len(dependencies))
		for _, name := range names {
			if err := dependencies[name].Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warnf("Healthcheck: %s indisponível", name)
				checks[name] = "unavailable"
				status = http.StatusServiceUnavailable
				continue
			}
			checks[name] = "ok"
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}

		writeJSON(w, r, status, map[string]any{
			"status": overall,
			"time":   time.Now().UTC().Format(time.RFC3339),
			"checks": checks,
		})
	})
}
