package handler

import (
	"net/http"

	"github.com/vfg2006/inventory-intelligence-api/infrastructure/cache"
)

// CacheStatsSource expõe as estatísticas do cache de relatórios
type CacheStatsSource interface {
	Stats() cache.StatsSnapshot
}

// GetCacheStats retorna acertos, falhas e taxa de acerto do cache de relatórios
func GetCacheStats(source CacheStatsSource) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, source.Stats())
	})
}
