// Package cache contém os caches de relatórios de inteligência: Redis e memória local.
// Ambos guardam bytes já serializados, com TTL por entrada.
package cache

import "sync/atomic"

// Stats acumula contadores de uso do cache
type Stats struct {
	hits    atomic.Uint64
	misses  atomic.Uint64
	sets    atomic.Uint64
	deletes atomic.Uint64
	errors  atomic.Uint64
}

// StatsSnapshot é uma leitura pontual dos contadores
type StatsSnapshot struct {
	Backend   string  `json:"backend"`
	Hits      uint64  `json:"hits"`
	Misses    uint64  `json:"misses"`
	Sets      uint64  `json:"sets"`
	Deletes   uint64  `json:"deletes"`
	Errors    uint64  `json:"errors"`
	HitRate   float64 `json:"hit_rate"`
	TotalGets uint64  `json:"total_gets"`
}

func (s *Stats) snapshot(backend string) StatsSnapshot {
	hits := s.hits.Load()
	misses := s.misses.Load()
	totalGets := hits + misses

	var hitRate float64
	if totalGets > 0 {
		hitRate = float64(hits) / float64(totalGets) * 100
	}

	return StatsSnapshot{
		Backend:   backend,
		Hits:      hits,
		Misses:    misses,
		Sets:      s.sets.Load(),
		Deletes:   s.deletes.Load(),
		Errors:    s.errors.Load(),
		HitRate:   hitRate,
		TotalGets: totalGets,
	}
}
