package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/inventory-intelligence-api/internal/api/handler/router"
	"github.com/vfg2006/inventory-intelligence-api/internal/usecases/advising"
	"github.com/vfg2006/inventory-intelligence-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck(dependencies map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(dependencies),
		},
	}
}

func Intelligence(service advising.Advisor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/stores/:id/intelligence",
			Method:  http.MethodGet,
			Handler: GetStoreIntelligence(service),
		},
		{
			Path:        "/v1/intelligence/compute",
			Method:      http.MethodPost,
			Handler:     ComputeIntelligence(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.JSONBody()},
		},
		{
			Path:        "/v1/stores/:id/products/:product_id/price",
			Method:      http.MethodPut,
			Handler:     ApplyPriceSuggestion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.JSONBody()},
		},
		{
			Path:        "/v1/stores/:id/products/:product_id/category",
			Method:      http.MethodPut,
			Handler:     ApplyCategorySuggestion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.JSONBody()},
		},
	}
}

func Cache(source CacheStatsSource) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cache/stats",
			Method:  http.MethodGet,
			Handler: GetCacheStats(source),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/:type/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
