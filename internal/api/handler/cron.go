package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/inventory-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-intelligence-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeStockAlerts = "stock-alerts"
	CronJobTypeAll         = "all"
)

// CronJob é uma rotina agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices associa cada tipo de cron job ao seu serviço
type CronJobServices map[string]CronJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for jobType := range s {
		types = append(types, jobType)
	}
	sort.Strings(types)
	return types
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		logger := log.ForContext(r.Context()).WithField("job", cronType)

		started := map[string]bool{}
		switch cronType {
		case CronJobTypeAll:
			for _, jobType := range services.types() {
				if job := services[jobType]; job != nil {
					started[jobType] = job.TriggerManualSync()
				}
			}

		default:
			job, exists := services[cronType]
			if !exists {
				accepted := append(services.types(), CronJobTypeAll)
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: "+strings.Join(accepted, ", "), nil)
				return
			}
			if job == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Serviço de cron job não disponível", nil)
				return
			}
			started[cronType] = job.TriggerManualSync()
		}

		logger.Info("Execução manual de cron job solicitada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	})
}

// GetCronStatus retorna o status de uma cron job, ou de todas quando o tipo é "all"
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		if cronType != CronJobTypeAll {
			job, exists := services[cronType]
			if !exists || job == nil {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cron job não encontrada", nil)
				return
			}
			writeJSON(w, r, http.StatusOK, job.GetStatus())
			return
		}

		status := make(map[string]any, len(services))
		for jobType, job := range services {
			if job == nil {
				continue
			}
			status[jobType] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
