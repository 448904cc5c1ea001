package handler

import (
	"encoding/json"
	"net/http"

	"github.com/betenlace/partners-cpa-api/internal/domain"
	"github.com/betenlace/partners-cpa-api/internal/scheduler"
	"github.com/betenlace/partners-cpa-api/pkg/apiErrors"
	"github.com/betenlace/partners-cpa-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeFxSnapshot     = "fx-snapshot"
	CronJobTypeClickRetention = "click-retention"
	CronJobTypeAll            = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	FxSnapshotSyncService *scheduler.FxSnapshotSyncService
	ClickRetentionService *scheduler.ClickRetentionService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem executar cron jobs
		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeFxSnapshot:
			if services.FxSnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshots de câmbio não disponível", nil)
				return
			}
			services.FxSnapshotSyncService.TriggerManualSync()

		case CronJobTypeClickRetention:
			if services.ClickRetentionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retenção de cliques não disponível", nil)
				return
			}
			services.ClickRetentionService.TriggerManualSync()

		case CronJobTypeAll:
			if services.FxSnapshotSyncService != nil {
				services.FxSnapshotSyncService.TriggerManualSync()
			}
			if services.ClickRetentionService != nil {
				services.ClickRetentionService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: fx-snapshot, click-retention, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := middleware.UserFromContext(r.Context())
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"fx-snapshot":     services.FxSnapshotSyncService.GetStatus(),
			"click-retention": services.ClickRetentionService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
