package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/internal/scheduler"
	"github.com/vfg2006/festival-manager-api/pkg/apiErrors"
	"github.com/vfg2006/festival-manager-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCompliance      = "compliance"
	CronJobTypeRecommendations = "recommendations"
	CronJobTypeAll             = "all"
)

// CronJobServices contém os serviços de cron disponíveis para execução manual
type CronJobServices struct {
	ComplianceSnapshotSyncService *scheduler.ComplianceSnapshotSyncService
	RecommendationSyncService     *scheduler.RecommendationSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Apenas administradores podem disparar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := pathParam(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeCompliance:
			if services.ComplianceSnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de snapshots de compliance não disponível", nil)
				return
			}
			services.ComplianceSnapshotSyncService.TriggerManualSync()

		case CronJobTypeRecommendations:
			if services.RecommendationSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de recomendações não disponível", nil)
				return
			}
			services.RecommendationSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.ComplianceSnapshotSyncService != nil {
				services.ComplianceSnapshotSyncService.TriggerManualSync()
			}
			if services.RecommendationSyncService != nil {
				services.RecommendationSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: compliance, recommendations, all", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs registradas
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem consultar cron jobs", nil)
			return
		}

		status := map[string]any{}

		if services.ComplianceSnapshotSyncService != nil {
			status[CronJobTypeCompliance] = services.ComplianceSnapshotSyncService.GetStatus()
		}

		if services.RecommendationSyncService != nil {
			status[CronJobTypeRecommendations] = services.RecommendationSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
