package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/festival-manager-api/infrastructure/repository"
	"github.com/vfg2006/festival-manager-api/pkg/apiErrors"
)

// ListComplianceSnapshots devolve o snapshot mais recente de cada
// patrocinador e influencer, gravado pela cron noturna. É a fonte do
// histórico de KPIs do painel.
func ListComplianceSnapshots(repo repository.ComplianceSnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshots, err := repo.ListLatestSnapshots()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar snapshots de compliance", nil)
			return
		}

		writeJSON(w, http.StatusOK, snapshots)
	}
}
