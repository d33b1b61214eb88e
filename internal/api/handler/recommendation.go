package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/festival-manager-api/internal/usecases/recommending"
	"github.com/vfg2006/festival-manager-api/pkg/apiErrors"
)

func writeRecommendingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, recommending.ErrInvalidStatus):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, recommending.ErrRecommendationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Recomendação não encontrada", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o serviço de recomendações", nil)
	}
}

// ListEventRecommendations lista as recomendações do evento. Na primeira
// consulta o integrador externo é acionado para popular a base.
func ListEventRecommendations(service recommending.RecommendationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recommendations, err := service.ListByEvent(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeRecommendingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, recommendations)
	}
}

// RefreshEventRecommendations força nova consulta ao integrador
func RefreshEventRecommendations(service recommending.RecommendationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recommendations, err := service.Refresh(r.Context(), pathParam(r, "id"))
		if err != nil {
			writeRecommendingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, recommendations)
	}
}

type recommendationStatusRequest struct {
	Status string `json:"status"`
}

func SetRecommendationStatus(service recommending.RecommendationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recommendationStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.SetStatus(pathParam(r, "id"), req.Status); err != nil {
			writeRecommendingError(w, err)
			return
		}

		writeJSON(w, http.StatusNoContent, nil)
	}
}

// GetRecommendationStatusMap devolve o mapa id->status usado pelo painel
// para marcar recomendações já tratadas.
func GetRecommendationStatusMap(service recommending.RecommendationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statusMap, err := service.StatusMap()
		if err != nil {
			writeRecommendingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusMap)
	}
}
