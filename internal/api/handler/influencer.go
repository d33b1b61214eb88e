package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/internal/usecases/influencing"
	"github.com/vfg2006/festival-manager-api/pkg/apiErrors"
)

func writeInfluencingError(w http.ResponseWriter, err error, subResource bool) {
	var validationErr *influencing.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, validationErr.Error(), validationErr.Fields)
		return
	}

	switch {
	case errors.Is(err, influencing.ErrInfluencerNotFound):
		if subResource {
			apiErrors.WriteError(w, apiErrors.ErrParentNotFound, "Influencer não encontrado", nil)
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Influencer não encontrado", nil)

	case errors.Is(err, influencing.ErrCampaignNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Campanha não encontrada", nil)

	case errors.Is(err, influencing.ErrCampaignItemNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Item da campanha não encontrado", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}

// campaignItemKind resolve o tipo de item a partir do parâmetro de rota.
// As campanhas carregam duas coleções distintas (posts e administrativo).
func campaignItemKind(w http.ResponseWriter, r *http.Request) (domain.CampaignItemKind, bool) {
	kind := domain.CampaignItemKind(pathParam(r, "kind"))
	if kind != domain.CampaignItemKindPost && kind != domain.CampaignItemKindAdmin {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de item inválido: use post ou admin", nil)
		return "", false
	}

	return kind, true
}

func ListInfluencers(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := domain.InfluencerFilters{
			Search:   r.URL.Query().Get("search"),
			Status:   r.URL.Query().Get("status"),
			Platform: r.URL.Query().Get("platform"),
		}

		writeJSON(w, http.StatusOK, service.ListInfluencers(filters))
	}
}

func GetInfluencer(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		influencer, err := service.GetInfluencer(pathParam(r, "id"))
		if err != nil {
			writeInfluencingError(w, err, false)
			return
		}

		writeJSON(w, http.StatusOK, influencer)
	}
}

func CreateInfluencer(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req influencing.InfluencerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		influencer, err := service.CreateInfluencer(&req)
		if err != nil {
			writeInfluencingError(w, err, false)
			return
		}

		writeJSON(w, http.StatusCreated, influencer)
	}
}

func UpdateInfluencer(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req influencing.InfluencerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		influencer, err := service.UpdateInfluencer(pathParam(r, "id"), &req)
		if err != nil {
			writeInfluencingError(w, err, false)
			return
		}

		writeJSON(w, http.StatusOK, influencer)
	}
}

func DeleteInfluencer(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireConfirmation(w, r) {
			return
		}

		if err := service.DeleteInfluencer(pathParam(r, "id")); err != nil {
			writeInfluencingError(w, err, false)
			return
		}

		writeJSON(w, http.StatusNoContent, nil)
	}
}

func GetInfluencerCompliance(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Compliance(pathParam(r, "id"))
		if err != nil {
			writeInfluencingError(w, err, false)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func AddInfluencerCampaign(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req influencing.CampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		campaign, err := service.AddCampaign(pathParam(r, "id"), &req)
		if err != nil {
			writeInfluencingError(w, err, true)
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	}
}

func UpdateInfluencerCampaign(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req influencing.CampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		campaign, err := service.UpdateCampaign(pathParam(r, "id"), pathParam(r, "campaign_id"), &req)
		if err != nil {
			writeInfluencingError(w, err, true)
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func DeleteInfluencerCampaign(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireConfirmation(w, r) {
			return
		}

		if err := service.DeleteCampaign(pathParam(r, "id"), pathParam(r, "campaign_id")); err != nil {
			writeInfluencingError(w, err, true)
			return
		}

		writeJSON(w, http.StatusNoContent, nil)
	}
}

func AddCampaignItem(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := campaignItemKind(w, r)
		if !ok {
			return
		}

		var req influencing.CampaignItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		item, err := service.AddCampaignItem(pathParam(r, "id"), pathParam(r, "campaign_id"), kind, &req)
		if err != nil {
			writeInfluencingError(w, err, true)
			return
		}

		writeJSON(w, http.StatusCreated, item)
	}
}

func UpdateCampaignItem(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := campaignItemKind(w, r)
		if !ok {
			return
		}

		var req influencing.CampaignItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		item, err := service.UpdateCampaignItem(
			pathParam(r, "id"),
			pathParam(r, "campaign_id"),
			pathParam(r, "item_id"),
			kind,
			&req,
		)
		if err != nil {
			writeInfluencingError(w, err, true)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

type campaignItemStatusRequest struct {
	Status string `json:"status"`
}

func SetCampaignItemStatus(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := campaignItemKind(w, r)
		if !ok {
			return
		}

		var req campaignItemStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		item, err := service.SetCampaignItemStatus(
			pathParam(r, "id"),
			pathParam(r, "campaign_id"),
			pathParam(r, "item_id"),
			kind,
			domain.CampaignItemStatus(req.Status),
		)
		if err != nil {
			writeInfluencingError(w, err, true)
			return
		}

		writeJSON(w, http.StatusOK, item)
	}
}

func DeleteCampaignItem(service influencing.InfluencerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := campaignItemKind(w, r)
		if !ok {
			return
		}

		if !requireConfirmation(w, r) {
			return
		}

		err := service.DeleteCampaignItem(
			pathParam(r, "id"),
			pathParam(r, "campaign_id"),
			pathParam(r, "item_id"),
			kind,
		)
		if err != nil {
			writeInfluencingError(w, err, true)
			return
		}

		writeJSON(w, http.StatusNoContent, nil)
	}
}
