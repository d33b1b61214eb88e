package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/internal/usecases/sponsoring"
	"github.com/vfg2006/festival-manager-api/pkg/apiErrors"
)

// writeSponsoringError converte erros do caso de uso de sponsors para a
// resposta padronizada. Em operações de sub-recurso o sponsor ausente é
// reportado como pai não encontrado.
func writeSponsoringError(w http.ResponseWriter, err error, subResource bool) {
	var validationErr *sponsoring.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, validationErr.Error(), validationErr.Fields)
		return
	}

	switch {
	case errors.Is(err, sponsoring.ErrSponsorNotFound):
		if subResource {
			apiErrors.WriteError(w, apiErrors.ErrParentNotFound, "Sponsor não encontrado", nil)
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Sponsor não encontrado", nil)

	case errors.Is(err, sponsoring.ErrSubResourceNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Sub-recurso não encontrado", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}

func ListSponsors(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := domain.SponsorFilters{
			Search: r.URL.Query().Get("search"),
			Status: r.URL.Query().Get("status"),
		}

		writeJSON(w, http.StatusOK, service.ListSponsors(filters))
	}
}

func GetSponsor(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sponsor, err := service.GetSponsor(pathParam(r, "id"))
		if err != nil {
			writeSponsoringError(w, err, false)
			return
		}

		writeJSON(w, http.StatusOK, sponsor)
	}
}

func CreateSponsor(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sponsoring.SponsorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		sponsor, err := service.CreateSponsor(&req)
		if err != nil {
			writeSponsoringError(w, err, false)
			return
		}

		writeJSON(w, http.StatusCreated, sponsor)
	}
}

func UpdateSponsor(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sponsoring.SponsorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		sponsor, err := service.UpdateSponsor(pathParam(r, "id"), &req)
		if err != nil {
			writeSponsoringError(w, err, false)
			return
		}

		writeJSON(w, http.StatusOK, sponsor)
	}
}

// DeleteSponsor exclui o sponsor e todas as suas coleções. Exige
// confirmação explícita via query string.
func DeleteSponsor(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireConfirmation(w, r) {
			return
		}

		if err := service.DeleteSponsor(pathParam(r, "id")); err != nil {
			writeSponsoringError(w, err, false)
			return
		}

		writeJSON(w, http.StatusNoContent, nil)
	}
}

func GetSponsorCompliance(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.Compliance(pathParam(r, "id"))
		if err != nil {
			writeSponsoringError(w, err, false)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func SetSponsorSegmentation(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sponsoring.SegmentationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		segmentation, err := service.SetSegmentation(pathParam(r, "id"), &req)
		if err != nil {
			writeSponsoringError(w, err, false)
			return
		}

		writeJSON(w, http.StatusOK, segmentation)
	}
}

func AddSponsorAgreement(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sponsoring.AgreementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		agreement, err := service.AddAgreement(pathParam(r, "id"), &req)
		if err != nil {
			writeSponsoringError(w, err, true)
			return
		}

		writeJSON(w, http.StatusCreated, agreement)
	}
}

func UpdateSponsorAgreement(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sponsoring.AgreementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		agreement, err := service.UpdateAgreement(pathParam(r, "id"), pathParam(r, "agreement_id"), &req)
		if err != nil {
			writeSponsoringError(w, err, true)
			return
		}

		writeJSON(w, http.StatusOK, agreement)
	}
}

func DeleteSponsorAgreement(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireConfirmation(w, r) {
			return
		}

		if err := service.DeleteAgreement(pathParam(r, "id"), pathParam(r, "agreement_id")); err != nil {
			writeSponsoringError(w, err, true)
			return
		}

		writeJSON(w, http.StatusNoContent, nil)
	}
}

func AddSponsorDeliverable(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sponsoring.DeliverableRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		deliverable, err := service.AddDeliverable(pathParam(r, "id"), &req)
		if err != nil {
			writeSponsoringError(w, err, true)
			return
		}

		writeJSON(w, http.StatusCreated, deliverable)
	}
}

func UpdateSponsorDeliverable(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sponsoring.DeliverableRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		deliverable, err := service.UpdateDeliverable(pathParam(r, "id"), pathParam(r, "deliverable_id"), &req)
		if err != nil {
			writeSponsoringError(w, err, true)
			return
		}

		writeJSON(w, http.StatusOK, deliverable)
	}
}

type deliverableStatusRequest struct {
	Status string `json:"status"`
}

// SetSponsorDeliverableStatus atribui o status escolhido no dropdown
func SetSponsorDeliverableStatus(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deliverableStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		deliverable, err := service.SetDeliverableStatus(
			pathParam(r, "id"),
			pathParam(r, "deliverable_id"),
			domain.DeliverableStatus(req.Status),
		)
		if err != nil {
			writeSponsoringError(w, err, true)
			return
		}

		writeJSON(w, http.StatusOK, deliverable)
	}
}

// CycleSponsorDeliverableStatus avança o status pelo ciclo fixo
func CycleSponsorDeliverableStatus(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deliverable, err := service.CycleDeliverableStatus(pathParam(r, "id"), pathParam(r, "deliverable_id"))
		if err != nil {
			writeSponsoringError(w, err, true)
			return
		}

		writeJSON(w, http.StatusOK, deliverable)
	}
}

func DeleteSponsorDeliverable(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireConfirmation(w, r) {
			return
		}

		if err := service.DeleteDeliverable(pathParam(r, "id"), pathParam(r, "deliverable_id")); err != nil {
			writeSponsoringError(w, err, true)
			return
		}

		writeJSON(w, http.StatusNoContent, nil)
	}
}

func AddSponsorActivation(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sponsoring.ActivationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		activation, err := service.AddActivation(pathParam(r, "id"), &req)
		if err != nil {
			writeSponsoringError(w, err, true)
			return
		}

		writeJSON(w, http.StatusCreated, activation)
	}
}

func UpdateSponsorActivation(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sponsoring.ActivationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		activation, err := service.UpdateActivation(pathParam(r, "id"), pathParam(r, "activation_id"), &req)
		if err != nil {
			writeSponsoringError(w, err, true)
			return
		}

		writeJSON(w, http.StatusOK, activation)
	}
}

func DeleteSponsorActivation(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireConfirmation(w, r) {
			return
		}

		if err := service.DeleteActivation(pathParam(r, "id"), pathParam(r, "activation_id")); err != nil {
			writeSponsoringError(w, err, true)
			return
		}

		writeJSON(w, http.StatusNoContent, nil)
	}
}

func AddSponsorPublication(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sponsoring.PublicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		publication, err := service.AddPublication(pathParam(r, "id"), &req)
		if err != nil {
			writeSponsoringError(w, err, true)
			return
		}

		writeJSON(w, http.StatusCreated, publication)
	}
}

func UpdateSponsorPublication(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sponsoring.PublicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		publication, err := service.UpdatePublication(pathParam(r, "id"), pathParam(r, "publication_id"), &req)
		if err != nil {
			writeSponsoringError(w, err, true)
			return
		}

		writeJSON(w, http.StatusOK, publication)
	}
}

func DeleteSponsorPublication(service sponsoring.SponsorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireConfirmation(w, r) {
			return
		}

		if err := service.DeletePublication(pathParam(r, "id"), pathParam(r, "publication_id")); err != nil {
			writeSponsoringError(w, err, true)
			return
		}

		writeJSON(w, http.StatusNoContent, nil)
	}
}
