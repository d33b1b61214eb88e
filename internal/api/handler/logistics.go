package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/internal/usecases/logistics"
	"github.com/vfg2006/festival-manager-api/pkg/apiErrors"
)

func writeLogisticsError(w http.ResponseWriter, err error, subResource bool) {
	var validationErr *logistics.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, validationErr.Error(), validationErr.Fields)
		return
	}

	switch {
	case errors.Is(err, logistics.ErrArtistNotFound):
		if subResource {
			apiErrors.WriteError(w, apiErrors.ErrParentNotFound, "Artista não encontrado", nil)
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Artista não encontrado", nil)

	case errors.Is(err, logistics.ErrProviderNotFound):
		if subResource {
			apiErrors.WriteError(w, apiErrors.ErrParentNotFound, "Fornecedor não encontrado", nil)
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Fornecedor não encontrado", nil)

	case errors.Is(err, logistics.ErrRecordNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Registro logístico não encontrado", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}

func logisticsKind(w http.ResponseWriter, r *http.Request) (domain.LogisticsKind, bool) {
	kind := pathParam(r, "kind")
	if !domain.ValidLogisticsKind(kind) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de registro inválido: use hotel, flight, transport ou rider", nil)
		return "", false
	}

	return domain.LogisticsKind(kind), true
}

func ListArtists(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := domain.ArtistFilters{
			Search: r.URL.Query().Get("search"),
			Status: r.URL.Query().Get("status"),
		}

		writeJSON(w, http.StatusOK, service.ListArtists(filters))
	}
}

func GetArtist(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artist, err := service.GetArtist(pathParam(r, "id"))
		if err != nil {
			writeLogisticsError(w, err, false)
			return
		}

		writeJSON(w, http.StatusOK, artist)
	}
}

func CreateArtist(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req logistics.ArtistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		artist, err := service.CreateArtist(&req)
		if err != nil {
			writeLogisticsError(w, err, false)
			return
		}

		writeJSON(w, http.StatusCreated, artist)
	}
}

func UpdateArtist(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req logistics.ArtistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		artist, err := service.UpdateArtist(pathParam(r, "id"), &req)
		if err != nil {
			writeLogisticsError(w, err, false)
			return
		}

		writeJSON(w, http.StatusOK, artist)
	}
}

func DeleteArtist(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireConfirmation(w, r) {
			return
		}

		if err := service.DeleteArtist(pathParam(r, "id")); err != nil {
			writeLogisticsError(w, err, false)
			return
		}

		writeJSON(w, http.StatusNoContent, nil)
	}
}

func ListProviders(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := domain.ProviderFilters{
			Search: r.URL.Query().Get("search"),
			Status: r.URL.Query().Get("status"),
		}

		writeJSON(w, http.StatusOK, service.ListProviders(filters))
	}
}

func GetProvider(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider, err := service.GetProvider(pathParam(r, "id"))
		if err != nil {
			writeLogisticsError(w, err, false)
			return
		}

		writeJSON(w, http.StatusOK, provider)
	}
}

func CreateProvider(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req logistics.ProviderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		provider, err := service.CreateProvider(&req)
		if err != nil {
			writeLogisticsError(w, err, false)
			return
		}

		writeJSON(w, http.StatusCreated, provider)
	}
}

func UpdateProvider(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req logistics.ProviderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		provider, err := service.UpdateProvider(pathParam(r, "id"), &req)
		if err != nil {
			writeLogisticsError(w, err, false)
			return
		}

		writeJSON(w, http.StatusOK, provider)
	}
}

func DeleteProvider(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireConfirmation(w, r) {
			return
		}

		if err := service.DeleteProvider(pathParam(r, "id")); err != nil {
			writeLogisticsError(w, err, false)
			return
		}

		writeJSON(w, http.StatusNoContent, nil)
	}
}

// GetLogisticsPendingSummary alimenta o indicador de pendências do painel
func GetLogisticsPendingSummary(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.PendingSummary())
	}
}

type recordStatusRequest struct {
	Status string `json:"status"`
}

func AddArtistRecord(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := logisticsKind(w, r)
		if !ok {
			return
		}

		var req logistics.RecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		record, err := service.AddArtistRecord(pathParam(r, "id"), kind, &req)
		if err != nil {
			writeLogisticsError(w, err, true)
			return
		}

		writeJSON(w, http.StatusCreated, record)
	}
}

func UpdateArtistRecord(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := logisticsKind(w, r)
		if !ok {
			return
		}

		var req logistics.RecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		record, err := service.UpdateArtistRecord(pathParam(r, "id"), pathParam(r, "record_id"), kind, &req)
		if err != nil {
			writeLogisticsError(w, err, true)
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

func SetArtistRecordStatus(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := logisticsKind(w, r)
		if !ok {
			return
		}

		var req recordStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		record, err := service.SetArtistRecordStatus(pathParam(r, "id"), pathParam(r, "record_id"), kind, req.Status)
		if err != nil {
			writeLogisticsError(w, err, true)
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

func DeleteArtistRecord(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := logisticsKind(w, r)
		if !ok {
			return
		}

		if !requireConfirmation(w, r) {
			return
		}

		if err := service.DeleteArtistRecord(pathParam(r, "id"), pathParam(r, "record_id"), kind); err != nil {
			writeLogisticsError(w, err, true)
			return
		}

		writeJSON(w, http.StatusNoContent, nil)
	}
}

func AddProviderRecord(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := logisticsKind(w, r)
		if !ok {
			return
		}

		var req logistics.RecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		record, err := service.AddProviderRecord(pathParam(r, "id"), kind, &req)
		if err != nil {
			writeLogisticsError(w, err, true)
			return
		}

		writeJSON(w, http.StatusCreated, record)
	}
}

func UpdateProviderRecord(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := logisticsKind(w, r)
		if !ok {
			return
		}

		var req logistics.RecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		record, err := service.UpdateProviderRecord(pathParam(r, "id"), pathParam(r, "record_id"), kind, &req)
		if err != nil {
			writeLogisticsError(w, err, true)
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

func SetProviderRecordStatus(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := logisticsKind(w, r)
		if !ok {
			return
		}

		var req recordStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		record, err := service.SetProviderRecordStatus(pathParam(r, "id"), pathParam(r, "record_id"), kind, req.Status)
		if err != nil {
			writeLogisticsError(w, err, true)
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

func DeleteProviderRecord(service logistics.LogisticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, ok := logisticsKind(w, r)
		if !ok {
			return
		}

		if !requireConfirmation(w, r) {
			return
		}

		if err := service.DeleteProviderRecord(pathParam(r, "id"), pathParam(r, "record_id"), kind); err != nil {
			writeLogisticsError(w, err, true)
			return
		}

		writeJSON(w, http.StatusNoContent, nil)
	}
}
