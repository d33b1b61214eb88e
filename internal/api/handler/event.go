package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/festival-manager-api/internal/usecases/eventing"
	"github.com/vfg2006/festival-manager-api/pkg/apiErrors"
)

func writeEventingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, eventing.ErrEventNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Evento não encontrado", nil)

	case errors.Is(err, eventing.ErrInvalidEvent):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, eventing.ErrInvalidImport):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar os dados de eventos", nil)
	}
}

func ListEvents(service eventing.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := service.ListEvents()
		if err != nil {
			writeEventingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, events)
	}
}

func GetEvent(service eventing.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := service.GetEvent(pathParam(r, "id"))
		if err != nil {
			writeEventingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, event)
	}
}

func CreateEvent(service eventing.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req eventing.EventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		event, err := service.CreateEvent(&req)
		if err != nil {
			writeEventingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, event)
	}
}

// ImportTickets registra um lote imutável de vendas para o evento
func ImportTickets(service eventing.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req eventing.TicketImportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		batch, err := service.ImportTickets(pathParam(r, "id"), &req)
		if err != nil {
			writeEventingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, batch)
	}
}

func GetTicketStats(service eventing.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.TicketStats(pathParam(r, "id"))
		if err != nil {
			writeEventingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

func ListTicketImports(service eventing.EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imports, err := service.ListImports(pathParam(r, "id"))
		if err != nil {
			writeEventingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, imports)
	}
}
