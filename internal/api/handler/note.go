package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/internal/usecases/annotating"
	"github.com/vfg2006/festival-manager-api/pkg/apiErrors"
)

// ListNotes filtra pelo par entity_type/entity_id da query string. Sem
// filtro retorna todas as notas do mural.
func ListNotes(service annotating.NoteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := domain.NoteFilters{
			EntityType: domain.NoteEntityType(r.URL.Query().Get("entity_type")),
			EntityID:   r.URL.Query().Get("entity_id"),
		}

		writeJSON(w, http.StatusOK, service.ListNotes(filters))
	}
}

func CreateNote(service annotating.NoteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req annotating.NoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		note, err := service.CreateNote(&req)
		if err != nil {
			if errors.Is(err, annotating.ErrInvalidNote) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
			return
		}

		writeJSON(w, http.StatusCreated, note)
	}
}
