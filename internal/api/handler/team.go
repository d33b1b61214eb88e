package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/internal/usecases/teaming"
	"github.com/vfg2006/festival-manager-api/pkg/apiErrors"
)

func writeTeamingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, teaming.ErrInvalidInvite):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, teaming.ErrEmailAlreadyInUse):
		apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, err.Error(), nil)

	case errors.Is(err, teaming.ErrMemberNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Membro não encontrado", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar os dados da equipe", nil)
	}
}

func ListTeamMembers(service teaming.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := service.ListMembers()
		if err != nil {
			writeTeamingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, members)
	}
}

func InviteTeamMember(service teaming.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.InviteTeamMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		member, err := service.InviteMember(&req)
		if err != nil {
			writeTeamingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, member)
	}
}

func UpdateTeamMember(service teaming.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateTeamMemberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// O identificador vem da rota, nunca do corpo
		req.ID = pathParam(r, "id")

		if err := service.UpdateMember(&req); err != nil {
			writeTeamingError(w, err)
			return
		}

		writeJSON(w, http.StatusNoContent, nil)
	}
}

func ListFestivalRoles(service teaming.TeamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roles, err := service.ListRoles()
		if err != nil {
			writeTeamingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, roles)
	}
}
