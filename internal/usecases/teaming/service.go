package teaming

import (
	"errors"
	"strings"
	"time"

	"github.com/vfg2006/festival-manager-api/infrastructure/repository"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/pkg/utils"
)

var (
	ErrInvalidInvite     = errors.New("dados obrigatórios ausentes ou inválidos")
	ErrEmailAlreadyInUse = errors.New("já existe um membro com este email")
	ErrMemberNotFound    = errors.New("membro não encontrado")
)

// TeamService expõe as operações da equipe do festival: convite,
// atualização de papel e status, e listagem de papéis operacionais
type TeamService interface {
	ListMembers() ([]*domain.TeamMember, error)
	InviteMember(req *domain.InviteTeamMemberRequest) (*domain.TeamMember, error)
	UpdateMember(req *domain.UpdateTeamMemberRequest) error
	ListRoles() ([]*domain.FestivalRole, error)
}

type Service struct {
	team repository.TeamRepository
	ids  utils.IDGenerator
}

func NewService(team repository.TeamRepository, ids utils.IDGenerator) TeamService {
	if ids == nil {
		ids = utils.GenerateID
	}

	return &Service{
		team: team,
		ids:  ids,
	}
}

func (s *Service) ListMembers() ([]*domain.TeamMember, error) {
	return s.team.ListMembers()
}

// InviteMember registra um novo membro com status invitado. O email é
// normalizado e tem que ser único na equipe.
func (s *Service) InviteMember(req *domain.InviteTeamMemberRequest) (*domain.TeamMember, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || email == "" || req.RoleID == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidInvite
	}

	existing, err := s.team.GetMemberByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyInUse
	}

	member := &domain.TeamMember{
		ID:        s.ids(),
		Name:      req.Name,
		Email:     email,
		RoleID:    req.RoleID,
		Status:    domain.TeamMemberStatusInvitado,
		InvitedAt: time.Now(),
	}

	if err := s.team.CreateMember(member); err != nil {
		return nil, err
	}

	return member, nil
}

func (s *Service) UpdateMember(req *domain.UpdateTeamMemberRequest) error {
	if req.ID == "" {
		return ErrInvalidInvite
	}

	if req.Status != nil {
		switch domain.TeamMemberStatus(*req.Status) {
		case domain.TeamMemberStatusInvitado, domain.TeamMemberStatusActivo, domain.TeamMemberStatusInactivo:
		default:
			return ErrInvalidInvite
		}
	}

	if err := s.team.UpdateMember(req); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return ErrMemberNotFound
		}
		return err
	}

	return nil
}

func (s *Service) ListRoles() ([]*domain.FestivalRole, error) {
	return s.team.ListRoles()
}
