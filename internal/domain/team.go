package domain

import "time"

type TeamMemberStatus string

const (
	TeamMemberStatusInvitado TeamMemberStatus = "invitado"
	TeamMemberStatusActivo   TeamMemberStatus = "activo"
	TeamMemberStatusInactivo TeamMemberStatus = "inactivo"
)

// FestivalRole é um papel operacional dentro da organização do festival
// (produção, marketing, patrocínios...), distinto do role de acesso à API
type FestivalRole struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TeamMember é uma pessoa da equipe do festival, convidada por email
type TeamMember struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	RoleID    string           `json:"role_id"`
	RoleName  string           `json:"role_name,omitempty"`
	Status    TeamMemberStatus `json:"status"`
	InvitedAt time.Time        `json:"invited_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// InviteTeamMemberRequest é o corpo do convite de um novo membro
type InviteTeamMemberRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	RoleID string `json:"role_id"`
}

// UpdateTeamMemberRequest atualiza papel e status de um membro existente
type UpdateTeamMemberRequest struct {
	ID     string  `json:"id"`
	RoleID *string `json:"role_id,omitempty"`
	Status *string `json:"status,omitempty"`
}
