package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/festival-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/festival-manager-api/internal/domain"
)

const (
	teamMembersTable   = "team_members tm"
	festivalRolesTable = "festival_roles"
)

// ErrMemberNotFound sinaliza update sem linha afetada
var ErrMemberNotFound = errors.New("membro da equipe não encontrado")

type TeamRepository interface {
	ListMembers() ([]*domain.TeamMember, error)
	GetMemberByEmail(email string) (*domain.TeamMember, error)
	CreateMember(member *domain.TeamMember) error
	UpdateMember(member *domain.UpdateTeamMemberRequest) error
	ListRoles() ([]*domain.FestivalRole, error)
}

type teamRepository struct {
	conn *postgres.Connection
}

func NewTeamRepository(conn *postgres.Connection) TeamRepository {
	return &teamRepository{
		conn: conn,
	}
}

func (r *teamRepository) ListMembers() ([]*domain.TeamMember, error) {
	membersSQL, membersArgs, err := squirrel.
		Select("tm.id, tm.name, tm.email, tm.role_id, fr.name, tm.status, tm.invited_at, tm.updated_at").
		From(teamMembersTable).
		Join("festival_roles fr ON tm.role_id = fr.id").
		OrderBy("tm.invited_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(membersSQL, membersArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.TeamMember, 0)

	for rows.Next() {
		member := &domain.TeamMember{}
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Email,
			&member.RoleID,
			&member.RoleName,
			&member.Status,
			&member.InvitedAt,
			&member.UpdatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os membros: %w", err)
	}

	return members, nil
}

func (r *teamRepository) GetMemberByEmail(email string) (*domain.TeamMember, error) {
	memberSQL, memberArgs, err := squirrel.
		Select("tm.id, tm.name, tm.email, tm.role_id, tm.status, tm.invited_at, tm.updated_at").
		From(teamMembersTable).
		Where(squirrel.Eq{"tm.email": email}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	member := &domain.TeamMember{}
	if err := r.conn.QueryRow(memberSQL, memberArgs...).Scan(
		&member.ID,
		&member.Name,
		&member.Email,
		&member.RoleID,
		&member.Status,
		&member.InvitedAt,
		&member.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return member, nil
}

func (r *teamRepository) CreateMember(member *domain.TeamMember) error {
	memberSQL, memberArgs, err := squirrel.
		Insert("team_members").
		Columns("id", "name", "email", "role_id", "status", "invited_at").
		Values(
			member.ID,
			member.Name,
			member.Email,
			member.RoleID,
			member.Status,
			member.InvitedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(memberSQL, memberArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *teamRepository) UpdateMember(member *domain.UpdateTeamMemberRequest) error {
	if member.ID == "" {
		return fmt.Errorf("ID is required")
	}

	queryBuilder := squirrel.
		Update("team_members").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": member.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if member.RoleID != nil {
		queryBuilder = queryBuilder.Set("role_id", *member.RoleID)
	}

	if member.Status != nil {
		queryBuilder = queryBuilder.Set("status", *member.Status)
	}

	memberSQL, memberArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(memberSQL, memberArgs...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}

func (r *teamRepository) ListRoles() ([]*domain.FestivalRole, error) {
	rolesSQL, rolesArgs, err := squirrel.
		Select("id, name, description").
		From(festivalRolesTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(rolesSQL, rolesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	roles := make([]*domain.FestivalRole, 0)

	for rows.Next() {
		role := &domain.FestivalRole{}
		if err := rows.Scan(&role.ID, &role.Name, &role.Description); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os roles: %w", err)
	}

	return roles, nil
}
