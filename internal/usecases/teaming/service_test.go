package teaming

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/festival-manager-api/infrastructure/repository"
	"github.com/vfg2006/festival-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(team *mocks.MockTeamRepository) TeamService {
	counter := 0
	ids := func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}

	return NewService(team, ids)
}

func TestInviteMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTeam := mocks.NewMockTeamRepository(ctrl)
	service := newTestService(mockTeam)

	mockTeam.EXPECT().
		GetMemberByEmail("lucia@festival.app").
		Return(nil, nil)

	mockTeam.EXPECT().
		CreateMember(gomock.Any()).
		DoAndReturn(func(member *domain.TeamMember) error {
			assert.Equal(t, "id-1", member.ID)
			assert.Equal(t, domain.TeamMemberStatusInvitado, member.Status)
			assert.False(t, member.InvitedAt.IsZero())
			return nil
		})

	member, err := service.InviteMember(&domain.InviteTeamMemberRequest{
		Name:   "Lucía",
		Email:  "  Lucia@Festival.app ",
		RoleID: "comercial",
	})
	require.NoError(t, err)

	// O email entra normalizado, sem maiúsculas nem espaços
	assert.Equal(t, "lucia@festival.app", member.Email)
}

func TestInviteMemberValidation(t *testing.T) {
	testCases := []struct {
		name string
		req  *domain.InviteTeamMemberRequest
	}{
		{
			name: "sem nome",
			req:  &domain.InviteTeamMemberRequest{Email: "a@b.c", RoleID: "comercial"},
		},
		{
			name: "sem email",
			req:  &domain.InviteTeamMemberRequest{Name: "Lucía", RoleID: "comercial"},
		},
		{
			name: "email sem arroba",
			req:  &domain.InviteTeamMemberRequest{Name: "Lucía", Email: "lucia.festival.app", RoleID: "comercial"},
		},
		{
			name: "sem papel",
			req:  &domain.InviteTeamMemberRequest{Name: "Lucía", Email: "a@b.c"},
		},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(mocks.NewMockTeamRepository(ctrl))

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.InviteMember(tc.req)
			assert.ErrorIs(t, err, ErrInvalidInvite)
		})
	}
}

func TestInviteMemberDuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTeam := mocks.NewMockTeamRepository(ctrl)
	service := newTestService(mockTeam)

	mockTeam.EXPECT().
		GetMemberByEmail("lucia@festival.app").
		Return(&domain.TeamMember{ID: "m-1", Email: "lucia@festival.app"}, nil)

	_, err := service.InviteMember(&domain.InviteTeamMemberRequest{
		Name:   "Lucía",
		Email:  "lucia@festival.app",
		RoleID: "comercial",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyInUse)
}

func TestUpdateMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTeam := mocks.NewMockTeamRepository(ctrl)
	service := newTestService(mockTeam)

	status := string(domain.TeamMemberStatusActivo)
	req := &domain.UpdateTeamMemberRequest{ID: "m-1", Status: &status}

	mockTeam.EXPECT().UpdateMember(req).Return(nil)

	require.NoError(t, service.UpdateMember(req))
}

func TestUpdateMemberNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTeam := mocks.NewMockTeamRepository(ctrl)
	service := newTestService(mockTeam)

	mockTeam.EXPECT().
		UpdateMember(gomock.Any()).
		Return(repository.ErrMemberNotFound)

	err := service.UpdateMember(&domain.UpdateTeamMemberRequest{ID: "no-existe"})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestUpdateMemberInvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestService(mocks.NewMockTeamRepository(ctrl))

	status := "suspendido"
	err := service.UpdateMember(&domain.UpdateTeamMemberRequest{ID: "m-1", Status: &status})
	assert.ErrorIs(t, err, ErrInvalidInvite)

	err = service.UpdateMember(&domain.UpdateTeamMemberRequest{})
	assert.ErrorIs(t, err, ErrInvalidInvite)
}
