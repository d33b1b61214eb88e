package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/festival-manager-api/infrastructure/repository"
	"github.com/vfg2006/festival-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/festival-manager-api/internal/api/handler/router"
	"github.com/vfg2006/festival-manager-api/internal/usecases/teaming"
	"github.com/vfg2006/festival-manager-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestUpdateUnknownTeamMemberReturnsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTeam := mocks.NewMockTeamRepository(ctrl)
	service := teaming.NewService(mockTeam, nil)

	apiRouter := router.New(router.WithRoutes(Team(service)...))
	server := withClaims(apiRouter, middleware.RoleAdmin)

	mockTeam.EXPECT().
		UpdateMember(gomock.Any()).
		Return(repository.ErrMemberNotFound)

	body := bytes.NewBufferString(`{"status":"activo"}`)
	req := httptest.NewRequest(http.MethodPut, "/v1/team/members/no-existe", body)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RES_001")
}
