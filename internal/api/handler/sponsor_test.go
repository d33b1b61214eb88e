package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/festival-manager-api/infrastructure/inmemory"
	"github.com/vfg2006/festival-manager-api/internal/api/handler/router"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/internal/usecases/sponsoring"
	"github.com/vfg2006/festival-manager-api/pkg/middleware"
)

// withClaims injeta as claims no contexto, como faz o middleware de
// autenticação depois de validar o token
func withClaims(next http.Handler, roleID int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := &domain.Claims{UserID: 1, UserName: "Tester", UserRoleID: roleID}
		ctx := context.WithValue(r.Context(), middleware.ContextKeyUser, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newSponsorServer(roleID int) http.Handler {
	counter := 0
	ids := func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}

	service := sponsoring.NewService(inmemory.NewSponsorStore(nil), ids)
	apiRouter := router.New(router.WithRoutes(Sponsors(service)...))

	return withClaims(apiRouter, roleID)
}

func TestSponsorLifecycleOverHTTP(t *testing.T) {
	server := newSponsorServer(middleware.RoleAdmin)

	body := bytes.NewBufferString(`{"name":"Red Bull","category":"bebidas","agreement_type":"patrocinio"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/sponsors", body)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Sponsor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, domain.SponsorStatusPendiente, created.Status)

	req = httptest.NewRequest(http.MethodGet, "/v1/sponsors/id-1", nil)
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/sponsors/id-1/compliance", nil)
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var report domain.ComplianceReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 100, report.Percent)
}

func TestCreateSponsorInvalidPayload(t *testing.T) {
	server := newSponsorServer(middleware.RoleAdmin)

	body := bytes.NewBufferString(`{"category":"bebidas"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/sponsors", body)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_002")
}

func TestDeleteSponsorRequiresConfirmation(t *testing.T) {
	server := newSponsorServer(middleware.RoleAdmin)

	body := bytes.NewBufferString(`{"name":"Red Bull"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/sponsors", body)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Sem confirm=true a exclusão é recusada
	req = httptest.NewRequest(http.MethodDelete, "/v1/sponsors/id-1", nil)
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_004")

	req = httptest.NewRequest(http.MethodDelete, "/v1/sponsors/id-1?confirm=true", nil)
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/sponsors/id-1", nil)
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RES_001")
}

func TestSponsorRoutesEnforceRoles(t *testing.T) {
	// Visualizador pode listar mas não criar nem excluir
	server := newSponsorServer(middleware.RoleViewer)

	req := httptest.NewRequest(http.MethodGet, "/v1/sponsors", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := bytes.NewBufferString(`{"name":"Red Bull"}`)
	req = httptest.NewRequest(http.MethodPost, "/v1/sponsors", body)
	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_006")
}

func TestSubResourceParentNotFound(t *testing.T) {
	server := newSponsorServer(middleware.RoleAdmin)

	body := bytes.NewBufferString(`{"description":"Activación en escenario"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/sponsors/no-existe/agreements", body)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RES_002")
}
