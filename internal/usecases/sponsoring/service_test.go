package sponsoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/festival-manager-api/infrastructure/inmemory"
	"github.com/vfg2006/festival-manager-api/internal/domain"
)

func newTestService() SponsorService {
	counter := 0
	ids := func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}

	return NewService(inmemory.NewSponsorStore(nil), ids)
}

func stringPtr(s string) *string {
	return &s
}

func TestCreateSponsor(t *testing.T) {
	service := newTestService()

	sponsor, err := service.CreateSponsor(&SponsorRequest{
		Name:                "Cervecería del Sur",
		Category:            "bebidas",
		AgreementType:       "patrocinio principal",
		InternalResponsible: "Lucía",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, sponsor.ID)
	assert.Equal(t, "Cervecería del Sur", sponsor.Name)
	assert.Equal(t, domain.SponsorStatusPendiente, sponsor.Status)
	assert.Empty(t, sponsor.Agreements)
	assert.Empty(t, sponsor.Deliverables)
}

func TestCreateSponsorValidation(t *testing.T) {
	service := newTestService()

	tests := []struct {
		name    string
		request *SponsorRequest
		field   string
	}{
		{
			name:    "Nome vazio",
			request: &SponsorRequest{Category: "bebidas"},
			field:   "name",
		},
		{
			name:    "Status fora do enum",
			request: &SponsorRequest{Name: "Marca X", Status: stringPtr("activo")},
			field:   "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateSponsor(tt.request)
			require.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Equal(t, tt.field, validationErr.Fields[0].Field)
		})
	}
}

func TestListSponsorsFilters(t *testing.T) {
	service := newTestService()

	_, err := service.CreateSponsor(&SponsorRequest{Name: "Red Bull", Status: stringPtr("en_curso")})
	require.NoError(t, err)
	_, err = service.CreateSponsor(&SponsorRequest{Name: "Banco Central", Status: stringPtr("pendiente")})
	require.NoError(t, err)

	all := service.ListSponsors(domain.SponsorFilters{})
	assert.Len(t, all, 2)

	byStatus := service.ListSponsors(domain.SponsorFilters{Status: "en_curso"})
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Red Bull", byStatus[0].Name)

	bySearch := service.ListSponsors(domain.SponsorFilters{Search: "banco"})
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Banco Central", bySearch[0].Name)

	none := service.ListSponsors(domain.SponsorFilters{Search: "inexistente"})
	assert.Empty(t, none)
}

func TestUpdateSponsorPreservesCollections(t *testing.T) {
	service := newTestService()

	sponsor, err := service.CreateSponsor(&SponsorRequest{Name: "Marca"})
	require.NoError(t, err)

	_, err = service.AddDeliverable(sponsor.ID, &DeliverableRequest{Description: "Logo no palco"})
	require.NoError(t, err)

	updated, err := service.UpdateSponsor(sponsor.ID, &SponsorRequest{Name: "Marca Renovada"})
	require.NoError(t, err)

	assert.Equal(t, "Marca Renovada", updated.Name)
	assert.Len(t, updated.Deliverables, 1)
}

func TestDeleteSponsor(t *testing.T) {
	service := newTestService()

	sponsor, err := service.CreateSponsor(&SponsorRequest{Name: "Marca"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteSponsor(sponsor.ID))

	_, err = service.GetSponsor(sponsor.ID)
	assert.ErrorIs(t, err, ErrSponsorNotFound)

	assert.ErrorIs(t, service.DeleteSponsor("nao-existe"), ErrSponsorNotFound)
}

func TestCycleDeliverableStatus(t *testing.T) {
	service := newTestService()

	sponsor, err := service.CreateSponsor(&SponsorRequest{Name: "Marca"})
	require.NoError(t, err)

	deliverable, err := service.AddDeliverable(sponsor.ID, &DeliverableRequest{Description: "Ativação no estande"})
	require.NoError(t, err)
	assert.Equal(t, domain.DeliverableStatusPendiente, deliverable.Status)

	// Ciclo completo: pendiente -> en_proceso -> entregado -> pendiente
	deliverable, err = service.CycleDeliverableStatus(sponsor.ID, deliverable.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeliverableStatusEnProceso, deliverable.Status)

	deliverable, err = service.CycleDeliverableStatus(sponsor.ID, deliverable.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeliverableStatusEntregado, deliverable.Status)

	deliverable, err = service.CycleDeliverableStatus(sponsor.ID, deliverable.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DeliverableStatusPendiente, deliverable.Status)
}

func TestSetDeliverableStatus(t *testing.T) {
	service := newTestService()

	sponsor, err := service.CreateSponsor(&SponsorRequest{Name: "Marca"})
	require.NoError(t, err)

	deliverable, err := service.AddDeliverable(sponsor.ID, &DeliverableRequest{Description: "Post patrocinado"})
	require.NoError(t, err)

	deliverable, err = service.SetDeliverableStatus(sponsor.ID, deliverable.ID, domain.DeliverableStatusEntregado)
	require.NoError(t, err)
	assert.Equal(t, domain.DeliverableStatusEntregado, deliverable.Status)

	_, err = service.SetDeliverableStatus(sponsor.ID, deliverable.ID, "inexistente")
	require.Error(t, err)

	_, err = service.SetDeliverableStatus(sponsor.ID, "nao-existe", domain.DeliverableStatusPendiente)
	assert.ErrorIs(t, err, ErrSubResourceNotFound)
}

func TestSponsorCompliance(t *testing.T) {
	service := newTestService()

	sponsor, err := service.CreateSponsor(&SponsorRequest{Name: "Red Bull"})
	require.NoError(t, err)

	_, err = service.AddAgreement(sponsor.ID, &AgreementRequest{
		Description: "Patrocínio máster",
		Amount:      250000,
		Status:      stringPtr("firmado"),
	})
	require.NoError(t, err)

	first, err := service.AddDeliverable(sponsor.ID, &DeliverableRequest{Description: "Logo no palco"})
	require.NoError(t, err)
	_, err = service.AddDeliverable(sponsor.ID, &DeliverableRequest{Description: "Stand de ativação"})
	require.NoError(t, err)

	_, err = service.SetDeliverableStatus(sponsor.ID, first.ID, domain.DeliverableStatusEntregado)
	require.NoError(t, err)

	report, err := service.Compliance(sponsor.ID)
	require.NoError(t, err)

	assert.Equal(t, "sponsor", report.EntityType)
	assert.Equal(t, "Red Bull", report.EntityName)
	assert.Equal(t, 1, report.Completed)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 50, report.Percent)
	assert.True(t, report.HasSignedAgreement)
	assert.Equal(t, domain.HealthWarning, report.Health)
	require.Len(t, report.Breakdown, 3)
	assert.Equal(t, "deliverables", report.Breakdown[0].Name)
	assert.Equal(t, 50, report.Breakdown[0].Percent)
}

func TestSponsorComplianceUnsignedAgreementIsRisk(t *testing.T) {
	service := newTestService()

	sponsor, err := service.CreateSponsor(&SponsorRequest{Name: "Marca"})
	require.NoError(t, err)

	_, err = service.AddAgreement(sponsor.ID, &AgreementRequest{
		Description: "Proposta inicial",
		Status:      stringPtr("propuesto"),
	})
	require.NoError(t, err)

	report, err := service.Compliance(sponsor.ID)
	require.NoError(t, err)

	assert.False(t, report.HasSignedAgreement)
	assert.Equal(t, domain.HealthRisk, report.Health)
}

func TestSegmentation(t *testing.T) {
	service := newTestService()

	sponsor, err := service.CreateSponsor(&SponsorRequest{Name: "Marca"})
	require.NoError(t, err)

	segmentation, err := service.SetSegmentation(sponsor.ID, &SegmentationRequest{
		Audience:  "jóvenes urbanos",
		AgeRange:  "18-35",
		Interests: "música, deportes",
		Regions:   "Montevideo",
	})
	require.NoError(t, err)
	assert.Equal(t, "18-35", segmentation.AgeRange)

	stored, err := service.GetSponsor(sponsor.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Segmentation)
	assert.Equal(t, "música, deportes", stored.Segmentation.Interests)
}
