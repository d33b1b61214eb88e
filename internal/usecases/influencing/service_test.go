package influencing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/festival-manager-api/infrastructure/inmemory"
	"github.com/vfg2006/festival-manager-api/internal/domain"
)

func newTestService() InfluencerService {
	counter := 0
	ids := func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}

	return NewService(inmemory.NewInfluencerStore(nil), ids)
}

func stringPtr(s string) *string {
	return &s
}

func TestCreateInfluencerValidation(t *testing.T) {
	service := newTestService()

	_, err := service.CreateInfluencer(&InfluencerRequest{Followers: -1})
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, validationErr.Fields, 2)
}

func TestInfluencerFilters(t *testing.T) {
	service := newTestService()

	_, err := service.CreateInfluencer(&InfluencerRequest{
		Name:     "Sofía Rivas",
		Handle:   "@sofiarivas",
		Platform: "instagram",
		Status:   stringPtr("activo"),
	})
	require.NoError(t, err)
	_, err = service.CreateInfluencer(&InfluencerRequest{
		Name:     "DJ Matías",
		Handle:   "@djmatias",
		Platform: "tiktok",
	})
	require.NoError(t, err)

	byPlatform := service.ListInfluencers(domain.InfluencerFilters{Platform: "TikTok"})
	require.Len(t, byPlatform, 1)
	assert.Equal(t, "DJ Matías", byPlatform[0].Name)

	byHandle := service.ListInfluencers(domain.InfluencerFilters{Search: "sofiarivas"})
	require.Len(t, byHandle, 1)
	assert.Equal(t, "Sofía Rivas", byHandle[0].Name)

	all := service.ListInfluencers(domain.InfluencerFilters{Status: "all"})
	assert.Len(t, all, 2)
}

func TestCampaignLifecycle(t *testing.T) {
	service := newTestService()

	influencer, err := service.CreateInfluencer(&InfluencerRequest{Name: "Sofía"})
	require.NoError(t, err)

	campaign, err := service.AddCampaign(influencer.ID, &CampaignRequest{
		Name:   "Lanzamiento line-up",
		Budget: 5000,
	})
	require.NoError(t, err)
	assert.Empty(t, campaign.PostDeliverables)
	assert.Empty(t, campaign.AdminDeliverables)

	updated, err := service.UpdateCampaign(influencer.ID, campaign.ID, &CampaignRequest{
		Name:   "Lanzamiento line-up 2026",
		Budget: 7500,
	})
	require.NoError(t, err)
	assert.Equal(t, 7500.0, updated.Budget)

	require.NoError(t, service.DeleteCampaign(influencer.ID, campaign.ID))
	assert.ErrorIs(t, service.DeleteCampaign(influencer.ID, campaign.ID), ErrCampaignNotFound)
}

func TestCampaignItemsByKind(t *testing.T) {
	service := newTestService()

	influencer, err := service.CreateInfluencer(&InfluencerRequest{Name: "Sofía"})
	require.NoError(t, err)

	campaign, err := service.AddCampaign(influencer.ID, &CampaignRequest{Name: "Campanha"})
	require.NoError(t, err)

	post, err := service.AddCampaignItem(influencer.ID, campaign.ID, domain.CampaignItemKindPost, &CampaignItemRequest{
		Description: "Reel anunciando el festival",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignItemStatusPendiente, post.Status)

	_, err = service.AddCampaignItem(influencer.ID, campaign.ID, domain.CampaignItemKindAdmin, &CampaignItemRequest{
		Description: "Contrato firmado",
	})
	require.NoError(t, err)

	// Cada tipo vai para a sua coleção
	stored, err := service.GetInfluencer(influencer.ID)
	require.NoError(t, err)
	require.Len(t, stored.Campaigns, 1)
	assert.Len(t, stored.Campaigns[0].PostDeliverables, 1)
	assert.Len(t, stored.Campaigns[0].AdminDeliverables, 1)

	item, err := service.SetCampaignItemStatus(influencer.ID, campaign.ID, post.ID, domain.CampaignItemKindPost, domain.CampaignItemStatusCompletado)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignItemStatusCompletado, item.Status)

	// O item de post não existe na coleção administrativa
	_, err = service.SetCampaignItemStatus(influencer.ID, campaign.ID, post.ID, domain.CampaignItemKindAdmin, domain.CampaignItemStatusCompletado)
	assert.ErrorIs(t, err, ErrCampaignItemNotFound)
}

func TestInfluencerCompliance(t *testing.T) {
	service := newTestService()

	influencer, err := service.CreateInfluencer(&InfluencerRequest{Name: "Sofía"})
	require.NoError(t, err)

	first, err := service.AddCampaign(influencer.ID, &CampaignRequest{Name: "Campanha A"})
	require.NoError(t, err)
	second, err := service.AddCampaign(influencer.ID, &CampaignRequest{Name: "Campanha B"})
	require.NoError(t, err)

	done, err := service.AddCampaignItem(influencer.ID, first.ID, domain.CampaignItemKindPost, &CampaignItemRequest{Description: "Reel"})
	require.NoError(t, err)
	_, err = service.AddCampaignItem(influencer.ID, first.ID, domain.CampaignItemKindAdmin, &CampaignItemRequest{Description: "Factura"})
	require.NoError(t, err)
	_, err = service.AddCampaignItem(influencer.ID, second.ID, domain.CampaignItemKindPost, &CampaignItemRequest{Description: "Story"})
	require.NoError(t, err)

	_, err = service.SetCampaignItemStatus(influencer.ID, first.ID, done.ID, domain.CampaignItemKindPost, domain.CampaignItemStatusCompletado)
	require.NoError(t, err)

	report, err := service.Compliance(influencer.ID)
	require.NoError(t, err)

	// 1 de 3 concluído agregando as duas campanhas
	assert.Equal(t, "influencer", report.EntityType)
	assert.Equal(t, 1, report.Completed)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 33, report.Percent)
	assert.Equal(t, domain.HealthWarning, report.Health)
	require.Len(t, report.Breakdown, 2)
	assert.Equal(t, "post_deliverables", report.Breakdown[0].Name)
	assert.Equal(t, 1, report.Breakdown[0].Completed)
	assert.Equal(t, 2, report.Breakdown[0].Total)
}

func TestInfluencerComplianceWithoutCampaignsIsOK(t *testing.T) {
	service := newTestService()

	influencer, err := service.CreateInfluencer(&InfluencerRequest{Name: "Sofía"})
	require.NoError(t, err)

	report, err := service.Compliance(influencer.ID)
	require.NoError(t, err)

	assert.Equal(t, 100, report.Percent)
	assert.Equal(t, domain.HealthOK, report.Health)
}
