package influencing

import (
	"github.com/vfg2006/festival-manager-api/internal/domain"
)

// Compliance calcula o relatório de compliance do influencer sobre os
// itens de todas as suas campanhas (conteúdo e administrativos)
func (s *Service) Compliance(influencerID string) (*domain.ComplianceReport, error) {
	influencer := s.store.Get(influencerID)
	if influencer == nil {
		return nil, ErrInfluencerNotFound
	}

	return BuildComplianceReport(influencer), nil
}

// BuildComplianceReport é a função pura de compliance de um influencer,
// também usada pelo scheduler de snapshots
func BuildComplianceReport(influencer *domain.Influencer) *domain.ComplianceReport {
	postsDone, postsTotal := 0, 0
	adminDone, adminTotal := 0, 0

	for _, campaign := range influencer.Campaigns {
		for _, item := range campaign.PostDeliverables {
			postsTotal++
			if item.Status == domain.CampaignItemStatusCompletado {
				postsDone++
			}
		}
		for _, item := range campaign.AdminDeliverables {
			adminTotal++
			if item.Status == domain.CampaignItemStatusCompletado {
				adminDone++
			}
		}
	}

	breakdown := []domain.ChecklistProgress{
		{
			Name:      "post_deliverables",
			Completed: postsDone,
			Total:     postsTotal,
			Percent:   domain.CompliancePercent(postsDone, postsTotal),
		},
		{
			Name:      "admin_deliverables",
			Completed: adminDone,
			Total:     adminTotal,
			Percent:   domain.CompliancePercent(adminDone, adminTotal),
		},
	}

	completed := postsDone + adminDone
	total := postsTotal + adminTotal
	percent := domain.CompliancePercent(completed, total)

	// Influencers não têm acordos formais: a saúde depende só do avanço
	return &domain.ComplianceReport{
		EntityType: "influencer",
		EntityID:   influencer.ID,
		EntityName: influencer.Name,
		Completed:  completed,
		Total:      total,
		Percent:    percent,
		Health:     domain.ClassifyHealth(percent, total, false, false),
		Breakdown:  breakdown,
	}
}
