package sponsoring

import (
	"github.com/vfg2006/festival-manager-api/internal/domain"
)

// Compliance calcula o relatório de compliance do sponsor sobre suas
// coleções de checklist (entregáveis, ativações e publicações).
// Derivado a cada consulta; nunca armazenado na entidade.
func (s *Service) Compliance(sponsorID string) (*domain.ComplianceReport, error) {
	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return nil, ErrSponsorNotFound
	}

	return BuildComplianceReport(sponsor), nil
}

// BuildComplianceReport é a função pura de compliance de um sponsor,
// também usada pelo scheduler de snapshots
func BuildComplianceReport(sponsor *domain.Sponsor) *domain.ComplianceReport {
	deliverablesDone := 0
	for _, d := range sponsor.Deliverables {
		if d.Status == domain.DeliverableStatusEntregado {
			deliverablesDone++
		}
	}

	activationsDone := 0
	for _, a := range sponsor.Activations {
		if a.Status == domain.ActivationStatusRealizada {
			activationsDone++
		}
	}

	publicationsDone := 0
	for _, p := range sponsor.Publications {
		if p.Status == domain.PublicationStatusPublicada {
			publicationsDone++
		}
	}

	breakdown := []domain.ChecklistProgress{
		{
			Name:      "deliverables",
			Completed: deliverablesDone,
			Total:     len(sponsor.Deliverables),
			Percent:   domain.CompliancePercent(deliverablesDone, len(sponsor.Deliverables)),
		},
		{
			Name:      "activations",
			Completed: activationsDone,
			Total:     len(sponsor.Activations),
			Percent:   domain.CompliancePercent(activationsDone, len(sponsor.Activations)),
		},
		{
			Name:      "publications",
			Completed: publicationsDone,
			Total:     len(sponsor.Publications),
			Percent:   domain.CompliancePercent(publicationsDone, len(sponsor.Publications)),
		},
	}

	completed := deliverablesDone + activationsDone + publicationsDone
	total := len(sponsor.Deliverables) + len(sponsor.Activations) + len(sponsor.Publications)
	percent := domain.CompliancePercent(completed, total)

	hasSigned := false
	for _, agreement := range sponsor.Agreements {
		if agreement.Status.IsSigned() {
			hasSigned = true
			break
		}
	}

	return &domain.ComplianceReport{
		EntityType:         "sponsor",
		EntityID:           sponsor.ID,
		EntityName:         sponsor.Name,
		Completed:          completed,
		Total:              total,
		Percent:            percent,
		HasSignedAgreement: hasSigned,
		Health:             domain.ClassifyHealth(percent, total, len(sponsor.Agreements) > 0, hasSigned),
		Breakdown:          breakdown,
	}
}
