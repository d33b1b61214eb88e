package recommend

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/festival-manager-api/infrastructure/integrator/recommend/recommendclient"
	"github.com/vfg2006/festival-manager-api/internal/config"
	"github.com/vfg2006/festival-manager-api/internal/domain"
)

type RecommendIntegrator interface {
	GetRecommendationsByEvent(ctx context.Context, eventID string) ([]*domain.Recommendation, error)
}

type RecommendService struct {
	cfg    *config.Config
	Client recommendclient.Client
}

func New(cfg *config.Config, client recommendclient.Client) RecommendIntegrator {
	return &RecommendService{
		cfg:    cfg,
		Client: client,
	}
}

// GetRecommendationsByEvent consulta o serviço externo e converte a
// resposta para o domínio. Recomendações novas entram como pendentes.
func (s *RecommendService) GetRecommendationsByEvent(ctx context.Context, eventID string) ([]*domain.Recommendation, error) {
	resp, err := s.Client.GetRecommendations(ctx, recommendclient.RecommendationParams{
		EventID: eventID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao consultar recomendações do evento %s", eventID)
	}

	now := time.Now()
	recommendations := make([]*domain.Recommendation, 0, len(resp.Recommendations))

	for _, item := range resp.Recommendations {
		recommendations = append(recommendations, &domain.Recommendation{
			ID:          item.ID,
			EventID:     eventID,
			Title:       item.Title,
			Description: item.Description,
			Category:    item.Category,
			Status:      domain.RecommendationStatusPendiente,
			FetchedAt:   now,
		})
	}

	return recommendations, nil
}
