package recommending

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/festival-manager-api/infrastructure/integrator/recommend"
	"github.com/vfg2006/festival-manager-api/infrastructure/repository"
	"github.com/vfg2006/festival-manager-api/internal/domain"
)

var (
	ErrInvalidStatus          = errors.New("status de recomendação inválido")
	ErrRecommendationNotFound = errors.New("recomendação não encontrada")
)

// RecommendationService expõe a consulta de recomendações comerciais de
// um evento e a marcação de status pelo operador
type RecommendationService interface {
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Recommendation, error)
	SetStatus(recommendationID, status string) error
	StatusMap() (map[string]domain.RecommendationStatus, error)
	Refresh(ctx context.Context, eventID string) ([]*domain.Recommendation, error)
}

type Service struct {
	integrator recommend.RecommendIntegrator
	repo       repository.RecommendationRepository
}

func NewService(integrator recommend.RecommendIntegrator, repo repository.RecommendationRepository) RecommendationService {
	return &Service{
		integrator: integrator,
		repo:       repo,
	}
}

// ListByEvent devolve as recomendações persistidas do evento. Quando
// ainda não há nenhuma, busca no serviço externo antes de responder;
// se a busca externa falhar, a listagem responde vazia em vez de
// propagar o erro. O refresh explícito continua reportando a falha.
func (s *Service) ListByEvent(ctx context.Context, eventID string) ([]*domain.Recommendation, error) {
	recommendations, err := s.repo.ListByEventID(eventID)
	if err != nil {
		return nil, err
	}

	if len(recommendations) > 0 {
		return recommendations, nil
	}

	refreshed, err := s.Refresh(ctx, eventID)
	if err != nil {
		logrus.WithError(err).WithField("event_id", eventID).Warn("Erro ao buscar recomendações externas, respondendo lista vazia")
		return []*domain.Recommendation{}, nil
	}

	return refreshed, nil
}

// Refresh busca as recomendações correntes no serviço externo e grava
// preservando os status já atribuídos
func (s *Service) Refresh(ctx context.Context, eventID string) ([]*domain.Recommendation, error) {
	recommendations, err := s.integrator.GetRecommendationsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveOrUpdate(recommendations); err != nil {
		return nil, err
	}

	return s.repo.ListByEventID(eventID)
}

func (s *Service) SetStatus(recommendationID, status string) error {
	if !domain.ValidRecommendationStatus(status) {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(recommendationID, domain.RecommendationStatus(status)); err != nil {
		return ErrRecommendationNotFound
	}

	return nil
}

func (s *Service) StatusMap() (map[string]domain.RecommendationStatus, error) {
	return s.repo.StatusMap()
}
