package influencing

import (
	"time"

	"github.com/vfg2006/festival-manager-api/infrastructure/inmemory"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/pkg/utils"
)

// InfluencerService expõe as operações de influencers, campanhas e itens
// de campanha (entregáveis de conteúdo e administrativos)
type InfluencerService interface {
	ListInfluencers(filters domain.InfluencerFilters) []*domain.Influencer
	GetInfluencer(influencerID string) (*domain.Influencer, error)
	CreateInfluencer(req *InfluencerRequest) (*domain.Influencer, error)
	UpdateInfluencer(influencerID string, req *InfluencerRequest) (*domain.Influencer, error)
	DeleteInfluencer(influencerID string) error

	AddCampaign(influencerID string, req *CampaignRequest) (*domain.Campaign, error)
	UpdateCampaign(influencerID, campaignID string, req *CampaignRequest) (*domain.Campaign, error)
	DeleteCampaign(influencerID, campaignID string) error

	AddCampaignItem(influencerID, campaignID string, kind domain.CampaignItemKind, req *CampaignItemRequest) (*domain.CampaignItem, error)
	UpdateCampaignItem(influencerID, campaignID, itemID string, kind domain.CampaignItemKind, req *CampaignItemRequest) (*domain.CampaignItem, error)
	SetCampaignItemStatus(influencerID, campaignID, itemID string, kind domain.CampaignItemKind, status domain.CampaignItemStatus) (*domain.CampaignItem, error)
	DeleteCampaignItem(influencerID, campaignID, itemID string, kind domain.CampaignItemKind) error

	Compliance(influencerID string) (*domain.ComplianceReport, error)
}

type Service struct {
	store inmemory.InfluencerStore
	ids   utils.IDGenerator
}

func NewService(store inmemory.InfluencerStore, ids utils.IDGenerator) InfluencerService {
	if ids == nil {
		ids = utils.GenerateID
	}

	return &Service{
		store: store,
		ids:   ids,
	}
}

type InfluencerRequest struct {
	Name      string  `json:"name"`
	Handle    string  `json:"handle"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Platform  string  `json:"platform"`
	Category  string  `json:"category"`
	Followers int     `json:"followers"`
	Status    *string `json:"status,omitempty"`
}

func (r *InfluencerRequest) Validate() *ValidationError {
	var fields []FieldError

	if r.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "nome é obrigatório"})
	}

	if r.Followers < 0 {
		fields = append(fields, FieldError{Field: "followers", Message: "seguidores não pode ser negativo"})
	}

	if r.Status != nil {
		switch domain.InfluencerStatus(*r.Status) {
		case domain.InfluencerStatusPendiente, domain.InfluencerStatusActivo, domain.InfluencerStatusFinalizado:
		default:
			fields = append(fields, FieldError{Field: "status", Message: "status inválido"})
		}
	}

	if len(fields) > 0 {
		return newValidationError(fields...)
	}
	return nil
}

func (s *Service) ListInfluencers(filters domain.InfluencerFilters) []*domain.Influencer {
	return s.store.List(filters)
}

func (s *Service) GetInfluencer(influencerID string) (*domain.Influencer, error) {
	influencer := s.store.Get(influencerID)
	if influencer == nil {
		return nil, ErrInfluencerNotFound
	}

	return influencer, nil
}

func (s *Service) CreateInfluencer(req *InfluencerRequest) (*domain.Influencer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	influencer := &domain.Influencer{
		ID:        s.ids(),
		Name:      req.Name,
		Handle:    req.Handle,
		Email:     req.Email,
		Phone:     req.Phone,
		Platform:  req.Platform,
		Category:  req.Category,
		Followers: req.Followers,
		Status:    domain.InfluencerStatusPendiente,
		CreatedAt: now,
		UpdatedAt: now,
		Campaigns: []*domain.Campaign{},
	}

	if req.Status != nil {
		influencer.Status = domain.InfluencerStatus(*req.Status)
	}

	s.store.Create(influencer)
	return influencer, nil
}

func (s *Service) UpdateInfluencer(influencerID string, req *InfluencerRequest) (*domain.Influencer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	influencer := s.store.Get(influencerID)
	if influencer == nil {
		return nil, ErrInfluencerNotFound
	}

	influencer.Name = req.Name
	influencer.Handle = req.Handle
	influencer.Email = req.Email
	influencer.Phone = req.Phone
	influencer.Platform = req.Platform
	influencer.Category = req.Category
	influencer.Followers = req.Followers
	if req.Status != nil {
		influencer.Status = domain.InfluencerStatus(*req.Status)
	}
	influencer.UpdatedAt = time.Now()

	if !s.store.Update(influencer) {
		return nil, ErrInfluencerNotFound
	}

	return influencer, nil
}

// DeleteInfluencer remove o influencer e suas campanhas junto
func (s *Service) DeleteInfluencer(influencerID string) error {
	if !s.store.Delete(influencerID) {
		return ErrInfluencerNotFound
	}

	return nil
}

func (s *Service) saveInfluencer(influencer *domain.Influencer) error {
	influencer.UpdatedAt = time.Now()
	if !s.store.Update(influencer) {
		return ErrInfluencerNotFound
	}
	return nil
}
