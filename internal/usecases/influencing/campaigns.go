package influencing

import (
	"time"

	"github.com/vfg2006/festival-manager-api/internal/domain"
)

// CampaignRequest é o objeto de valor validado de criação/edição de campanha
type CampaignRequest struct {
	Name      string     `json:"name"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Budget    float64    `json:"budget"`
}

func (r *CampaignRequest) Validate() *ValidationError {
	var fields []FieldError

	if r.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "nome é obrigatório"})
	}

	if r.Budget < 0 {
		fields = append(fields, FieldError{Field: "budget", Message: "orçamento não pode ser negativo"})
	}

	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		fields = append(fields, FieldError{Field: "end_date", Message: "término anterior ao início"})
	}

	if len(fields) > 0 {
		return newValidationError(fields...)
	}
	return nil
}

func (s *Service) AddCampaign(influencerID string, req *CampaignRequest) (*domain.Campaign, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	influencer := s.store.Get(influencerID)
	if influencer == nil {
		return nil, ErrInfluencerNotFound
	}

	now := time.Now()
	campaign := &domain.Campaign{
		ID:                s.ids(),
		Name:              req.Name,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Budget:            req.Budget,
		CreatedAt:         now,
		UpdatedAt:         now,
		PostDeliverables:  []*domain.CampaignItem{},
		AdminDeliverables: []*domain.CampaignItem{},
	}

	influencer.Campaigns = append([]*domain.Campaign{campaign}, influencer.Campaigns...)
	if err := s.saveInfluencer(influencer); err != nil {
		return nil, err
	}

	return campaign, nil
}

func (s *Service) UpdateCampaign(influencerID, campaignID string, req *CampaignRequest) (*domain.Campaign, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	influencer := s.store.Get(influencerID)
	if influencer == nil {
		return nil, ErrInfluencerNotFound
	}

	var updated *domain.Campaign
	for _, campaign := range influencer.Campaigns {
		if campaign.ID == campaignID {
			campaign.Name = req.Name
			campaign.StartDate = req.StartDate
			campaign.EndDate = req.EndDate
			campaign.Budget = req.Budget
			campaign.UpdatedAt = time.Now()
			updated = campaign
			break
		}
	}

	if updated == nil {
		return nil, ErrCampaignNotFound
	}

	if err := s.saveInfluencer(influencer); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteCampaign remove a campanha e seus itens junto
func (s *Service) DeleteCampaign(influencerID, campaignID string) error {
	influencer := s.store.Get(influencerID)
	if influencer == nil {
		return ErrInfluencerNotFound
	}

	remaining := make([]*domain.Campaign, 0, len(influencer.Campaigns))
	found := false
	for _, campaign := range influencer.Campaigns {
		if campaign.ID == campaignID {
			found = true
			continue
		}
		remaining = append(remaining, campaign)
	}

	if !found {
		return ErrCampaignNotFound
	}

	influencer.Campaigns = remaining
	return s.saveInfluencer(influencer)
}

// CampaignItemRequest é o objeto de valor validado de item de campanha,
// comum às coleções de conteúdo e administrativas
type CampaignItemRequest struct {
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

func (r *CampaignItemRequest) Validate() *ValidationError {
	var fields []FieldError

	if r.Description == "" {
		fields = append(fields, FieldError{Field: "description", Message: "descrição é obrigatória"})
	}

	if r.Status != nil && !validCampaignItemStatus(*r.Status) {
		fields = append(fields, FieldError{Field: "status", Message: "status inválido"})
	}

	if len(fields) > 0 {
		return newValidationError(fields...)
	}
	return nil
}

func validCampaignItemStatus(status string) bool {
	switch domain.CampaignItemStatus(status) {
	case domain.CampaignItemStatusPendiente, domain.CampaignItemStatusEnProceso, domain.CampaignItemStatusCompletado:
		return true
	}
	return false
}

// itemCollection resolve a coleção alvo da campanha conforme o tipo do item
func itemCollection(campaign *domain.Campaign, kind domain.CampaignItemKind) []*domain.CampaignItem {
	if kind == domain.CampaignItemKindAdmin {
		return campaign.AdminDeliverables
	}
	return campaign.PostDeliverables
}

func setItemCollection(campaign *domain.Campaign, kind domain.CampaignItemKind, items []*domain.CampaignItem) {
	if kind == domain.CampaignItemKindAdmin {
		campaign.AdminDeliverables = items
		return
	}
	campaign.PostDeliverables = items
}

func (s *Service) findCampaign(influencer *domain.Influencer, campaignID string) *domain.Campaign {
	for _, campaign := range influencer.Campaigns {
		if campaign.ID == campaignID {
			return campaign
		}
	}
	return nil
}

func (s *Service) AddCampaignItem(influencerID, campaignID string, kind domain.CampaignItemKind, req *CampaignItemRequest) (*domain.CampaignItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	influencer := s.store.Get(influencerID)
	if influencer == nil {
		return nil, ErrInfluencerNotFound
	}

	campaign := s.findCampaign(influencer, campaignID)
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	now := time.Now()
	item := &domain.CampaignItem{
		ID:          s.ids(),
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      domain.CampaignItemStatusPendiente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if req.Status != nil {
		item.Status = domain.CampaignItemStatus(*req.Status)
	}

	setItemCollection(campaign, kind, append([]*domain.CampaignItem{item}, itemCollection(campaign, kind)...))
	campaign.UpdatedAt = now

	if err := s.saveInfluencer(influencer); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) UpdateCampaignItem(influencerID, campaignID, itemID string, kind domain.CampaignItemKind, req *CampaignItemRequest) (*domain.CampaignItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.mutateCampaignItem(influencerID, campaignID, itemID, kind, func(item *domain.CampaignItem) {
		item.Description = req.Description
		item.DueDate = req.DueDate
		if req.Status != nil {
			item.Status = domain.CampaignItemStatus(*req.Status)
		}
	})
}

// SetCampaignItemStatus atribui o status diretamente, sem guarda de
// transição, como no dropdown da interface
func (s *Service) SetCampaignItemStatus(influencerID, campaignID, itemID string, kind domain.CampaignItemKind, status domain.CampaignItemStatus) (*domain.CampaignItem, error) {
	if !validCampaignItemStatus(string(status)) {
		return nil, newValidationError(FieldError{Field: "status", Message: "status inválido"})
	}

	return s.mutateCampaignItem(influencerID, campaignID, itemID, kind, func(item *domain.CampaignItem) {
		item.Status = status
	})
}

func (s *Service) mutateCampaignItem(influencerID, campaignID, itemID string, kind domain.CampaignItemKind, mutate func(*domain.CampaignItem)) (*domain.CampaignItem, error) {
	influencer := s.store.Get(influencerID)
	if influencer == nil {
		return nil, ErrInfluencerNotFound
	}

	campaign := s.findCampaign(influencer, campaignID)
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	var mutated *domain.CampaignItem
	for _, item := range itemCollection(campaign, kind) {
		if item.ID == itemID {
			mutate(item)
			item.UpdatedAt = time.Now()
			mutated = item
			break
		}
	}

	if mutated == nil {
		return nil, ErrCampaignItemNotFound
	}

	campaign.UpdatedAt = time.Now()
	if err := s.saveInfluencer(influencer); err != nil {
		return nil, err
	}

	return mutated, nil
}

func (s *Service) DeleteCampaignItem(influencerID, campaignID, itemID string, kind domain.CampaignItemKind) error {
	influencer := s.store.Get(influencerID)
	if influencer == nil {
		return ErrInfluencerNotFound
	}

	campaign := s.findCampaign(influencer, campaignID)
	if campaign == nil {
		return ErrCampaignNotFound
	}

	items := itemCollection(campaign, kind)
	remaining := make([]*domain.CampaignItem, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID == itemID {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}

	if !found {
		return ErrCampaignItemNotFound
	}

	setItemCollection(campaign, kind, remaining)
	campaign.UpdatedAt = time.Now()
	return s.saveInfluencer(influencer)
}
