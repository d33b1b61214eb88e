package domain

import (
	"strings"
	"time"
)

type InfluencerStatus string

const (
	InfluencerStatusPendiente  InfluencerStatus = "pendiente"
	InfluencerStatusActivo     InfluencerStatus = "activo"
	InfluencerStatusFinalizado InfluencerStatus = "finalizado"
)

type CampaignItemStatus string

const (
	CampaignItemStatusPendiente  CampaignItemStatus = "pendiente"
	CampaignItemStatusEnProceso  CampaignItemStatus = "en_proceso"
	CampaignItemStatusCompletado CampaignItemStatus = "completado"
)

// Influencer representa um perfil de marketing de influência contratado
// para o festival, com suas campanhas
type Influencer struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Handle    string           `json:"handle"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Platform  string           `json:"platform"`
	Category  string           `json:"category"`
	Followers int              `json:"followers"`
	Status    InfluencerStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	Campaigns []*Campaign `json:"campaigns"`
}

// Campaign agrupa os entregáveis de conteúdo e administrativos de uma
// ação contratada com o influencer
type Campaign struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Budget    float64    `json:"budget"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	PostDeliverables  []*CampaignItem `json:"post_deliverables"`
	AdminDeliverables []*CampaignItem `json:"admin_deliverables"`
}

// CampaignItemKind distingue as duas coleções de itens de uma campanha
type CampaignItemKind string

const (
	CampaignItemKindPost  CampaignItemKind = "post"
	CampaignItemKindAdmin CampaignItemKind = "admin"
)

type CampaignItem struct {
	ID          string             `json:"id"`
	Description string             `json:"description"`
	DueDate     *time.Time         `json:"due_date,omitempty"`
	Status      CampaignItemStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type InfluencerFilters struct {
	Search   string
	Status   string
	Platform string
}

func (f InfluencerFilters) Match(i *Influencer) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(i.Name), term) &&
			!strings.Contains(strings.ToLower(i.Handle), term) {
			return false
		}
	}

	if f.Status != "" && f.Status != "all" && string(i.Status) != f.Status {
		return false
	}

	if f.Platform != "" && f.Platform != "all" && !strings.EqualFold(i.Platform, f.Platform) {
		return false
	}

	return true
}

func (i *Influencer) Clone() *Influencer {
	if i == nil {
		return nil
	}

	clone := *i
	clone.Campaigns = make([]*Campaign, len(i.Campaigns))
	for idx, c := range i.Campaigns {
		clone.Campaigns[idx] = c.Clone()
	}

	return &clone
}

func (c *Campaign) Clone() *Campaign {
	if c == nil {
		return nil
	}

	clone := *c

	clone.PostDeliverables = make([]*CampaignItem, len(c.PostDeliverables))
	for i, item := range c.PostDeliverables {
		copied := *item
		clone.PostDeliverables[i] = &copied
	}

	clone.AdminDeliverables = make([]*CampaignItem, len(c.AdminDeliverables))
	for i, item := range c.AdminDeliverables {
		copied := *item
		clone.AdminDeliverables[i] = &copied
	}

	return &clone
}
