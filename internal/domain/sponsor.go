package domain

import (
	"strings"
	"time"
)

type SponsorStatus string

const (
	SponsorStatusPendiente SponsorStatus = "pendiente"
	SponsorStatusEnCurso   SponsorStatus = "en_curso"
	SponsorStatusCerrado   SponsorStatus = "cerrado"
)

type AgreementStatus string

const (
	AgreementStatusPropuesto AgreementStatus = "propuesto"
	AgreementStatusAceptado  AgreementStatus = "aceptado"
	AgreementStatusFirmado   AgreementStatus = "firmado"
	AgreementStatusRechazado AgreementStatus = "rechazado"
)

// IsSigned indica se o acordo conta como assinado para fins de compliance
func (s AgreementStatus) IsSigned() bool {
	return s == AgreementStatusAceptado || s == AgreementStatusFirmado
}

type DeliverableStatus string

const (
	DeliverableStatusPendiente DeliverableStatus = "pendiente"
	DeliverableStatusEnProceso DeliverableStatus = "en_proceso"
	DeliverableStatusEntregado DeliverableStatus = "entregado"
)

// NextDeliverableStatus implementa o ciclo fixo de estados acionado por um
// clique na interface. O caminho alternativo (atribuição direta via dropdown)
// continua existindo e não passa por aqui.
func NextDeliverableStatus(s DeliverableStatus) DeliverableStatus {
	switch s {
	case DeliverableStatusPendiente:
		return DeliverableStatusEnProceso
	case DeliverableStatusEnProceso:
		return DeliverableStatusEntregado
	default:
		return DeliverableStatusPendiente
	}
}

type ActivationStatus string

const (
	ActivationStatusPendiente  ActivationStatus = "pendiente"
	ActivationStatusConfirmada ActivationStatus = "confirmada"
	ActivationStatusRealizada  ActivationStatus = "realizada"
)

type PublicationStatus string

const (
	PublicationStatusBorrador   PublicationStatus = "borrador"
	PublicationStatusProgramada PublicationStatus = "programada"
	PublicationStatusPublicada  PublicationStatus = "publicada"
)

// Sponsor é um parceiro comercial do festival, com suas coleções de
// acordos, entregáveis, ativações e publicações
type Sponsor struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Category            string        `json:"category"`
	Status              SponsorStatus `json:"status"`
	AgreementType       string        `json:"agreement_type"`
	InternalResponsible string        `json:"internal_responsible"`
	Notes               string        `json:"notes"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`

	Agreements   []*Agreement   `json:"agreements"`
	Deliverables []*Deliverable `json:"deliverables"`
	Activations  []*Activation  `json:"activations"`
	Publications []*Publication `json:"publications"`
	Segmentation *Segmentation  `json:"segmentation,omitempty"`
}

type Agreement struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Amount      float64         `json:"amount"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
	Status      AgreementStatus `json:"status"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type Deliverable struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	DueDate     *time.Time        `json:"due_date,omitempty"`
	Responsible string            `json:"responsible"`
	Status      DeliverableStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type Activation struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	Date        *time.Time       `json:"date,omitempty"`
	Status      ActivationStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type Publication struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Channel     string            `json:"channel"`
	ScheduledAt *time.Time        `json:"scheduled_at,omitempty"`
	Status      PublicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Segmentation é o registro opcional de segmentação de público do sponsor
type Segmentation struct {
	Audience  string    `json:"audience"`
	AgeRange  string    `json:"age_range"`
	Interests string    `json:"interests"`
	Regions   string    `json:"regions"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SponsorFilters é a conjunção de predicados aplicada na listagem.
// Status vazio ou "all" significa sem filtro de status.
type SponsorFilters struct {
	Search string
	Status string
}

// Match avalia os predicados ativos sobre um sponsor. Função pura:
// a listagem filtrada contém exatamente os sponsors para os quais
// Match retorna true.
func (f SponsorFilters) Match(s *Sponsor) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(s.Name), term) &&
			!strings.Contains(strings.ToLower(s.Category), term) {
			return false
		}
	}

	if f.Status != "" && f.Status != "all" && string(s.Status) != f.Status {
		return false
	}

	return true
}

// Clone devolve uma cópia profunda do sponsor, para que snapshots
// retornados pelo store não compartilhem memória com o estado interno
func (s *Sponsor) Clone() *Sponsor {
	if s == nil {
		return nil
	}

	clone := *s

	clone.Agreements = make([]*Agreement, len(s.Agreements))
	for i, a := range s.Agreements {
		item := *a
		clone.Agreements[i] = &item
	}

	clone.Deliverables = make([]*Deliverable, len(s.Deliverables))
	for i, d := range s.Deliverables {
		item := *d
		clone.Deliverables[i] = &item
	}

	clone.Activations = make([]*Activation, len(s.Activations))
	for i, a := range s.Activations {
		item := *a
		clone.Activations[i] = &item
	}

	clone.Publications = make([]*Publication, len(s.Publications))
	for i, p := range s.Publications {
		item := *p
		clone.Publications[i] = &item
	}

	if s.Segmentation != nil {
		seg := *s.Segmentation
		clone.Segmentation = &seg
	}

	return &clone
}
