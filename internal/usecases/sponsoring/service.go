package sponsoring

import (
	"time"

	"github.com/vfg2006/festival-manager-api/infrastructure/inmemory"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/pkg/utils"
)

// SponsorService expõe as operações de sponsors e de suas coleções de
// acordos, entregáveis, ativações e publicações
type SponsorService interface {
	ListSponsors(filters domain.SponsorFilters) []*domain.Sponsor
	GetSponsor(sponsorID string) (*domain.Sponsor, error)
	CreateSponsor(req *SponsorRequest) (*domain.Sponsor, error)
	UpdateSponsor(sponsorID string, req *SponsorRequest) (*domain.Sponsor, error)
	DeleteSponsor(sponsorID string) error

	AddAgreement(sponsorID string, req *AgreementRequest) (*domain.Agreement, error)
	UpdateAgreement(sponsorID, agreementID string, req *AgreementRequest) (*domain.Agreement, error)
	DeleteAgreement(sponsorID, agreementID string) error

	AddDeliverable(sponsorID string, req *DeliverableRequest) (*domain.Deliverable, error)
	UpdateDeliverable(sponsorID, deliverableID string, req *DeliverableRequest) (*domain.Deliverable, error)
	SetDeliverableStatus(sponsorID, deliverableID string, status domain.DeliverableStatus) (*domain.Deliverable, error)
	CycleDeliverableStatus(sponsorID, deliverableID string) (*domain.Deliverable, error)
	DeleteDeliverable(sponsorID, deliverableID string) error

	AddActivation(sponsorID string, req *ActivationRequest) (*domain.Activation, error)
	UpdateActivation(sponsorID, activationID string, req *ActivationRequest) (*domain.Activation, error)
	DeleteActivation(sponsorID, activationID string) error

	AddPublication(sponsorID string, req *PublicationRequest) (*domain.Publication, error)
	UpdatePublication(sponsorID, publicationID string, req *PublicationRequest) (*domain.Publication, error)
	DeletePublication(sponsorID, publicationID string) error

	SetSegmentation(sponsorID string, req *SegmentationRequest) (*domain.Segmentation, error)

	Compliance(sponsorID string) (*domain.ComplianceReport, error)
}

type Service struct {
	store inmemory.SponsorStore
	ids   utils.IDGenerator
}

func NewService(store inmemory.SponsorStore, ids utils.IDGenerator) SponsorService {
	if ids == nil {
		ids = utils.GenerateID
	}

	return &Service{
		store: store,
		ids:   ids,
	}
}

// SponsorRequest é o objeto de valor validado de criação/edição de sponsor
type SponsorRequest struct {
	Name                string  `json:"name"`
	Category            string  `json:"category"`
	Status              *string `json:"status,omitempty"`
	AgreementType       string  `json:"agreement_type"`
	InternalResponsible string  `json:"internal_responsible"`
	Notes               string  `json:"notes"`
}

func (r *SponsorRequest) Validate() *ValidationError {
	var fields []FieldError

	if r.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "nome é obrigatório"})
	}

	if r.Status != nil {
		switch domain.SponsorStatus(*r.Status) {
		case domain.SponsorStatusPendiente, domain.SponsorStatusEnCurso, domain.SponsorStatusCerrado:
		default:
			fields = append(fields, FieldError{Field: "status", Message: "status inválido"})
		}
	}

	if len(fields) > 0 {
		return newValidationError(fields...)
	}
	return nil
}

func (s *Service) ListSponsors(filters domain.SponsorFilters) []*domain.Sponsor {
	return s.store.List(filters)
}

func (s *Service) GetSponsor(sponsorID string) (*domain.Sponsor, error) {
	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return nil, ErrSponsorNotFound
	}

	return sponsor, nil
}

func (s *Service) CreateSponsor(req *SponsorRequest) (*domain.Sponsor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	sponsor := &domain.Sponsor{
		ID:                  s.ids(),
		Name:                req.Name,
		Category:            req.Category,
		Status:              domain.SponsorStatusPendiente,
		AgreementType:       req.AgreementType,
		InternalResponsible: req.InternalResponsible,
		Notes:               req.Notes,
		CreatedAt:           now,
		UpdatedAt:           now,
		Agreements:          []*domain.Agreement{},
		Deliverables:        []*domain.Deliverable{},
		Activations:         []*domain.Activation{},
		Publications:        []*domain.Publication{},
	}

	if req.Status != nil {
		sponsor.Status = domain.SponsorStatus(*req.Status)
	}

	s.store.Create(sponsor)
	return sponsor, nil
}

func (s *Service) UpdateSponsor(sponsorID string, req *SponsorRequest) (*domain.Sponsor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return nil, ErrSponsorNotFound
	}

	sponsor.Name = req.Name
	sponsor.Category = req.Category
	sponsor.AgreementType = req.AgreementType
	sponsor.InternalResponsible = req.InternalResponsible
	sponsor.Notes = req.Notes
	if req.Status != nil {
		sponsor.Status = domain.SponsorStatus(*req.Status)
	}
	sponsor.UpdatedAt = time.Now()

	if !s.store.Update(sponsor) {
		return nil, ErrSponsorNotFound
	}

	return sponsor, nil
}

// DeleteSponsor remove o sponsor e descarta suas sub-coleções junto
func (s *Service) DeleteSponsor(sponsorID string) error {
	if !s.store.Delete(sponsorID) {
		return ErrSponsorNotFound
	}

	return nil
}

// saveSponsor persiste uma mutação de sub-recurso reescrevendo o
// registro do sponsor pai
func (s *Service) saveSponsor(sponsor *domain.Sponsor) error {
	sponsor.UpdatedAt = time.Now()
	if !s.store.Update(sponsor) {
		return ErrSponsorNotFound
	}
	return nil
}
