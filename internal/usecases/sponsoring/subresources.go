package sponsoring

import (
	"time"

	"github.com/vfg2006/festival-manager-api/internal/domain"
)

// AgreementRequest é o objeto de valor validado de criação/edição de acordo
type AgreementRequest struct {
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Amount      float64    `json:"amount"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Notes       string     `json:"notes"`
}

func (r *AgreementRequest) Validate() *ValidationError {
	var fields []FieldError

	if r.Description == "" {
		fields = append(fields, FieldError{Field: "description", Message: "descrição é obrigatória"})
	}

	if r.Amount < 0 {
		fields = append(fields, FieldError{Field: "amount", Message: "valor não pode ser negativo"})
	}

	if r.Status != nil {
		switch domain.AgreementStatus(*r.Status) {
		case domain.AgreementStatusPropuesto, domain.AgreementStatusAceptado,
			domain.AgreementStatusFirmado, domain.AgreementStatusRechazado:
		default:
			fields = append(fields, FieldError{Field: "status", Message: "status inválido"})
		}
	}

	if len(fields) > 0 {
		return newValidationError(fields...)
	}
	return nil
}

func (s *Service) AddAgreement(sponsorID string, req *AgreementRequest) (*domain.Agreement, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return nil, ErrSponsorNotFound
	}

	now := time.Now()
	agreement := &domain.Agreement{
		ID:          s.ids(),
		Description: req.Description,
		Type:        req.Type,
		Amount:      req.Amount,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      domain.AgreementStatusPropuesto,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if req.Status != nil {
		agreement.Status = domain.AgreementStatus(*req.Status)
	}

	sponsor.Agreements = append([]*domain.Agreement{agreement}, sponsor.Agreements...)
	if err := s.saveSponsor(sponsor); err != nil {
		return nil, err
	}

	return agreement, nil
}

func (s *Service) UpdateAgreement(sponsorID, agreementID string, req *AgreementRequest) (*domain.Agreement, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return nil, ErrSponsorNotFound
	}

	var updated *domain.Agreement
	for _, agreement := range sponsor.Agreements {
		if agreement.ID == agreementID {
			agreement.Description = req.Description
			agreement.Type = req.Type
			agreement.Amount = req.Amount
			agreement.StartDate = req.StartDate
			agreement.EndDate = req.EndDate
			agreement.Notes = req.Notes
			if req.Status != nil {
				agreement.Status = domain.AgreementStatus(*req.Status)
			}
			agreement.UpdatedAt = time.Now()
			updated = agreement
			break
		}
	}

	if updated == nil {
		return nil, ErrSubResourceNotFound
	}

	if err := s.saveSponsor(sponsor); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeleteAgreement(sponsorID, agreementID string) error {
	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return ErrSponsorNotFound
	}

	remaining := make([]*domain.Agreement, 0, len(sponsor.Agreements))
	found := false
	for _, agreement := range sponsor.Agreements {
		if agreement.ID == agreementID {
			found = true
			continue
		}
		remaining = append(remaining, agreement)
	}

	if !found {
		return ErrSubResourceNotFound
	}

	sponsor.Agreements = remaining
	return s.saveSponsor(sponsor)
}

// DeliverableRequest é o objeto de valor validado de criação/edição de entregável
type DeliverableRequest struct {
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Responsible string     `json:"responsible"`
	Status      *string    `json:"status,omitempty"`
}

func (r *DeliverableRequest) Validate() *ValidationError {
	var fields []FieldError

	if r.Description == "" {
		fields = append(fields, FieldError{Field: "description", Message: "descrição é obrigatória"})
	}

	if r.Status != nil && !validDeliverableStatus(*r.Status) {
		fields = append(fields, FieldError{Field: "status", Message: "status inválido"})
	}

	if len(fields) > 0 {
		return newValidationError(fields...)
	}
	return nil
}

func validDeliverableStatus(status string) bool {
	switch domain.DeliverableStatus(status) {
	case domain.DeliverableStatusPendiente, domain.DeliverableStatusEnProceso, domain.DeliverableStatusEntregado:
		return true
	}
	return false
}

func (s *Service) AddDeliverable(sponsorID string, req *DeliverableRequest) (*domain.Deliverable, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return nil, ErrSponsorNotFound
	}

	now := time.Now()
	deliverable := &domain.Deliverable{
		ID:          s.ids(),
		Description: req.Description,
		DueDate:     req.DueDate,
		Responsible: req.Responsible,
		Status:      domain.DeliverableStatusPendiente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if req.Status != nil {
		deliverable.Status = domain.DeliverableStatus(*req.Status)
	}

	sponsor.Deliverables = append([]*domain.Deliverable{deliverable}, sponsor.Deliverables...)
	if err := s.saveSponsor(sponsor); err != nil {
		return nil, err
	}

	return deliverable, nil
}

func (s *Service) UpdateDeliverable(sponsorID, deliverableID string, req *DeliverableRequest) (*domain.Deliverable, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return nil, ErrSponsorNotFound
	}

	var updated *domain.Deliverable
	for _, deliverable := range sponsor.Deliverables {
		if deliverable.ID == deliverableID {
			deliverable.Description = req.Description
			deliverable.DueDate = req.DueDate
			deliverable.Responsible = req.Responsible
			if req.Status != nil {
				deliverable.Status = domain.DeliverableStatus(*req.Status)
			}
			deliverable.UpdatedAt = time.Now()
			updated = deliverable
			break
		}
	}

	if updated == nil {
		return nil, ErrSubResourceNotFound
	}

	if err := s.saveSponsor(sponsor); err != nil {
		return nil, err
	}

	return updated, nil
}

// SetDeliverableStatus atribui o status diretamente, sem guarda de
// transição: qualquer estado pode suceder qualquer estado. Caminho
// equivalente ao dropdown da interface.
func (s *Service) SetDeliverableStatus(sponsorID, deliverableID string, status domain.DeliverableStatus) (*domain.Deliverable, error) {
	if !validDeliverableStatus(string(status)) {
		return nil, newValidationError(FieldError{Field: "status", Message: "status inválido"})
	}

	return s.mutateDeliverable(sponsorID, deliverableID, func(d *domain.Deliverable) {
		d.Status = status
	})
}

// CycleDeliverableStatus avança o status pelo ciclo fixo
// pendiente → en_proceso → entregado → pendiente. Caminho equivalente
// ao clique no badge da interface.
func (s *Service) CycleDeliverableStatus(sponsorID, deliverableID string) (*domain.Deliverable, error) {
	return s.mutateDeliverable(sponsorID, deliverableID, func(d *domain.Deliverable) {
		d.Status = domain.NextDeliverableStatus(d.Status)
	})
}

func (s *Service) mutateDeliverable(sponsorID, deliverableID string, mutate func(*domain.Deliverable)) (*domain.Deliverable, error) {
	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return nil, ErrSponsorNotFound
	}

	var mutated *domain.Deliverable
	for _, deliverable := range sponsor.Deliverables {
		if deliverable.ID == deliverableID {
			mutate(deliverable)
			deliverable.UpdatedAt = time.Now()
			mutated = deliverable
			break
		}
	}

	if mutated == nil {
		return nil, ErrSubResourceNotFound
	}

	if err := s.saveSponsor(sponsor); err != nil {
		return nil, err
	}

	return mutated, nil
}

func (s *Service) DeleteDeliverable(sponsorID, deliverableID string) error {
	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return ErrSponsorNotFound
	}

	remaining := make([]*domain.Deliverable, 0, len(sponsor.Deliverables))
	found := false
	for _, deliverable := range sponsor.Deliverables {
		if deliverable.ID == deliverableID {
			found = true
			continue
		}
		remaining = append(remaining, deliverable)
	}

	if !found {
		return ErrSubResourceNotFound
	}

	sponsor.Deliverables = remaining
	return s.saveSponsor(sponsor)
}

// ActivationRequest é o objeto de valor validado de criação/edição de ativação
type ActivationRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Date        *time.Time `json:"date,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

func (r *ActivationRequest) Validate() *ValidationError {
	var fields []FieldError

	if r.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "nome é obrigatório"})
	}

	if r.Status != nil {
		switch domain.ActivationStatus(*r.Status) {
		case domain.ActivationStatusPendiente, domain.ActivationStatusConfirmada, domain.ActivationStatusRealizada:
		default:
			fields = append(fields, FieldError{Field: "status", Message: "status inválido"})
		}
	}

	if len(fields) > 0 {
		return newValidationError(fields...)
	}
	return nil
}

func (s *Service) AddActivation(sponsorID string, req *ActivationRequest) (*domain.Activation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return nil, ErrSponsorNotFound
	}

	now := time.Now()
	activation := &domain.Activation{
		ID:          s.ids(),
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Date:        req.Date,
		Status:      domain.ActivationStatusPendiente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if req.Status != nil {
		activation.Status = domain.ActivationStatus(*req.Status)
	}

	sponsor.Activations = append([]*domain.Activation{activation}, sponsor.Activations...)
	if err := s.saveSponsor(sponsor); err != nil {
		return nil, err
	}

	return activation, nil
}

func (s *Service) UpdateActivation(sponsorID, activationID string, req *ActivationRequest) (*domain.Activation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return nil, ErrSponsorNotFound
	}

	var updated *domain.Activation
	for _, activation := range sponsor.Activations {
		if activation.ID == activationID {
			activation.Name = req.Name
			activation.Description = req.Description
			activation.Location = req.Location
			activation.Date = req.Date
			if req.Status != nil {
				activation.Status = domain.ActivationStatus(*req.Status)
			}
			activation.UpdatedAt = time.Now()
			updated = activation
			break
		}
	}

	if updated == nil {
		return nil, ErrSubResourceNotFound
	}

	if err := s.saveSponsor(sponsor); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeleteActivation(sponsorID, activationID string) error {
	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return ErrSponsorNotFound
	}

	remaining := make([]*domain.Activation, 0, len(sponsor.Activations))
	found := false
	for _, activation := range sponsor.Activations {
		if activation.ID == activationID {
			found = true
			continue
		}
		remaining = append(remaining, activation)
	}

	if !found {
		return ErrSubResourceNotFound
	}

	sponsor.Activations = remaining
	return s.saveSponsor(sponsor)
}

// PublicationRequest é o objeto de valor validado de criação/edição de publicação
type PublicationRequest struct {
	Title       string     `json:"title"`
	Channel     string     `json:"channel"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

func (r *PublicationRequest) Validate() *ValidationError {
	var fields []FieldError

	if r.Title == "" {
		fields = append(fields, FieldError{Field: "title", Message: "título é obrigatório"})
	}

	if r.Status != nil {
		switch domain.PublicationStatus(*r.Status) {
		case domain.PublicationStatusBorrador, domain.PublicationStatusProgramada, domain.PublicationStatusPublicada:
		default:
			fields = append(fields, FieldError{Field: "status", Message: "status inválido"})
		}
	}

	if len(fields) > 0 {
		return newValidationError(fields...)
	}
	return nil
}

func (s *Service) AddPublication(sponsorID string, req *PublicationRequest) (*domain.Publication, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return nil, ErrSponsorNotFound
	}

	now := time.Now()
	publication := &domain.Publication{
		ID:          s.ids(),
		Title:       req.Title,
		Channel:     req.Channel,
		ScheduledAt: req.ScheduledAt,
		Status:      domain.PublicationStatusBorrador,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if req.Status != nil {
		publication.Status = domain.PublicationStatus(*req.Status)
	}

	sponsor.Publications = append([]*domain.Publication{publication}, sponsor.Publications...)
	if err := s.saveSponsor(sponsor); err != nil {
		return nil, err
	}

	return publication, nil
}

func (s *Service) UpdatePublication(sponsorID, publicationID string, req *PublicationRequest) (*domain.Publication, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return nil, ErrSponsorNotFound
	}

	var updated *domain.Publication
	for _, publication := range sponsor.Publications {
		if publication.ID == publicationID {
			publication.Title = req.Title
			publication.Channel = req.Channel
			publication.ScheduledAt = req.ScheduledAt
			if req.Status != nil {
				publication.Status = domain.PublicationStatus(*req.Status)
			}
			publication.UpdatedAt = time.Now()
			updated = publication
			break
		}
	}

	if updated == nil {
		return nil, ErrSubResourceNotFound
	}

	if err := s.saveSponsor(sponsor); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) DeletePublication(sponsorID, publicationID string) error {
	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return ErrSponsorNotFound
	}

	remaining := make([]*domain.Publication, 0, len(sponsor.Publications))
	found := false
	for _, publication := range sponsor.Publications {
		if publication.ID == publicationID {
			found = true
			continue
		}
		remaining = append(remaining, publication)
	}

	if !found {
		return ErrSubResourceNotFound
	}

	sponsor.Publications = remaining
	return s.saveSponsor(sponsor)
}

// SegmentationRequest é o registro opcional de segmentação do sponsor
type SegmentationRequest struct {
	Audience  string `json:"audience"`
	AgeRange  string `json:"age_range"`
	Interests string `json:"interests"`
	Regions   string `json:"regions"`
}

// SetSegmentation cria ou substitui a segmentação do sponsor
func (s *Service) SetSegmentation(sponsorID string, req *SegmentationRequest) (*domain.Segmentation, error) {
	sponsor := s.store.Get(sponsorID)
	if sponsor == nil {
		return nil, ErrSponsorNotFound
	}

	segmentation := &domain.Segmentation{
		Audience:  req.Audience,
		AgeRange:  req.AgeRange,
		Interests: req.Interests,
		Regions:   req.Regions,
		UpdatedAt: time.Now(),
	}

	sponsor.Segmentation = segmentation
	if err := s.saveSponsor(sponsor); err != nil {
		return nil, err
	}

	return segmentation, nil
}
