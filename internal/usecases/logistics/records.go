package logistics

import (
	"time"

	"github.com/vfg2006/festival-manager-api/internal/domain"
)

// RecordRequest é o objeto de valor validado de sub-registro logístico,
// comum às quatro coleções
type RecordRequest struct {
	Description string     `json:"description"`
	Date        *time.Time `json:"date,omitempty"`
	Reference   string     `json:"reference"`
	Status      *string    `json:"status,omitempty"`
}

func (r *RecordRequest) Validate(kind domain.LogisticsKind) *ValidationError {
	var fields []FieldError

	if r.Description == "" {
		fields = append(fields, FieldError{Field: "description", Message: "descrição é obrigatória"})
	}

	if r.Status != nil && !validRecordStatus(kind, *r.Status) {
		fields = append(fields, FieldError{Field: "status", Message: "status inválido para o tipo de registro"})
	}

	if len(fields) > 0 {
		return newValidationError(fields...)
	}
	return nil
}

// Rider usa o ciclo de checklist; hotéis, voos e transportes usam o
// ciclo de reserva
func validRecordStatus(kind domain.LogisticsKind, status string) bool {
	if kind == domain.LogisticsKindRider {
		switch domain.ChecklistItemStatus(status) {
		case domain.ChecklistItemStatusPendiente, domain.ChecklistItemStatusEnProceso, domain.ChecklistItemStatusCompletado:
			return true
		}
		return false
	}

	switch domain.BookingStatus(status) {
	case domain.BookingStatusPendiente, domain.BookingStatusReservado, domain.BookingStatusConfirmado:
		return true
	}
	return false
}

func (s *Service) newRecord(kind domain.LogisticsKind, req *RecordRequest) *domain.LogisticsRecord {
	now := time.Now()
	record := &domain.LogisticsRecord{
		ID:          s.ids(),
		Kind:        kind,
		Description: req.Description,
		Date:        req.Date,
		Reference:   req.Reference,
		Status:      string(domain.BookingStatusPendiente),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if kind == domain.LogisticsKindRider {
		record.Status = string(domain.ChecklistItemStatusPendiente)
	}

	if req.Status != nil {
		record.Status = *req.Status
	}

	return record
}

func addRecord(l *domain.Logistics, kind domain.LogisticsKind, record *domain.LogisticsRecord) {
	l.SetCollection(kind, append([]*domain.LogisticsRecord{record}, l.Collection(kind)...))
}

func updateRecord(l *domain.Logistics, kind domain.LogisticsKind, recordID string, mutate func(*domain.LogisticsRecord)) *domain.LogisticsRecord {
	for _, record := range l.Collection(kind) {
		if record.ID == recordID {
			mutate(record)
			record.UpdatedAt = time.Now()
			return record
		}
	}
	return nil
}

func removeRecord(l *domain.Logistics, kind domain.LogisticsKind, recordID string) bool {
	records := l.Collection(kind)
	remaining := make([]*domain.LogisticsRecord, 0, len(records))
	found := false

	for _, record := range records {
		if record.ID == recordID {
			found = true
			continue
		}
		remaining = append(remaining, record)
	}

	if found {
		l.SetCollection(kind, remaining)
	}
	return found
}

func (s *Service) AddArtistRecord(artistID string, kind domain.LogisticsKind, req *RecordRequest) (*domain.LogisticsRecord, error) {
	if err := req.Validate(kind); err != nil {
		return nil, err
	}

	artist := s.artists.Get(artistID)
	if artist == nil {
		return nil, ErrArtistNotFound
	}

	record := s.newRecord(kind, req)
	addRecord(&artist.Logistics, kind, record)

	if err := s.saveArtist(artist); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) UpdateArtistRecord(artistID, recordID string, kind domain.LogisticsKind, req *RecordRequest) (*domain.LogisticsRecord, error) {
	if err := req.Validate(kind); err != nil {
		return nil, err
	}

	artist := s.artists.Get(artistID)
	if artist == nil {
		return nil, ErrArtistNotFound
	}

	record := updateRecord(&artist.Logistics, kind, recordID, func(r *domain.LogisticsRecord) {
		r.Description = req.Description
		r.Date = req.Date
		r.Reference = req.Reference
		if req.Status != nil {
			r.Status = *req.Status
		}
	})
	if record == nil {
		return nil, ErrRecordNotFound
	}

	if err := s.saveArtist(artist); err != nil {
		return nil, err
	}
	return record, nil
}

// SetArtistRecordStatus atribui o status diretamente, sem guarda de transição
func (s *Service) SetArtistRecordStatus(artistID, recordID string, kind domain.LogisticsKind, status string) (*domain.LogisticsRecord, error) {
	if !validRecordStatus(kind, status) {
		return nil, newValidationError(FieldError{Field: "status", Message: "status inválido para o tipo de registro"})
	}

	artist := s.artists.Get(artistID)
	if artist == nil {
		return nil, ErrArtistNotFound
	}

	record := updateRecord(&artist.Logistics, kind, recordID, func(r *domain.LogisticsRecord) {
		r.Status = status
	})
	if record == nil {
		return nil, ErrRecordNotFound
	}

	if err := s.saveArtist(artist); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) DeleteArtistRecord(artistID, recordID string, kind domain.LogisticsKind) error {
	artist := s.artists.Get(artistID)
	if artist == nil {
		return ErrArtistNotFound
	}

	if !removeRecord(&artist.Logistics, kind, recordID) {
		return ErrRecordNotFound
	}

	return s.saveArtist(artist)
}

func (s *Service) AddProviderRecord(providerID string, kind domain.LogisticsKind, req *RecordRequest) (*domain.LogisticsRecord, error) {
	if err := req.Validate(kind); err != nil {
		return nil, err
	}

	provider := s.providers.Get(providerID)
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	record := s.newRecord(kind, req)
	addRecord(&provider.Logistics, kind, record)

	if err := s.saveProvider(provider); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) UpdateProviderRecord(providerID, recordID string, kind domain.LogisticsKind, req *RecordRequest) (*domain.LogisticsRecord, error) {
	if err := req.Validate(kind); err != nil {
		return nil, err
	}

	provider := s.providers.Get(providerID)
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	record := updateRecord(&provider.Logistics, kind, recordID, func(r *domain.LogisticsRecord) {
		r.Description = req.Description
		r.Date = req.Date
		r.Reference = req.Reference
		if req.Status != nil {
			r.Status = *req.Status
		}
	})
	if record == nil {
		return nil, ErrRecordNotFound
	}

	if err := s.saveProvider(provider); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) SetProviderRecordStatus(providerID, recordID string, kind domain.LogisticsKind, status string) (*domain.LogisticsRecord, error) {
	if !validRecordStatus(kind, status) {
		return nil, newValidationError(FieldError{Field: "status", Message: "status inválido para o tipo de registro"})
	}

	provider := s.providers.Get(providerID)
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	record := updateRecord(&provider.Logistics, kind, recordID, func(r *domain.LogisticsRecord) {
		r.Status = status
	})
	if record == nil {
		return nil, ErrRecordNotFound
	}

	if err := s.saveProvider(provider); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) DeleteProviderRecord(providerID, recordID string, kind domain.LogisticsKind) error {
	provider := s.providers.Get(providerID)
	if provider == nil {
		return ErrProviderNotFound
	}

	if !removeRecord(&provider.Logistics, kind, recordID) {
		return ErrRecordNotFound
	}

	return s.saveProvider(provider)
}

func (s *Service) saveArtist(artist *domain.Artist) error {
	artist.UpdatedAt = time.Now()
	if !s.artists.Update(artist) {
		return ErrArtistNotFound
	}
	return nil
}

func (s *Service) saveProvider(provider *domain.Provider) error {
	provider.UpdatedAt = time.Now()
	if !s.providers.Update(provider) {
		return ErrProviderNotFound
	}
	return nil
}
