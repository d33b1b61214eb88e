package logistics

import (
	"time"

	"github.com/vfg2006/festival-manager-api/infrastructure/inmemory"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/pkg/utils"
)

// LogisticsService expõe as operações de artistas, providers e seus
// registros logísticos (hotéis, voos, transportes e rider)
type LogisticsService interface {
	ListArtists(filters domain.ArtistFilters) []*ArtistView
	GetArtist(artistID string) (*ArtistView, error)
	CreateArtist(req *ArtistRequest) (*domain.Artist, error)
	UpdateArtist(artistID string, req *ArtistRequest) (*domain.Artist, error)
	DeleteArtist(artistID string) error

	ListProviders(filters domain.ProviderFilters) []*ProviderView
	GetProvider(providerID string) (*ProviderView, error)
	CreateProvider(req *ProviderRequest) (*domain.Provider, error)
	UpdateProvider(providerID string, req *ProviderRequest) (*domain.Provider, error)
	DeleteProvider(providerID string) error

	AddArtistRecord(artistID string, kind domain.LogisticsKind, req *RecordRequest) (*domain.LogisticsRecord, error)
	UpdateArtistRecord(artistID, recordID string, kind domain.LogisticsKind, req *RecordRequest) (*domain.LogisticsRecord, error)
	SetArtistRecordStatus(artistID, recordID string, kind domain.LogisticsKind, status string) (*domain.LogisticsRecord, error)
	DeleteArtistRecord(artistID, recordID string, kind domain.LogisticsKind) error

	AddProviderRecord(providerID string, kind domain.LogisticsKind, req *RecordRequest) (*domain.LogisticsRecord, error)
	UpdateProviderRecord(providerID, recordID string, kind domain.LogisticsKind, req *RecordRequest) (*domain.LogisticsRecord, error)
	SetProviderRecordStatus(providerID, recordID string, kind domain.LogisticsKind, status string) (*domain.LogisticsRecord, error)
	DeleteProviderRecord(providerID, recordID string, kind domain.LogisticsKind) error

	PendingSummary() *PendingSummary
}

type Service struct {
	artists   inmemory.ArtistStore
	providers inmemory.ProviderStore
	ids       utils.IDGenerator
}

func NewService(artists inmemory.ArtistStore, providers inmemory.ProviderStore, ids utils.IDGenerator) LogisticsService {
	if ids == nil {
		ids = utils.GenerateID
	}

	return &Service{
		artists:   artists,
		providers: providers,
		ids:       ids,
	}
}

// ArtistView acrescenta ao artista o total derivado de pendências
// logísticas, recalculado a cada consulta
type ArtistView struct {
	*domain.Artist
	PendingLogistics int `json:"pending_logistics"`
}

type ProviderView struct {
	*domain.Provider
	PendingLogistics int `json:"pending_logistics"`
}

// PendingSummary agrega as pendências logísticas de todo o line-up e de
// todos os fornecedores, para o painel geral
type PendingSummary struct {
	ArtistsPending   int `json:"artists_pending"`
	ProvidersPending int `json:"providers_pending"`
	Total            int `json:"total"`
}

type ArtistRequest struct {
	Name     string     `json:"name"`
	Genre    string     `json:"genre"`
	Stage    string     `json:"stage"`
	ShowDate *time.Time `json:"show_date,omitempty"`
	Fee      float64    `json:"fee"`
	Status   *string    `json:"status,omitempty"`
}

func (r *ArtistRequest) Validate() *ValidationError {
	var fields []FieldError

	if r.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "nome é obrigatório"})
	}

	if r.Fee < 0 {
		fields = append(fields, FieldError{Field: "fee", Message: "cachê não pode ser negativo"})
	}

	if r.Status != nil {
		switch domain.ArtistStatus(*r.Status) {
		case domain.ArtistStatusConfirmado, domain.ArtistStatusPendiente, domain.ArtistStatusCancelado:
		default:
			fields = append(fields, FieldError{Field: "status", Message: "status inválido"})
		}
	}

	if len(fields) > 0 {
		return newValidationError(fields...)
	}
	return nil
}

type ProviderRequest struct {
	Name    string  `json:"name"`
	Service string  `json:"service"`
	Contact string  `json:"contact"`
	Phone   string  `json:"phone"`
	Status  *string `json:"status,omitempty"`
}

func (r *ProviderRequest) Validate() *ValidationError {
	var fields []FieldError

	if r.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "nome é obrigatório"})
	}

	if r.Status != nil {
		switch domain.ProviderStatus(*r.Status) {
		case domain.ProviderStatusActivo, domain.ProviderStatusPendiente, domain.ProviderStatusInactivo:
		default:
			fields = append(fields, FieldError{Field: "status", Message: "status inválido"})
		}
	}

	if len(fields) > 0 {
		return newValidationError(fields...)
	}
	return nil
}

func (s *Service) ListArtists(filters domain.ArtistFilters) []*ArtistView {
	artists := s.artists.List(filters)
	views := make([]*ArtistView, 0, len(artists))
	for _, artist := range artists {
		views = append(views, &ArtistView{
			Artist:           artist,
			PendingLogistics: artist.Logistics.PendingCount(),
		})
	}
	return views
}

func (s *Service) GetArtist(artistID string) (*ArtistView, error) {
	artist := s.artists.Get(artistID)
	if artist == nil {
		return nil, ErrArtistNotFound
	}

	return &ArtistView{
		Artist:           artist,
		PendingLogistics: artist.Logistics.PendingCount(),
	}, nil
}

func (s *Service) CreateArtist(req *ArtistRequest) (*domain.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	artist := &domain.Artist{
		ID:        s.ids(),
		Name:      req.Name,
		Genre:     req.Genre,
		Stage:     req.Stage,
		ShowDate:  req.ShowDate,
		Fee:       req.Fee,
		Status:    domain.ArtistStatusPendiente,
		CreatedAt: now,
		UpdatedAt: now,
		Logistics: domain.Logistics{
			Hotels:     []*domain.LogisticsRecord{},
			Flights:    []*domain.LogisticsRecord{},
			Transports: []*domain.LogisticsRecord{},
			Rider:      []*domain.LogisticsRecord{},
		},
	}

	if req.Status != nil {
		artist.Status = domain.ArtistStatus(*req.Status)
	}

	s.artists.Create(artist)
	return artist, nil
}

func (s *Service) UpdateArtist(artistID string, req *ArtistRequest) (*domain.Artist, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	artist := s.artists.Get(artistID)
	if artist == nil {
		return nil, ErrArtistNotFound
	}

	artist.Name = req.Name
	artist.Genre = req.Genre
	artist.Stage = req.Stage
	artist.ShowDate = req.ShowDate
	artist.Fee = req.Fee
	if req.Status != nil {
		artist.Status = domain.ArtistStatus(*req.Status)
	}
	artist.UpdatedAt = time.Now()

	if !s.artists.Update(artist) {
		return nil, ErrArtistNotFound
	}

	return artist, nil
}

// DeleteArtist remove o artista e sua logística junto
func (s *Service) DeleteArtist(artistID string) error {
	if !s.artists.Delete(artistID) {
		return ErrArtistNotFound
	}

	return nil
}

func (s *Service) ListProviders(filters domain.ProviderFilters) []*ProviderView {
	providers := s.providers.List(filters)
	views := make([]*ProviderView, 0, len(providers))
	for _, provider := range providers {
		views = append(views, &ProviderView{
			Provider:         provider,
			PendingLogistics: provider.Logistics.PendingCount(),
		})
	}
	return views
}

func (s *Service) GetProvider(providerID string) (*ProviderView, error) {
	provider := s.providers.Get(providerID)
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	return &ProviderView{
		Provider:         provider,
		PendingLogistics: provider.Logistics.PendingCount(),
	}, nil
}

func (s *Service) CreateProvider(req *ProviderRequest) (*domain.Provider, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	provider := &domain.Provider{
		ID:        s.ids(),
		Name:      req.Name,
		Service:   req.Service,
		Contact:   req.Contact,
		Phone:     req.Phone,
		Status:    domain.ProviderStatusPendiente,
		CreatedAt: now,
		UpdatedAt: now,
		Logistics: domain.Logistics{
			Hotels:     []*domain.LogisticsRecord{},
			Flights:    []*domain.LogisticsRecord{},
			Transports: []*domain.LogisticsRecord{},
			Rider:      []*domain.LogisticsRecord{},
		},
	}

	if req.Status != nil {
		provider.Status = domain.ProviderStatus(*req.Status)
	}

	s.providers.Create(provider)
	return provider, nil
}

func (s *Service) UpdateProvider(providerID string, req *ProviderRequest) (*domain.Provider, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	provider := s.providers.Get(providerID)
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	provider.Name = req.Name
	provider.Service = req.Service
	provider.Contact = req.Contact
	provider.Phone = req.Phone
	if req.Status != nil {
		provider.Status = domain.ProviderStatus(*req.Status)
	}
	provider.UpdatedAt = time.Now()

	if !s.providers.Update(provider) {
		return nil, ErrProviderNotFound
	}

	return provider, nil
}

func (s *Service) DeleteProvider(providerID string) error {
	if !s.providers.Delete(providerID) {
		return ErrProviderNotFound
	}

	return nil
}

func (s *Service) PendingSummary() *PendingSummary {
	summary := &PendingSummary{}

	for _, artist := range s.artists.List(domain.ArtistFilters{}) {
		summary.ArtistsPending += artist.Logistics.PendingCount()
	}

	for _, provider := range s.providers.List(domain.ProviderFilters{}) {
		summary.ProvidersPending += provider.Logistics.PendingCount()
	}

	summary.Total = summary.ArtistsPending + summary.ProvidersPending
	return summary
}
