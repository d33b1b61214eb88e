package eventing

import (
	"errors"
	"time"

	"github.com/vfg2006/festival-manager-api/infrastructure/repository"
	"github.com/vfg2006/festival-manager-api/internal/domain"
	"github.com/vfg2006/festival-manager-api/pkg/utils"
)

var (
	ErrEventNotFound = errors.New("evento não encontrado")
	ErrInvalidEvent  = errors.New("dados obrigatórios ausentes ou inválidos")
	ErrInvalidImport = errors.New("lote de ingressos inválido")
)

// EventService expõe as operações de eventos e de importação de vendas
// de ingressos
type EventService interface {
	ListEvents() ([]*domain.Event, error)
	GetEvent(eventID string) (*domain.Event, error)
	CreateEvent(req *EventRequest) (*domain.Event, error)
	ImportTickets(eventID string, req *TicketImportRequest) (*domain.TicketImport, error)
	TicketStats(eventID string) (*domain.TicketStats, error)
	ListImports(eventID string) ([]*domain.TicketImport, error)
}

type Service struct {
	events  repository.EventRepository
	tickets repository.TicketRepository
	ids     utils.IDGenerator
}

func NewService(events repository.EventRepository, tickets repository.TicketRepository, ids utils.IDGenerator) EventService {
	if ids == nil {
		ids = utils.GenerateID
	}

	return &Service{
		events:  events,
		tickets: tickets,
		ids:     ids,
	}
}

type EventRequest struct {
	Name            string  `json:"name"`
	Venue           string  `json:"venue"`
	City            string  `json:"city"`
	Capacity        int     `json:"capacity"`
	TicketPrice     float64 `json:"ticket_price"`
	CampaignStartAt string  `json:"campaign_start_at"`
	Date            string  `json:"date"`
	Status          *string `json:"status,omitempty"`
}

type TicketImportRequest struct {
	Source   string `json:"source"`
	Quantity int    `json:"quantity"`
}

func (s *Service) ListEvents() ([]*domain.Event, error) {
	return s.events.ListEvents()
}

func (s *Service) GetEvent(eventID string) (*domain.Event, error) {
	event, err := s.events.GetEventByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	return event, nil
}

func (s *Service) CreateEvent(req *EventRequest) (*domain.Event, error) {
	if req.Name == "" || req.Capacity <= 0 {
		return nil, ErrInvalidEvent
	}

	datePtr, err := utils.ParseDate(req.Date)
	if err != nil || datePtr.IsZero() {
		return nil, ErrInvalidEvent
	}
	date := *datePtr

	campaignStartPtr, err := utils.ParseDate(req.CampaignStartAt)
	if err != nil {
		return nil, ErrInvalidEvent
	}
	campaignStart := *campaignStartPtr
	if campaignStart.IsZero() {
		campaignStart = time.Now()
	}
	if campaignStart.After(date) {
		return nil, ErrInvalidEvent
	}

	event := &domain.Event{
		ID:              s.ids(),
		Name:            req.Name,
		Venue:           req.Venue,
		City:            req.City,
		Capacity:        req.Capacity,
		TicketPrice:     req.TicketPrice,
		CampaignStartAt: campaignStart,
		Date:            date,
		Status:          domain.EventStatusBorrador,
	}

	if req.Status != nil {
		switch domain.EventStatus(*req.Status) {
		case domain.EventStatusBorrador, domain.EventStatusPublicado, domain.EventStatusFinalizado:
			event.Status = domain.EventStatus(*req.Status)
		default:
			return nil, ErrInvalidEvent
		}
	}

	if err := s.events.CreateEvent(event); err != nil {
		return nil, err
	}

	return event, nil
}

// ImportTickets registra um lote de ingressos vendidos vindo da
// ticketera. Lotes são imutáveis: correções entram como novos lotes.
func (s *Service) ImportTickets(eventID string, req *TicketImportRequest) (*domain.TicketImport, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidImport
	}

	event, err := s.events.GetEventByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	source := req.Source
	if source == "" {
		source = "manual"
	}

	ticketImport := &domain.TicketImport{
		ID:         s.ids(),
		EventID:    eventID,
		Source:     source,
		Quantity:   req.Quantity,
		ImportedAt: time.Now(),
	}

	if err := s.tickets.SaveImport(ticketImport); err != nil {
		return nil, err
	}

	return ticketImport, nil
}

func (s *Service) TicketStats(eventID string) (*domain.TicketStats, error) {
	event, err := s.events.GetEventByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	return s.tickets.GetStatsByEventID(eventID)
}

func (s *Service) ListImports(eventID string) ([]*domain.TicketImport, error) {
	event, err := s.events.GetEventByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	return s.tickets.ListImportsByEventID(eventID)
}
