package domain

import (
	"strings"
	"time"
)

type ArtistStatus string

const (
	ArtistStatusConfirmado ArtistStatus = "confirmado"
	ArtistStatusPendiente  ArtistStatus = "pendiente"
	ArtistStatusCancelado  ArtistStatus = "cancelado"
)

type ProviderStatus string

const (
	ProviderStatusActivo    ProviderStatus = "activo"
	ProviderStatusPendiente ProviderStatus = "pendiente"
	ProviderStatusInactivo  ProviderStatus = "inactivo"
)

type BookingStatus string

const (
	BookingStatusPendiente  BookingStatus = "pendiente"
	BookingStatusReservado  BookingStatus = "reservado"
	BookingStatusConfirmado BookingStatus = "confirmado"
)

type ChecklistItemStatus string

const (
	ChecklistItemStatusPendiente  ChecklistItemStatus = "pendiente"
	ChecklistItemStatusEnProceso  ChecklistItemStatus = "en_proceso"
	ChecklistItemStatusCompletado ChecklistItemStatus = "completado"
)

// LogisticsKind identifica cada coleção de sub-registros logísticos
type LogisticsKind string

const (
	LogisticsKindHotel     LogisticsKind = "hotel"
	LogisticsKindFlight    LogisticsKind = "flight"
	LogisticsKindTransport LogisticsKind = "transport"
	LogisticsKindRider     LogisticsKind = "rider"
)

func ValidLogisticsKind(kind string) bool {
	switch LogisticsKind(kind) {
	case LogisticsKindHotel, LogisticsKindFlight, LogisticsKindTransport, LogisticsKindRider:
		return true
	}
	return false
}

// LogisticsRecord é um sub-registro logístico (hotel, voo, transporte ou
// item de rider/catering). As quatro coleções têm o mesmo formato de
// checklist, mudando apenas o kind e o conjunto de status aplicável.
type LogisticsRecord struct {
	ID          string        `json:"id"`
	Kind        LogisticsKind `json:"kind"`
	Description string        `json:"description"`
	Date        *time.Time    `json:"date,omitempty"`
	Reference   string        `json:"reference"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// IsPending indica se o registro ainda conta para o total de pendências
func (r *LogisticsRecord) IsPending() bool {
	switch r.Kind {
	case LogisticsKindRider:
		return ChecklistItemStatus(r.Status) != ChecklistItemStatusCompletado
	default:
		return BookingStatus(r.Status) != BookingStatusConfirmado
	}
}

// Logistics agrupa os sub-registros de um artista ou provider
type Logistics struct {
	Hotels     []*LogisticsRecord `json:"hotels"`
	Flights    []*LogisticsRecord `json:"flights"`
	Transports []*LogisticsRecord `json:"transports"`
	Rider      []*LogisticsRecord `json:"rider"`
}

// Collection devolve a coleção correspondente ao kind
func (l *Logistics) Collection(kind LogisticsKind) []*LogisticsRecord {
	switch kind {
	case LogisticsKindHotel:
		return l.Hotels
	case LogisticsKindFlight:
		return l.Flights
	case LogisticsKindTransport:
		return l.Transports
	case LogisticsKindRider:
		return l.Rider
	}
	return nil
}

// SetCollection substitui a coleção correspondente ao kind
func (l *Logistics) SetCollection(kind LogisticsKind, records []*LogisticsRecord) {
	switch kind {
	case LogisticsKindHotel:
		l.Hotels = records
	case LogisticsKindFlight:
		l.Flights = records
	case LogisticsKindTransport:
		l.Transports = records
	case LogisticsKindRider:
		l.Rider = records
	}
}

// PendingCount soma os sub-registros não finalizados de todas as coleções.
// Valor derivado, recalculado a cada consulta.
func (l *Logistics) PendingCount() int {
	count := 0
	for _, kind := range []LogisticsKind{LogisticsKindHotel, LogisticsKindFlight, LogisticsKindTransport, LogisticsKindRider} {
		for _, r := range l.Collection(kind) {
			if r.IsPending() {
				count++
			}
		}
	}
	return count
}

func (l *Logistics) clone() Logistics {
	cloneRecords := func(records []*LogisticsRecord) []*LogisticsRecord {
		out := make([]*LogisticsRecord, len(records))
		for i, r := range records {
			copied := *r
			out[i] = &copied
		}
		return out
	}

	return Logistics{
		Hotels:     cloneRecords(l.Hotels),
		Flights:    cloneRecords(l.Flights),
		Transports: cloneRecords(l.Transports),
		Rider:      cloneRecords(l.Rider),
	}
}

// Artist é um artista contratado com sua logística associada
type Artist struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Genre     string       `json:"genre"`
	Stage     string       `json:"stage"`
	ShowDate  *time.Time   `json:"show_date,omitempty"`
	Fee       float64      `json:"fee"`
	Status    ArtistStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	Logistics Logistics `json:"logistics"`
}

func (a *Artist) Clone() *Artist {
	if a == nil {
		return nil
	}
	clone := *a
	clone.Logistics = a.Logistics.clone()
	return &clone
}

// Provider é um fornecedor de serviços do festival (som, catering,
// segurança...) com sua logística associada
type Provider struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Service   string         `json:"service"`
	Contact   string         `json:"contact"`
	Phone     string         `json:"phone"`
	Status    ProviderStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	Logistics Logistics `json:"logistics"`
}

func (p *Provider) Clone() *Provider {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Logistics = p.Logistics.clone()
	return &clone
}

type ArtistFilters struct {
	Search string
	Status string
}

func (f ArtistFilters) Match(a *Artist) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Name), term) &&
			!strings.Contains(strings.ToLower(a.Genre), term) {
			return false
		}
	}

	if f.Status != "" && f.Status != "all" && string(a.Status) != f.Status {
		return false
	}

	return true
}

type ProviderFilters struct {
	Search string
	Status string
}

func (f ProviderFilters) Match(p *Provider) bool {
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Service), term) {
			return false
		}
	}

	if f.Status != "" && f.Status != "all" && string(p.Status) != f.Status {
		return false
	}

	return true
}
