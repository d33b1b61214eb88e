package domain

import "time"

type EventStatus string

const (
	EventStatusBorrador   EventStatus = "borrador"
	EventStatusPublicado  EventStatus = "publicado"
	EventStatusFinalizado EventStatus = "finalizado"
)

// Event é a edição do festival sendo gerenciada
type Event struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Venue           string      `json:"venue"`
	City            string      `json:"city"`
	Capacity        int         `json:"capacity"`
	TicketPrice     float64     `json:"ticket_price"`
	CampaignStartAt time.Time   `json:"campaign_start_at"`
	Date            time.Time   `json:"date"`
	Status          EventStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// TicketImport é um lote de ingressos importado de uma fonte externa
// (ticketera). A contagem agregada por evento deriva destes lotes.
type TicketImport struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	Source     string    `json:"source"`
	Quantity   int       `json:"quantity"`
	ImportedAt time.Time `json:"imported_at"`
}

// TicketStats é o agregado de vendas de um evento
type TicketStats struct {
	EventID      string     `json:"event_id"`
	TotalSold    int        `json:"total_sold"`
	ImportCount  int        `json:"import_count"`
	LastImportAt *time.Time `json:"last_import_at,omitempty"`
}
