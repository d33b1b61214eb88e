package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/festival-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/festival-manager-api/internal/domain"
)

const eventsTable = "events"

type EventRepository interface {
	ListEvents() ([]*domain.Event, error)
	GetEventByID(eventID string) (*domain.Event, error)
	CreateEvent(event *domain.Event) error
	ListUpcomingEvents() ([]*domain.Event, error)
}

type eventRepository struct {
	conn *postgres.Connection
}

func NewEventRepository(conn *postgres.Connection) EventRepository {
	return &eventRepository{
		conn: conn,
	}
}

const eventColumns = "id, name, venue, city, capacity, ticket_price, campaign_start_at, date, status, created_at, updated_at"

func (r *eventRepository) ListEvents() ([]*domain.Event, error) {
	return r.listEvents(nil)
}

// ListUpcomingEvents devolve os eventos com data futura, usados pelo
// scheduler de recomendações
func (r *eventRepository) ListUpcomingEvents() ([]*domain.Event, error) {
	return r.listEvents(squirrel.Expr("date >= NOW()"))
}

func (r *eventRepository) listEvents(where squirrel.Sqlizer) ([]*domain.Event, error) {
	queryBuilder := squirrel.
		Select(eventColumns).
		From(eventsTable).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	eventsSQL, eventsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(eventsSQL, eventsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)

	for rows.Next() {
		event, err := deserializeEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os eventos: %w", err)
	}

	return events, nil
}

func (r *eventRepository) GetEventByID(eventID string) (*domain.Event, error) {
	eventSQL, eventArgs, err := squirrel.
		Select(eventColumns).
		From(eventsTable).
		Where(squirrel.Eq{"id": eventID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(eventSQL, eventArgs...)

	event := &domain.Event{}
	if err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Venue,
		&event.City,
		&event.Capacity,
		&event.TicketPrice,
		&event.CampaignStartAt,
		&event.Date,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return event, nil
}

func (r *eventRepository) CreateEvent(event *domain.Event) error {
	eventSQL, eventArgs, err := squirrel.
		Insert(eventsTable).
		Columns("id", "name", "venue", "city", "capacity", "ticket_price", "campaign_start_at", "date", "status").
		Values(
			event.ID,
			event.Name,
			event.Venue,
			event.City,
			event.Capacity,
			event.TicketPrice,
			event.CampaignStartAt,
			event.Date,
			event.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRow(eventSQL, eventArgs...).Scan(&event.CreatedAt, &event.UpdatedAt); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func deserializeEvent(rows *sql.Rows) (*domain.Event, error) {
	event := &domain.Event{}

	if err := rows.Scan(
		&event.ID,
		&event.Name,
		&event.Venue,
		&event.City,
		&event.Capacity,
		&event.TicketPrice,
		&event.CampaignStartAt,
		&event.Date,
		&event.Status,
		&event.CreatedAt,
		&event.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return event, nil
}
