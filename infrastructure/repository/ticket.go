package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/festival-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/festival-manager-api/internal/domain"
)

const ticketImportsTable = "ticket_imports"

type TicketRepository interface {
	SaveImport(ticketImport *domain.TicketImport) error
	GetStatsByEventID(eventID string) (*domain.TicketStats, error)
	ListImportsByEventID(eventID string) ([]*domain.TicketImport, error)
}

type ticketRepository struct {
	conn *postgres.Connection
}

func NewTicketRepository(conn *postgres.Connection) TicketRepository {
	return &ticketRepository{
		conn: conn,
	}
}

func (r *ticketRepository) SaveImport(ticketImport *domain.TicketImport) error {
	importSQL, importArgs, err := squirrel.
		Insert(ticketImportsTable).
		Columns("id", "event_id", "source", "quantity", "imported_at").
		Values(
			ticketImport.ID,
			ticketImport.EventID,
			ticketImport.Source,
			ticketImport.Quantity,
			ticketImport.ImportedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(importSQL, importArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetStatsByEventID agrega total vendido, quantidade de lotes e o
// timestamp do último import de um evento
func (r *ticketRepository) GetStatsByEventID(eventID string) (*domain.TicketStats, error) {
	statsSQL, statsArgs, err := squirrel.
		Select("COALESCE(SUM(quantity), 0)", "COUNT(*)", "MAX(imported_at)").
		From(ticketImportsTable).
		Where(squirrel.Eq{"event_id": eventID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	stats := &domain.TicketStats{EventID: eventID}
	var lastImportAt sql.NullTime

	if err := r.conn.QueryRow(statsSQL, statsArgs...).Scan(
		&stats.TotalSold,
		&stats.ImportCount,
		&lastImportAt,
	); err != nil {
		return nil, err
	}

	if lastImportAt.Valid {
		stats.LastImportAt = &lastImportAt.Time
	}

	return stats, nil
}

func (r *ticketRepository) ListImportsByEventID(eventID string) ([]*domain.TicketImport, error) {
	importsSQL, importsArgs, err := squirrel.
		Select("id, event_id, source, quantity, imported_at").
		From(ticketImportsTable).
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("imported_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(importsSQL, importsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	imports := make([]*domain.TicketImport, 0)

	for rows.Next() {
		imported := &domain.TicketImport{}
		if err := rows.Scan(
			&imported.ID,
			&imported.EventID,
			&imported.Source,
			&imported.Quantity,
			&imported.ImportedAt,
		); err != nil {
			return nil, err
		}
		imports = append(imports, imported)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os imports: %w", err)
	}

	return imports, nil
}
