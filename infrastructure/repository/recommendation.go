package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/festival-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/festival-manager-api/internal/domain"
)

const recommendationsTable = "recommendations"

type RecommendationRepository interface {
	SaveOrUpdate(recommendations []*domain.Recommendation) error
	ListByEventID(eventID string) ([]*domain.Recommendation, error)
	UpdateStatus(recommendationID string, status domain.RecommendationStatus) error
	StatusMap() (map[string]domain.RecommendationStatus, error)
}

type recommendationRepository struct {
	conn *postgres.Connection
}

func NewRecommendationRepository(conn *postgres.Connection) RecommendationRepository {
	return &recommendationRepository{
		conn: conn,
	}
}

// SaveOrUpdate grava recomendações preservando o status já atribuído
// pelo operador em execuções anteriores
func (r *recommendationRepository) SaveOrUpdate(recommendations []*domain.Recommendation) error {
	if len(recommendations) == 0 {
		return nil
	}

	queryBuilder := squirrel.
		Insert(recommendationsTable).
		Columns("id", "event_id", "title", "description", "category", "status", "fetched_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, rec := range recommendations {
		queryBuilder = queryBuilder.Values(
			rec.ID,
			rec.EventID,
			rec.Title,
			rec.Description,
			rec.Category,
			rec.Status,
			rec.FetchedAt,
		)
	}

	queryBuilder = queryBuilder.Suffix(`
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			fetched_at = EXCLUDED.fetched_at
	`)

	recSQL, recArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(recSQL, recArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func (r *recommendationRepository) ListByEventID(eventID string) ([]*domain.Recommendation, error) {
	recSQL, recArgs, err := squirrel.
		Select("id, event_id, title, description, category, status, fetched_at").
		From(recommendationsTable).
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("fetched_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(recSQL, recArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	recommendations := make([]*domain.Recommendation, 0)

	for rows.Next() {
		rec := &domain.Recommendation{}
		if err := rows.Scan(
			&rec.ID,
			&rec.EventID,
			&rec.Title,
			&rec.Description,
			&rec.Category,
			&rec.Status,
			&rec.FetchedAt,
		); err != nil {
			return nil, err
		}
		recommendations = append(recommendations, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre as recomendações: %w", err)
	}

	return recommendations, nil
}

func (r *recommendationRepository) UpdateStatus(recommendationID string, status domain.RecommendationStatus) error {
	statusSQL, statusArgs, err := squirrel.
		Update(recommendationsTable).
		Set("status", status).
		Where(squirrel.Eq{"id": recommendationID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(statusSQL, statusArgs...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("recommendation not found")
	}

	return nil
}

// StatusMap devolve o mapa id → status de todas as recomendações, o
// equivalente persistido do contexto global de status do painel
func (r *recommendationRepository) StatusMap() (map[string]domain.RecommendationStatus, error) {
	statusSQL, statusArgs, err := squirrel.
		Select("id, status").
		From(recommendationsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(statusSQL, statusArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return map[string]domain.RecommendationStatus{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	statusMap := make(map[string]domain.RecommendationStatus)

	for rows.Next() {
		var id string
		var status domain.RecommendationStatus
		if err := rows.Scan(&id, &status); err != nil {
			return nil, err
		}
		statusMap[id] = status
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os status: %w", err)
	}

	return statusMap, nil
}
