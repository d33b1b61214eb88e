package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/festival-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/festival-manager-api/internal/domain"
)

const complianceSnapshotsTable = "compliance_snapshots"

// ComplianceSnapshot é o registro histórico de um relatório de
// compliance calculado pelo scheduler
type ComplianceSnapshot struct {
	ID         string             `json:"id"`
	EntityType string             `json:"entity_type"`
	EntityID   string             `json:"entity_id"`
	EntityName string             `json:"entity_name"`
	Percent    int                `json:"percent"`
	Health     domain.HealthLevel `json:"health"`
	TakenAt    time.Time          `json:"taken_at"`
}

type ComplianceSnapshotRepository interface {
	SaveSnapshots(snapshots []*ComplianceSnapshot) error
	ListLatestSnapshots() ([]*ComplianceSnapshot, error)
}

type complianceSnapshotRepository struct {
	conn *postgres.Connection
}

func NewComplianceSnapshotRepository(conn *postgres.Connection) ComplianceSnapshotRepository {
	return &complianceSnapshotRepository{
		conn: conn,
	}
}

func (r *complianceSnapshotRepository) SaveSnapshots(snapshots []*ComplianceSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	queryBuilder := squirrel.
		Insert(complianceSnapshotsTable).
		Columns("id", "entity_type", "entity_id", "entity_name", "percent", "health", "taken_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, snapshot := range snapshots {
		queryBuilder = queryBuilder.Values(
			snapshot.ID,
			snapshot.EntityType,
			snapshot.EntityID,
			snapshot.EntityName,
			snapshot.Percent,
			snapshot.Health,
			snapshot.TakenAt,
		)
	}

	snapshotSQL, snapshotArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(snapshotSQL, snapshotArgs...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// ListLatestSnapshots devolve o snapshot mais recente de cada entidade
func (r *complianceSnapshotRepository) ListLatestSnapshots() ([]*ComplianceSnapshot, error) {
	snapshotSQL, snapshotArgs, err := squirrel.
		Select("DISTINCT ON (entity_type, entity_id) id, entity_type, entity_id, entity_name, percent, health, taken_at").
		From(complianceSnapshotsTable).
		OrderBy("entity_type", "entity_id", "taken_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(snapshotSQL, snapshotArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	snapshots := make([]*ComplianceSnapshot, 0)

	for rows.Next() {
		snapshot := &ComplianceSnapshot{}
		if err := rows.Scan(
			&snapshot.ID,
			&snapshot.EntityType,
			&snapshot.EntityID,
			&snapshot.EntityName,
			&snapshot.Percent,
			&snapshot.Health,
			&snapshot.TakenAt,
		); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os snapshots: %w", err)
	}

	return snapshots, nil
}
