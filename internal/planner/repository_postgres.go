package planner

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Snapshot payload goes into one JSONB column; the metrics shape is
// still evolving with the planner UI and a column per figure would
// churn the schema on every change.
type snapshotPayload struct {
	Metrics    json.RawMessage `json:"metrics"`
	Validation json.RawMessage `json:"validation"`
}

func (r *PostgresRepository) Save(ctx context.Context, snap *Snapshot) error {
	metrics, err := json.Marshal(snap.Metrics)
	if err != nil {
		return err
	}
	validation, err := json.Marshal(snap.Validation)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(snapshotPayload{
		Metrics:    metrics,
		Validation: validation,
	})
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO plan_snapshots (id, recipe_name, payload, created_at)
		VALUES ($1, $2, $3, $4)
	`, snap.ID, snap.RecipeName, payload, snap.CreatedAt)

	return err
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Snapshot, error) {
	var (
		snap    Snapshot
		payload []byte
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, recipe_name, payload, created_at
		FROM plan_snapshots
		WHERE id = $1
	`, id).Scan(&snap.ID, &snap.RecipeName, &payload, &snap.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}

	if err := unmarshalPayload(payload, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]*Snapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, recipe_name, payload, created_at
		FROM plan_snapshots
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*Snapshot
	for rows.Next() {
		var (
			snap    Snapshot
			payload []byte
		)
		if err := rows.Scan(&snap.ID, &snap.RecipeName, &payload, &snap.CreatedAt); err != nil {
			return nil, err
		}
		if err := unmarshalPayload(payload, &snap); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, &snap)
	}
	return snapshots, rows.Err()
}

func unmarshalPayload(data []byte, snap *Snapshot) error {
	var payload snapshotPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	if err := json.Unmarshal(payload.Metrics, &snap.Metrics); err != nil {
		return err
	}
	return json.Unmarshal(payload.Validation, &snap.Validation)
}
