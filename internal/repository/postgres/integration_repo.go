package postgres

import (
	"context"
	"database/sql"
	"errors"

	"schedlink/internal/domain"
)

type integrationRepository struct {
	DB *sql.DB
}

func NewIntegrationRepository(db *sql.DB) domain.IntegrationRepository {
	return &integrationRepository{DB: db}
}

func (r *integrationRepository) Upsert(ctx context.Context, in *domain.Integration) error {
	query := `
		INSERT INTO integrations (user_id, provider, status, connected_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, provider)
		DO UPDATE SET status = EXCLUDED.status, connected_at = EXCLUDED.connected_at
		RETURNING id
	`
	var connectedAt sql.NullTime
	if in.ConnectedAt != nil {
		connectedAt = sql.NullTime{Time: *in.ConnectedAt, Valid: true}
	}
	return r.DB.QueryRowContext(ctx, query, in.UserID, in.Provider, in.Status, connectedAt).Scan(&in.ID)
}

func (r *integrationRepository) GetByUserAndProvider(ctx context.Context, userID, provider string) (*domain.Integration, error) {
	query := `
		SELECT id, user_id, provider, status, connected_at
		FROM integrations
		WHERE user_id = $1 AND provider = $2
	`
	in := &domain.Integration{}
	var connectedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, userID, provider).Scan(&in.ID, &in.UserID, &in.Provider, &in.Status, &connectedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if connectedAt.Valid {
		in.ConnectedAt = &connectedAt.Time
	}
	return in, nil
}

func (r *integrationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Integration, error) {
	query := `
		SELECT id, user_id, provider, status, connected_at
		FROM integrations
		WHERE user_id = $1
		ORDER BY provider ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := make([]*domain.Integration, 0)
	for rows.Next() {
		in := &domain.Integration{}
		var connectedAt sql.NullTime
		if err := rows.Scan(&in.ID, &in.UserID, &in.Provider, &in.Status, &connectedAt); err != nil {
			return nil, err
		}
		if connectedAt.Valid {
			in.ConnectedAt = &connectedAt.Time
		}
		list = append(list, in)
	}
	return list, rows.Err()
}
