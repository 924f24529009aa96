package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"schedlink/internal/domain"
)

const uniqueViolation = "23505"

type eventTypeRepository struct {
	DB *sql.DB
}

func NewEventTypeRepository(db *sql.DB) domain.EventTypeRepository {
	return &eventTypeRepository{DB: db}
}

const eventTypeColumns = `id, owner_id, name, description, duration_minutes, location_type, custom_url,
		requires_confirmation, min_booking_notice, buffer_time, daily_limit, notifications_enabled,
		created_at, updated_at`

func (r *eventTypeRepository) Create(ctx context.Context, et *domain.EventType) error {
	query := `
		INSERT INTO event_types (owner_id, name, description, duration_minutes, location_type, custom_url,
			requires_confirmation, min_booking_notice, buffer_time, daily_limit, notifications_enabled,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		et.OwnerID, et.Name, et.Description, et.DurationMinutes, et.LocationType, et.CustomURL,
		et.RequiresConfirmation, et.MinBookingNotice, et.BufferTime, et.DailyLimit, et.NotificationsEnabled,
		et.CreatedAt, et.UpdatedAt,
	).Scan(&et.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.ErrDuplicateURL
		}
		return err
	}
	return nil
}

func scanEventType(row interface{ Scan(dest ...any) error }) (*domain.EventType, error) {
	et := &domain.EventType{}
	err := row.Scan(
		&et.ID, &et.OwnerID, &et.Name, &et.Description, &et.DurationMinutes, &et.LocationType, &et.CustomURL,
		&et.RequiresConfirmation, &et.MinBookingNotice, &et.BufferTime, &et.DailyLimit, &et.NotificationsEnabled,
		&et.CreatedAt, &et.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return et, nil
}

func (r *eventTypeRepository) GetByID(ctx context.Context, id int64) (*domain.EventType, error) {
	query := `
		SELECT ` + eventTypeColumns + `
		FROM event_types
		WHERE id = $1
	`
	et, err := scanEventType(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return et, nil
}

func (r *eventTypeRepository) GetByCustomURL(ctx context.Context, customURL string) (*domain.EventType, error) {
	query := `
		SELECT ` + eventTypeColumns + `
		FROM event_types
		WHERE custom_url = $1
	`
	et, err := scanEventType(r.DB.QueryRowContext(ctx, query, customURL))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return et, nil
}

func (r *eventTypeRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.EventType, error) {
	query := `
		SELECT ` + eventTypeColumns + `
		FROM event_types
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	list := make([]*domain.EventType, 0)
	for rows.Next() {
		et, err := scanEventType(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, et)
	}
	return list, rows.Err()
}

func (r *eventTypeRepository) Update(ctx context.Context, id int64, upd *domain.EventTypeUpdate) (*domain.EventType, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	add := func(col string, v interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, v)
		n++
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.DurationMinutes != nil {
		add("duration_minutes", *upd.DurationMinutes)
	}
	if upd.LocationType != nil {
		add("location_type", *upd.LocationType)
	}
	if upd.CustomURL != nil {
		add("custom_url", *upd.CustomURL)
	}
	if upd.RequiresConfirmation != nil {
		add("requires_confirmation", *upd.RequiresConfirmation)
	}
	if upd.MinBookingNotice != nil {
		add("min_booking_notice", *upd.MinBookingNotice)
	}
	if upd.BufferTime != nil {
		add("buffer_time", *upd.BufferTime)
	}
	if upd.DailyLimit != nil {
		add("daily_limit", *upd.DailyLimit)
	}
	if upd.NotificationsEnabled != nil {
		add("notifications_enabled", *upd.NotificationsEnabled)
	}
	if n == 1 {
		// No fields to update; just fetch the current row.
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE event_types SET %s
		WHERE id = $%d
		RETURNING `+eventTypeColumns+`
	`, strings.Join(setClauses, ", "), n)
	et, err := scanEventType(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, domain.ErrDuplicateURL
		}
		return nil, err
	}
	return et, nil
}

func (r *eventTypeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM event_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
