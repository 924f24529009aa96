package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"schedlink/internal/domain"
)

type contactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) Create(ctx context.Context, c *domain.Contact) error {
	query := `
		INSERT INTO contacts (name, email, company, phone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		c.Name, c.Email, c.Company, c.Phone, c.Status, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func scanContact(row interface{ Scan(dest ...any) error }) (*domain.Contact, error) {
	c := &domain.Contact{}
	var companyNull, phoneNull sql.NullString
	var lastEventNull sql.NullTime
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &companyNull, &phoneNull, &c.Status, &lastEventNull,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if companyNull.Valid {
		c.Company = &companyNull.String
	}
	if phoneNull.Valid {
		c.Phone = &phoneNull.String
	}
	if lastEventNull.Valid {
		c.LastEventDate = &lastEventNull.Time
	}
	return c, nil
}

const contactColumns = `id, name, email, company, phone, status, last_event_date, created_at, updated_at`

func (r *contactRepository) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE id = $1
	`
	c, err := scanContact(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *contactRepository) GetByEmail(ctx context.Context, email string) (*domain.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE email = $1
	`
	c, err := scanContact(r.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *contactRepository) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Contact, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, p.PageSize, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, err
		}
		contacts = append(contacts, c)
	}
	return contacts, total, rows.Err()
}
