package domain

import (
	"context"
	"time"
)

// Contact statuses. Contacts created by the public booking flow start as "active".
const (
	ContactStatusActive   = "active"
	ContactStatusInactive = "inactive"
)

// Contact is a person who booked time against an event type.
// The booking flow only creates contacts, never edits them.
// swagger:model Contact
type Contact struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Company       *string    `json:"company,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	Status        string     `json:"status"`
	LastEventDate *time.Time `json:"last_event_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewContact returns a new active Contact. ID is set by the repository on create.
func NewContact(name, email string, createdAt, updatedAt time.Time) *Contact {
	return &Contact{
		Name:      name,
		Email:     email,
		Status:    ContactStatusActive,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ContactRepository defines the interface for contact storage.
type ContactRepository interface {
	Create(ctx context.Context, c *Contact) error
	GetByID(ctx context.Context, id int64) (*Contact, error)
	GetByEmail(ctx context.Context, email string) (*Contact, error)
	List(ctx context.Context, p PaginationParams) ([]*Contact, int, error)
}

// ContactService defines contact creation and listing for the booking flow
// and the dashboard contacts table.
type ContactService interface {
	// Create creates a contact from a validated booking submission.
	// Returns ErrDuplicateEmail when the email is already registered.
	Create(ctx context.Context, name, email string) (*Contact, error)
	List(ctx context.Context, p PaginationParams) (*Page[*Contact], error)
}
