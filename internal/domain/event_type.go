package domain

import (
	"context"
	"time"
)

// EventType is a host-defined bookable meeting template.
// swagger:model EventType
type EventType struct {
	ID                   int64     `json:"id"`
	OwnerID              string    `json:"owner_id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	DurationMinutes      int       `json:"duration_minutes"`
	LocationType         string    `json:"location_type"`
	CustomURL            string    `json:"custom_url"`
	RequiresConfirmation bool      `json:"requires_confirmation"`
	MinBookingNotice     int       `json:"min_booking_notice"`
	BufferTime           int       `json:"buffer_time"`
	DailyLimit           int       `json:"daily_limit"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// NewEventType returns a new EventType with the given fields. ID is set by the repository on create.
func NewEventType(ownerID, name, description, locationType, customURL string, durationMinutes int, createdAt, updatedAt time.Time) *EventType {
	return &EventType{
		OwnerID:         ownerID,
		Name:            name,
		Description:     description,
		LocationType:    locationType,
		CustomURL:       customURL,
		DurationMinutes: durationMinutes,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// EventTypeUpdate carries the optional fields of a partial event type update.
// Nil means "leave unchanged".
type EventTypeUpdate struct {
	Name                 *string
	Description          *string
	DurationMinutes      *int
	LocationType         *string
	CustomURL            *string
	RequiresConfirmation *bool
	MinBookingNotice     *int
	BufferTime           *int
	DailyLimit           *int
	NotificationsEnabled *bool
}

// EventTypeRepository defines the interface for event type storage.
type EventTypeRepository interface {
	Create(ctx context.Context, et *EventType) error
	GetByID(ctx context.Context, id int64) (*EventType, error)
	GetByCustomURL(ctx context.Context, customURL string) (*EventType, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*EventType, error)
	Update(ctx context.Context, id int64, upd *EventTypeUpdate) (*EventType, error)
	Delete(ctx context.Context, id int64) error
}

// URLValidation is the outcome of a custom URL availability check.
type URLValidation struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// EventTypeService defines the business logic for host-facing event type management.
type EventTypeService interface {
	Create(ctx context.Context, et *EventType) error
	GetByID(ctx context.Context, id int64) (*EventType, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*EventType, error)
	Update(ctx context.Context, id int64, ownerID string, upd *EventTypeUpdate) (*EventType, error)
	Delete(ctx context.Context, id int64, ownerID string) error
	// ValidateURL checks shape and availability of a candidate custom URL.
	// A malformed or taken URL is reported in the result, not as an error.
	ValidateURL(ctx context.Context, customURL string) (*URLValidation, error)
}
