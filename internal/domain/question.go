package domain

import "context"

// EventQuestion is a host-defined custom question attached to an event type.
// QuestionOrder is the authoritative display and collection order: after any
// insert, delete, or move the orders of an event's questions are exactly the
// contiguous sequence 1..N with no gaps or duplicates.
// swagger:model EventQuestion
type EventQuestion struct {
	ID            int64  `json:"id,omitempty"`
	EventTypeID   int64  `json:"event_type_id,omitempty"`
	Question      string `json:"question"`
	IsRequired    bool   `json:"is_required"`
	QuestionOrder int    `json:"question_order"`
}

// EventQuestionRepository defines storage operations for event questions.
type EventQuestionRepository interface {
	Create(ctx context.Context, q *EventQuestion) error
	ListByEventTypeID(ctx context.Context, eventTypeID int64) ([]*EventQuestion, error)
	DeleteByEventTypeID(ctx context.Context, eventTypeID int64) error
}

// EventQuestionService defines persistence of question drafts for an event type.
type EventQuestionService interface {
	// ReplaceForEventType persists the given drafts for the event type in
	// ascending question order. Blank questions are filtered out beforehand.
	// Persistence is best-effort: a failure partway through keeps the
	// already-created prefix and is reported, not rolled back.
	ReplaceForEventType(ctx context.Context, eventTypeID int64, ownerID string, drafts []*EventQuestion) ([]*EventQuestion, error)
	ListByEventTypeID(ctx context.Context, eventTypeID int64) ([]*EventQuestion, error)
}
