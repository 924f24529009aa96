package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"schedlink/internal/domain"
)

type eventQuestionService struct {
	questionRepo   domain.EventQuestionRepository
	eventTypeRepo  domain.EventTypeRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewEventQuestionService creates an EventQuestionService with the given repositories.
func NewEventQuestionService(questionRepo domain.EventQuestionRepository, eventTypeRepo domain.EventTypeRepository, logger *slog.Logger, timeout time.Duration) domain.EventQuestionService {
	return &eventQuestionService{
		questionRepo:   questionRepo,
		eventTypeRepo:  eventTypeRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// ReplaceForEventType persists the drafts as the event type's question set.
// Blank questions are dropped, survivors are renumbered to a contiguous 1..N,
// and creation happens as N sequential calls in ascending order. A failure
// partway through keeps the already-created prefix: persistence is
// best-effort, never atomic, and never fails the surrounding event creation.
func (s *eventQuestionService) ReplaceForEventType(ctx context.Context, eventTypeID int64, ownerID string, drafts []*domain.EventQuestion) ([]*domain.EventQuestion, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	et, err := s.eventTypeRepo.GetByID(ctx, eventTypeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event type: %w", err)
	}
	if et.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}

	if err := s.questionRepo.DeleteByEventTypeID(ctx, eventTypeID); err != nil {
		return nil, fmt.Errorf("clear questions: %w", err)
	}

	created := make([]*domain.EventQuestion, 0, len(drafts))
	order := 0
	for _, d := range drafts {
		text := strings.TrimSpace(d.Question)
		if text == "" {
			continue
		}
		order++
		q := &domain.EventQuestion{
			EventTypeID:   eventTypeID,
			Question:      text,
			IsRequired:    d.IsRequired,
			QuestionOrder: order,
		}
		if err := s.questionRepo.Create(ctx, q); err != nil {
			s.logger.WarnContext(ctx, "question creation failed partway; keeping created prefix",
				"event_type_id", eventTypeID,
				"failed_order", order,
				"created", len(created),
				"err", err,
			)
			return created, nil
		}
		created = append(created, q)
	}
	return created, nil
}

func (s *eventQuestionService) ListByEventTypeID(ctx context.Context, eventTypeID int64) ([]*domain.EventQuestion, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventTypeRepo.GetByID(ctx, eventTypeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event type: %w", err)
	}

	questions, err := s.questionRepo.ListByEventTypeID(ctx, eventTypeID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	if questions == nil {
		questions = []*domain.EventQuestion{}
	}
	return questions, nil
}
