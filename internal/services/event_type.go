package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"schedlink/internal/domain"
)

const (
	defaultDurationMinutes = 30
	minCustomURLLen        = 3
	maxCustomURLLen        = 64
)

// customURLRegexp matches lowercase slugs: letters, digits, hyphens.
var customURLRegexp = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type eventTypeService struct {
	eventTypeRepo  domain.EventTypeRepository
	contextTimeout time.Duration
}

// NewEventTypeService creates an EventTypeService with the given repository.
func NewEventTypeService(eventTypeRepo domain.EventTypeRepository, timeout time.Duration) domain.EventTypeService {
	return &eventTypeService{
		eventTypeRepo:  eventTypeRepo,
		contextTimeout: timeout,
	}
}

func (s *eventTypeService) Create(ctx context.Context, et *domain.EventType) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if et.OwnerID == "" {
		return fmt.Errorf("%w: owner is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(et.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	et.CustomURL = normalizeCustomURL(et.CustomURL)
	if msg := customURLShapeError(et.CustomURL); msg != "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, msg)
	}
	if et.DurationMinutes <= 0 {
		et.DurationMinutes = defaultDurationMinutes
	}

	et.CreatedAt = time.Now()
	et.UpdatedAt = time.Now()

	if err := s.eventTypeRepo.Create(ctx, et); err != nil {
		if errors.Is(err, domain.ErrDuplicateURL) {
			return domain.ErrDuplicateURL
		}
		return fmt.Errorf("create event type: %w", err)
	}
	return nil
}

func (s *eventTypeService) GetByID(ctx context.Context, id int64) (*domain.EventType, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	et, err := s.eventTypeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event type: %w", err)
	}
	return et, nil
}

func (s *eventTypeService) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.EventType, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, err := s.eventTypeRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list event types: %w", err)
	}
	if list == nil {
		list = []*domain.EventType{}
	}
	return list, nil
}

func (s *eventTypeService) Update(ctx context.Context, id int64, ownerID string, upd *domain.EventTypeUpdate) (*domain.EventType, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	et, err := s.eventTypeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event type: %w", err)
	}
	if et.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.eventTypeRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event type: %w", err)
	}
	return updated, nil
}

func (s *eventTypeService) Delete(ctx context.Context, id int64, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	et, err := s.eventTypeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event type: %w", err)
	}
	if et.OwnerID != ownerID {
		return domain.ErrForbidden
	}
	if err := s.eventTypeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event type: %w", err)
	}
	return nil
}

func (s *eventTypeService) ValidateURL(ctx context.Context, customURL string) (*domain.URLValidation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	customURL = normalizeCustomURL(customURL)
	if msg := customURLShapeError(customURL); msg != "" {
		return &domain.URLValidation{Valid: false, Message: msg}, nil
	}

	_, err := s.eventTypeRepo.GetByCustomURL(ctx, customURL)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.URLValidation{Valid: true}, nil
		}
		return nil, fmt.Errorf("check custom url: %w", err)
	}
	return &domain.URLValidation{Valid: false, Message: "custom url is already taken"}, nil
}

func normalizeCustomURL(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}

// customURLShapeError returns a user-facing message when the slug is
// malformed, or "" when the shape is acceptable.
func customURLShapeError(u string) string {
	if len(u) < minCustomURLLen {
		return fmt.Sprintf("custom url must be at least %d characters", minCustomURLLen)
	}
	if len(u) > maxCustomURLLen {
		return fmt.Sprintf("custom url must be at most %d characters", maxCustomURLLen)
	}
	if !customURLRegexp.MatchString(u) {
		return "custom url may contain only lowercase letters, digits, and hyphens"
	}
	return ""
}
