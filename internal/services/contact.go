package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"schedlink/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type contactService struct {
	contactRepo    domain.ContactRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewContactService creates a ContactService. The email service may be nil;
// confirmation emails are then skipped.
func NewContactService(contactRepo domain.ContactRepository, emailService domain.EmailService, logger *slog.Logger, timeout time.Duration) domain.ContactService {
	return &contactService{
		contactRepo:    contactRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *contactService) Create(ctx context.Context, name, email string) (*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}

	now := time.Now()
	contact := domain.NewContact(name, email, now, now)
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create contact: %w", err)
	}

	// Confirmation is best-effort: a mail failure never fails the booking.
	if s.emailService != nil {
		if err := s.emailService.SendRegistrationConfirmation(ctx, &domain.RegistrationEmailData{
			Email: contact.Email,
			Name:  contact.Name,
		}); err != nil {
			s.logger.WarnContext(ctx, "registration confirmation email failed", "email", contact.Email, "err", err)
		}
	}

	return contact, nil
}

func (s *contactService) List(ctx context.Context, p domain.PaginationParams) (*domain.Page[*domain.Contact], error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	items, total, err := s.contactRepo.List(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	if items == nil {
		items = []*domain.Contact{}
	}
	return &domain.Page[*domain.Contact]{Items: items, Total: total}, nil
}
