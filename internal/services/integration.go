package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"schedlink/internal/domain"
)

const stateTTL = 10 * time.Minute

type pendingState struct {
	userID   string
	provider string
	expires  time.Time
}

type integrationService struct {
	integrationRepo domain.IntegrationRepository
	exchanger       domain.OAuthExchanger
	contextTimeout  time.Duration

	mu     sync.Mutex
	states map[string]pendingState
}

// NewIntegrationService creates an IntegrationService. OAuth state nonces are
// held in memory with a short TTL; a restart simply forces a fresh AuthStart.
func NewIntegrationService(integrationRepo domain.IntegrationRepository, exchanger domain.OAuthExchanger, timeout time.Duration) domain.IntegrationService {
	return &integrationService{
		integrationRepo: integrationRepo,
		exchanger:       exchanger,
		contextTimeout:  timeout,
		states:          make(map[string]pendingState),
	}
}

func (s *integrationService) AuthStart(ctx context.Context, userID, provider string) (string, error) {
	if !domain.KnownProvider(provider) {
		return "", fmt.Errorf("%w: unknown provider %q", domain.ErrInvalidInput, provider)
	}

	state := uuid.NewString()
	s.mu.Lock()
	s.pruneLocked()
	s.states[state] = pendingState{userID: userID, provider: provider, expires: time.Now().Add(stateTTL)}
	s.mu.Unlock()

	authURL, err := s.exchanger.AuthURL(provider, state)
	if err != nil {
		return "", fmt.Errorf("build auth url: %w", err)
	}
	return authURL, nil
}

func (s *integrationService) AuthCallback(ctx context.Context, code, state string) (*domain.Integration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	s.mu.Lock()
	pending, ok := s.states[state]
	delete(s.states, state)
	s.mu.Unlock()
	if !ok || time.Now().After(pending.expires) {
		return nil, fmt.Errorf("%w: invalid or expired state", domain.ErrInvalidInput)
	}

	if err := s.exchanger.Exchange(ctx, pending.provider, code); err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	now := time.Now()
	in := &domain.Integration{
		UserID:      pending.userID,
		Provider:    pending.provider,
		Status:      domain.IntegrationStatusConnected,
		ConnectedAt: &now,
	}
	if err := s.integrationRepo.Upsert(ctx, in); err != nil {
		return nil, fmt.Errorf("save integration: %w", err)
	}
	return in, nil
}

func (s *integrationService) Disconnect(ctx context.Context, userID, provider string) (*domain.Integration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.integrationRepo.GetByUserAndProvider(ctx, userID, provider)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotConnected
		}
		return nil, fmt.Errorf("get integration: %w", err)
	}

	existing.Status = domain.IntegrationStatusDisconnected
	existing.ConnectedAt = nil
	if err := s.integrationRepo.Upsert(ctx, existing); err != nil {
		return nil, fmt.Errorf("save integration: %w", err)
	}
	return existing, nil
}

func (s *integrationService) List(ctx context.Context, userID string) ([]*domain.Integration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	list, err := s.integrationRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list integrations: %w", err)
	}
	if list == nil {
		list = []*domain.Integration{}
	}
	return list, nil
}

func (s *integrationService) pruneLocked() {
	now := time.Now()
	for k, v := range s.states {
		if now.After(v.expires) {
			delete(s.states, k)
		}
	}
}
