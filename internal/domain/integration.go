package domain

import (
	"context"
	"time"
)

// Integration providers supported for calendar and meeting links.
const (
	ProviderGoogle = "google"
	ProviderZoom   = "zoom"
	ProviderTeams  = "teams"
)

// Integration statuses.
const (
	IntegrationStatusConnected    = "connected"
	IntegrationStatusDisconnected = "disconnected"
)

// Integration records a host's connection to an external calendar or
// meeting provider. The OAuth exchange itself is opaque to this system;
// only connect/disconnect/status is tracked.
// swagger:model Integration
type Integration struct {
	ID          int64      `json:"id"`
	UserID      string     `json:"user_id"`
	Provider    string     `json:"provider"`
	Status      string     `json:"status"`
	ConnectedAt *time.Time `json:"connected_at,omitempty"`
}

// KnownProvider reports whether name is a supported provider.
func KnownProvider(name string) bool {
	switch name {
	case ProviderGoogle, ProviderZoom, ProviderTeams:
		return true
	}
	return false
}

// IntegrationRepository defines storage operations for provider integrations.
type IntegrationRepository interface {
	Upsert(ctx context.Context, in *Integration) error
	GetByUserAndProvider(ctx context.Context, userID, provider string) (*Integration, error)
	ListByUserID(ctx context.Context, userID string) ([]*Integration, error)
}

// OAuthExchanger performs the opaque authorization-code exchange with a provider.
type OAuthExchanger interface {
	AuthURL(provider, state string) (string, error)
	Exchange(ctx context.Context, provider, code string) error
}

// IntegrationService defines connect/disconnect/status for provider integrations.
type IntegrationService interface {
	// AuthStart returns the provider authorization URL carrying a fresh state nonce.
	AuthStart(ctx context.Context, userID, provider string) (authURL string, err error)
	// AuthCallback exchanges the authorization code and marks the provider
	// connected. The user and provider are recovered from the state nonce,
	// so the redirect endpoint needs no bearer token.
	AuthCallback(ctx context.Context, code, state string) (*Integration, error)
	Disconnect(ctx context.Context, userID, provider string) (*Integration, error)
	List(ctx context.Context, userID string) ([]*Integration, error)
}
