// Package oauth performs the opaque authorization-code exchange with
// calendar and meeting providers. The providers' token semantics are
// external collaborators; this adapter only reports success or failure of
// the exchange call.
package oauth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"schedlink/internal/domain"
)

// ProviderEndpoints holds the authorize and token URLs for one provider.
type ProviderEndpoints struct {
	AuthorizeURL string
	TokenURL     string
	ClientID     string
	RedirectURI  string
}

// EndpointsFromEnv builds the provider endpoint table from environment
// variables. Providers without a client id configured are left out.
func EndpointsFromEnv(baseURL string) map[string]ProviderEndpoints {
	redirect := strings.TrimSuffix(baseURL, "/") + "/api/integrations/callback"
	table := map[string]ProviderEndpoints{}
	if id := os.Getenv("GOOGLE_CLIENT_ID"); id != "" {
		table[domain.ProviderGoogle] = ProviderEndpoints{
			AuthorizeURL: "https://accounts.google.com/o/oauth2/v2/auth",
			TokenURL:     "https://oauth2.googleapis.com/token",
			ClientID:     id,
			RedirectURI:  redirect,
		}
	}
	if id := os.Getenv("ZOOM_CLIENT_ID"); id != "" {
		table[domain.ProviderZoom] = ProviderEndpoints{
			AuthorizeURL: "https://zoom.us/oauth/authorize",
			TokenURL:     "https://zoom.us/oauth/token",
			ClientID:     id,
			RedirectURI:  redirect,
		}
	}
	if id := os.Getenv("TEAMS_CLIENT_ID"); id != "" {
		table[domain.ProviderTeams] = ProviderEndpoints{
			AuthorizeURL: "https://login.microsoftonline.com/common/oauth2/v2.0/authorize",
			TokenURL:     "https://login.microsoftonline.com/common/oauth2/v2.0/token",
			ClientID:     id,
			RedirectURI:  redirect,
		}
	}
	return table
}

type httpExchanger struct {
	providers map[string]ProviderEndpoints
	client    *http.Client
}

// NewHTTPExchanger returns an OAuthExchanger backed by the given provider
// endpoint table.
func NewHTTPExchanger(providers map[string]ProviderEndpoints, client *http.Client) domain.OAuthExchanger {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpExchanger{providers: providers, client: client}
}

func (e *httpExchanger) AuthURL(provider, state string) (string, error) {
	p, ok := e.providers[provider]
	if !ok {
		return "", fmt.Errorf("no endpoints configured for provider %q", provider)
	}
	q := url.Values{}
	q.Set("client_id", p.ClientID)
	q.Set("redirect_uri", p.RedirectURI)
	q.Set("response_type", "code")
	q.Set("state", state)
	return p.AuthorizeURL + "?" + q.Encode(), nil
}

func (e *httpExchanger) Exchange(ctx context.Context, provider, code string) error {
	p, ok := e.providers[provider]
	if !ok {
		return fmt.Errorf("no endpoints configured for provider %q", provider)
	}
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", p.ClientID)
	form.Set("redirect_uri", p.RedirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status: %d", resp.StatusCode)
	}
	return nil
}
