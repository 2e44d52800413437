package remote

import (
	"context"
	"net/http"

	"github.com/gdg-garage/travel-booking-api/internal/config"
	"golang.org/x/oauth2/clientcredentials"
)

// NewHTTPClient returns the client shared by the flight and taxi clients.
// When a token URL is configured requests carry an OAuth2 client
// credentials token.
func NewHTTPClient(ctx context.Context, cfg *config.Config) *http.Client {
	if cfg.RemoteOAuthTokenURL == "" {
		return &http.Client{Timeout: cfg.RemoteTimeout}
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.RemoteOAuthClientID,
		ClientSecret: cfg.RemoteOAuthClientSecret,
		TokenURL:     cfg.RemoteOAuthTokenURL,
	}
	client := cc.Client(ctx)
	client.Timeout = cfg.RemoteTimeout
	return client
}
