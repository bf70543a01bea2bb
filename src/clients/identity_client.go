package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bizpulse-api/src/internal/config"
	"bizpulse-api/src/internal/models"

	"github.com/sirupsen/logrus"
)

const sessionDataPath = "/auth/v1/env/oauth/session-data"

// IdentityClient exchanges provider-issued exchange ids for user data.
type IdentityClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewIdentityClient(cfg *config.IdentityProvider) *IdentityClient {
	return &IdentityClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// GetSessionData trades an exchange id for the provider's session data.
// Any non-200 answer is reported as models.ErrUpstreamAuth.
func (c *IdentityClient) GetSessionData(ctx context.Context, exchangeID string) (*models.ProviderSessionData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+sessionDataPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Session-ID", exchangeID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call identity provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logrus.WithField("status", resp.StatusCode).Warn("Identity provider rejected session exchange")
		return nil, fmt.Errorf("%w: status %d", models.ErrUpstreamAuth, resp.StatusCode)
	}

	var data models.ProviderSessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode session data: %w", err)
	}

	if data.ID == "" || data.SessionToken == "" {
		return nil, fmt.Errorf("%w: incomplete session data", models.ErrUpstreamAuth)
	}

	return &data, nil
}
