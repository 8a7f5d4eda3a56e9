package avito

import (
	"campaign-server/internal/observability"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Client is a mock Avito connector standing in for the XML item upload API.
type Client struct {
	clientID string
	logger   *observability.Logger
}

func New(clientID string, logger *observability.Logger) *Client {
	return &Client{
		clientID: clientID,
		logger:   logger,
	}
}

// CreateAd uploads an ad to Avito and returns its external ID
func (c *Client) CreateAd(ctx context.Context, title, body string, imageURL *string) (string, error) {
	externalID := fmt.Sprintf("avito_ad_%s", strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	c.logger.Info(ctx, "avito ad created (mock)",
		observability.Field{Key: "title", Value: title},
		observability.Field{Key: "external_ad_id", Value: externalID},
	)
	return externalID, nil
}

// PauseAd pauses an ad on Avito
func (c *Client) PauseAd(ctx context.Context, externalAdID string) error {
	c.logger.Info(ctx, "avito ad paused (mock)",
		observability.Field{Key: "external_ad_id", Value: externalAdID},
	)
	return nil
}

// ResumeAd resumes a paused ad on Avito
func (c *Client) ResumeAd(ctx context.Context, externalAdID string) error {
	c.logger.Info(ctx, "avito ad resumed (mock)",
		observability.Field{Key: "external_ad_id", Value: externalAdID},
	)
	return nil
}
