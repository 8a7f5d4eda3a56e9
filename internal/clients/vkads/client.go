package vkads

import (
	"campaign-server/internal/observability"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Client is a mock VK Ads connector. There is no public VK Ads API for
// campaign creation, so placements get fake external IDs until a myTarget
// integration lands.
type Client struct {
	appID  string
	logger *observability.Logger
}

func New(appID string, logger *observability.Logger) *Client {
	return &Client{
		appID:  appID,
		logger: logger,
	}
}

// CreateCampaign registers a campaign on VK Ads and returns its external ID
func (c *Client) CreateCampaign(ctx context.Context, title, body string, imageURL *string, budgetRub float64) (string, error) {
	externalID := fmt.Sprintf("vk_camp_%s", strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	c.logger.Info(ctx, "vk campaign created (mock)",
		observability.Field{Key: "title", Value: title},
		observability.Field{Key: "budget_rub", Value: budgetRub},
		observability.Field{Key: "external_campaign_id", Value: externalID},
	)
	return externalID, nil
}

// PauseCampaign pauses a campaign on VK Ads
func (c *Client) PauseCampaign(ctx context.Context, externalCampaignID string) error {
	c.logger.Info(ctx, "vk campaign paused (mock)",
		observability.Field{Key: "external_campaign_id", Value: externalCampaignID},
	)
	return nil
}

// ResumeCampaign resumes a paused campaign on VK Ads
func (c *Client) ResumeCampaign(ctx context.Context, externalCampaignID string) error {
	c.logger.Info(ctx, "vk campaign resumed (mock)",
		observability.Field{Key: "external_campaign_id", Value: externalCampaignID},
	)
	return nil
}
