package yandexdirect

import (
	"campaign-server/internal/observability"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Client is a mock Яндекс.Директ connector. Sandbox mode mirrors the real
// API split between sandbox and production endpoints.
type Client struct {
	token   string
	login   string
	sandbox bool
	logger  *observability.Logger
}

func New(token, login string, sandbox bool, logger *observability.Logger) *Client {
	return &Client{
		token:   token,
		login:   login,
		sandbox: sandbox,
		logger:  logger,
	}
}

// CreateCampaign registers a campaign in Директ and returns its external ID
func (c *Client) CreateCampaign(ctx context.Context, title, body string, imageURL *string, budgetRub float64) (string, error) {
	externalID := fmt.Sprintf("direct_camp_%s", strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	c.logger.Info(ctx, "direct campaign created (mock)",
		observability.Field{Key: "title", Value: title},
		observability.Field{Key: "budget_rub", Value: budgetRub},
		observability.Field{Key: "sandbox", Value: c.sandbox},
		observability.Field{Key: "external_campaign_id", Value: externalID},
	)
	return externalID, nil
}

// PauseCampaign pauses a campaign in Директ
func (c *Client) PauseCampaign(ctx context.Context, externalCampaignID string) error {
	c.logger.Info(ctx, "direct campaign paused (mock)",
		observability.Field{Key: "external_campaign_id", Value: externalCampaignID},
	)
	return nil
}

// ResumeCampaign resumes a paused campaign in Директ
func (c *Client) ResumeCampaign(ctx context.Context, externalCampaignID string) error {
	c.logger.Info(ctx, "direct campaign resumed (mock)",
		observability.Field{Key: "external_campaign_id", Value: externalCampaignID},
	)
	return nil
}
