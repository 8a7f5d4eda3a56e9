package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateConversionParams represents parameters for recording a conversion
type CreateConversionParams struct {
	LeadID      uuid.UUID
	CampaignID  *uuid.UUID
	ChannelCode *string
	RevenueRub  float64
	ConvertedAt time.Time
}

const sqlCreateConversion = `
INSERT INTO conversions (lead_id, campaign_id, channel_code, revenue_rub, converted_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, lead_id, campaign_id, channel_code, revenue_rub, converted_at, created_at
`

// CreateConversion records a realized sale for a lead
func (s *Store) CreateConversion(ctx context.Context, params CreateConversionParams) (Conversion, error) {
	var conversion Conversion
	err := s.db.GetContext(ctx, &conversion, sqlCreateConversion,
		params.LeadID,
		params.CampaignID,
		params.ChannelCode,
		params.RevenueRub,
		params.ConvertedAt)
	if err != nil {
		s.logger.Error(ctx, "failed to create conversion", err)
		return Conversion{}, fmt.Errorf("failed to create conversion: %w", err)
	}
	return conversion, nil
}

// CampaignConversion is one in-scope conversion joined with its lead's
// attribution source, as consumed by the per-campaign aggregator
type CampaignConversion struct {
	ID            int       `db:"id"`
	LeadID        uuid.UUID `db:"lead_id"`
	RevenueRub    float64   `db:"revenue_rub"`
	LeadUTMSource *string   `db:"lead_utm_source"`
	HasLead       bool      `db:"has_lead"`
}

const sqlListCampaignConversions = `
SELECT c.id, c.lead_id, c.revenue_rub, l.utm_source AS lead_utm_source, l.id IS NOT NULL AS has_lead
FROM conversions c
LEFT JOIN leads l ON l.id = c.lead_id
WHERE c.campaign_id = $1
  AND ($2::date IS NULL OR c.created_at::date >= $2)
  AND ($3::date IS NULL OR c.created_at::date <= $3)
ORDER BY c.id
`

// ListCampaignConversions retrieves a campaign's conversions joined with lead
// attribution. The range filters on the row's creation date, matching the
// per-campaign aggregation path.
func (s *Store) ListCampaignConversions(ctx context.Context, campaignID uuid.UUID, dateFrom, dateTo *time.Time) ([]CampaignConversion, error) {
	var conversions []CampaignConversion
	err := s.db.SelectContext(ctx, &conversions, sqlListCampaignConversions, campaignID, dateFrom, dateTo)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaign conversions", err)
		return nil, fmt.Errorf("failed to list campaign conversions: %w", err)
	}
	return conversions, nil
}
