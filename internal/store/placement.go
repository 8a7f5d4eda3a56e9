package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreatePlacementParams represents parameters for creating a placement
type CreatePlacementParams struct {
	CampaignID         uuid.UUID
	CreativeID         *uuid.UUID
	ChannelCode        string
	ExternalCampaignID *string
	Status             string
	PublishedAt        *time.Time
}

const sqlCreatePlacement = `
INSERT INTO placements (campaign_id, creative_id, channel_code, external_campaign_id, status, published_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, campaign_id, creative_id, channel_code, external_campaign_id, external_ad_id, status, error_message, published_at, created_at
`

// CreatePlacement records a creative deployed on a channel
func (s *Store) CreatePlacement(ctx context.Context, params CreatePlacementParams) (Placement, error) {
	var placement Placement
	err := s.db.GetContext(ctx, &placement, sqlCreatePlacement,
		params.CampaignID,
		params.CreativeID,
		params.ChannelCode,
		params.ExternalCampaignID,
		params.Status,
		params.PublishedAt)
	if err != nil {
		s.logger.Error(ctx, "failed to create placement", err)
		return Placement{}, fmt.Errorf("failed to create placement: %w", err)
	}
	return placement, nil
}

const sqlListCampaignPlacements = `
SELECT id, campaign_id, creative_id, channel_code, external_campaign_id, external_ad_id, status, error_message, published_at, created_at
FROM placements
WHERE campaign_id = $1
  AND ($2::date IS NULL OR published_at::date >= $2)
  AND ($3::date IS NULL OR published_at::date <= $3)
ORDER BY created_at
`

// ListCampaignPlacements retrieves a campaign's placements, filtered on the
// publish date when a range is given
func (s *Store) ListCampaignPlacements(ctx context.Context, campaignID uuid.UUID, dateFrom, dateTo *time.Time) ([]Placement, error) {
	var placements []Placement
	err := s.db.SelectContext(ctx, &placements, sqlListCampaignPlacements, campaignID, dateFrom, dateTo)
	if err != nil {
		s.logger.Error(ctx, "failed to list placements", err)
		return nil, fmt.Errorf("failed to list placements: %w", err)
	}
	return placements, nil
}

const sqlListCampaignPlacementsByStatus = `
SELECT id, campaign_id, creative_id, channel_code, external_campaign_id, external_ad_id, status, error_message, published_at, created_at
FROM placements
WHERE campaign_id = $1 AND status = $2
ORDER BY created_at
`

// ListCampaignPlacementsByStatus retrieves a campaign's placements in one status
func (s *Store) ListCampaignPlacementsByStatus(ctx context.Context, campaignID uuid.UUID, status string) ([]Placement, error) {
	var placements []Placement
	err := s.db.SelectContext(ctx, &placements, sqlListCampaignPlacementsByStatus, campaignID, status)
	if err != nil {
		s.logger.Error(ctx, "failed to list placements by status", err)
		return nil, fmt.Errorf("failed to list placements by status: %w", err)
	}
	return placements, nil
}

const sqlUpdatePlacementStatus = `
UPDATE placements
SET status = $2, error_message = $3
WHERE id = $1
RETURNING id, campaign_id, creative_id, channel_code, external_campaign_id, external_ad_id, status, error_message, published_at, created_at
`

// UpdatePlacementStatus sets the lifecycle status of a placement
func (s *Store) UpdatePlacementStatus(ctx context.Context, placementID uuid.UUID, status string, errorMessage *string) (Placement, error) {
	var placement Placement
	err := s.db.GetContext(ctx, &placement, sqlUpdatePlacementStatus, placementID, status, errorMessage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Placement{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update placement status", err)
		return Placement{}, fmt.Errorf("failed to update placement status: %w", err)
	}
	return placement, nil
}
