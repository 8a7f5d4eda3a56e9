package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateCreativeParams represents parameters for creating a creative
type CreateCreativeParams struct {
	CampaignID  uuid.UUID
	Variant     string
	Title       string
	Body        string
	ImageURL    *string
	CTA         *string
	GeneratedBy string
}

const sqlCreateCreative = `
INSERT INTO creatives (campaign_id, variant, title, body, image_url, cta, generated_by)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, campaign_id, variant, title, body, image_url, cta, generated_by, moderation_status, created_at
`

// CreateCreative creates a new creative for a campaign
func (s *Store) CreateCreative(ctx context.Context, params CreateCreativeParams) (Creative, error) {
	var creative Creative
	err := s.db.GetContext(ctx, &creative, sqlCreateCreative,
		params.CampaignID,
		params.Variant,
		params.Title,
		params.Body,
		params.ImageURL,
		params.CTA,
		params.GeneratedBy)
	if err != nil {
		s.logger.Error(ctx, "failed to create creative", err)
		return Creative{}, fmt.Errorf("failed to create creative: %w", err)
	}
	return creative, nil
}

const sqlGetCreativeByID = `
SELECT id, campaign_id, variant, title, body, image_url, cta, generated_by, moderation_status, created_at
FROM creatives
WHERE id = $1
`

// GetCreativeByID retrieves a creative by its ID
func (s *Store) GetCreativeByID(ctx context.Context, creativeID uuid.UUID) (Creative, error) {
	var creative Creative
	err := s.db.GetContext(ctx, &creative, sqlGetCreativeByID, creativeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Creative{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get creative", err)
		return Creative{}, fmt.Errorf("failed to get creative: %w", err)
	}
	return creative, nil
}

const sqlListCreativesByCampaign = `
SELECT id, campaign_id, variant, title, body, image_url, cta, generated_by, moderation_status, created_at
FROM creatives
WHERE campaign_id = $1
  AND ($2::text IS NULL OR moderation_status = $2)
ORDER BY variant
`

// ListCreativesByCampaign retrieves a campaign's creatives, optionally filtered
// by moderation status
func (s *Store) ListCreativesByCampaign(ctx context.Context, campaignID uuid.UUID, moderationStatus *string) ([]Creative, error) {
	var creatives []Creative
	err := s.db.SelectContext(ctx, &creatives, sqlListCreativesByCampaign, campaignID, moderationStatus)
	if err != nil {
		s.logger.Error(ctx, "failed to list creatives", err)
		return nil, fmt.Errorf("failed to list creatives: %w", err)
	}
	return creatives, nil
}

const sqlUpdateCreativeModeration = `
UPDATE creatives
SET moderation_status = $2
WHERE id = $1
RETURNING id, campaign_id, variant, title, body, image_url, cta, generated_by, moderation_status, created_at
`

// UpdateCreativeModeration sets the moderation status of a creative
func (s *Store) UpdateCreativeModeration(ctx context.Context, creativeID uuid.UUID, status string) (Creative, error) {
	var creative Creative
	err := s.db.GetContext(ctx, &creative, sqlUpdateCreativeModeration, creativeID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Creative{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update creative moderation status", err)
		return Creative{}, fmt.Errorf("failed to update creative moderation status: %w", err)
	}
	return creative, nil
}

const sqlDeleteCreative = `DELETE FROM creatives WHERE id = $1`

// DeleteCreative removes a creative
func (s *Store) DeleteCreative(ctx context.Context, creativeID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteCreative, creativeID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete creative", err)
		return fmt.Errorf("failed to delete creative: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete creative: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
