package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Title         string
	SKU           string
	BudgetRub     float64
	TargetCACRub  float64
	TargetROAS    float64
	Channels      []string
	ABTestEnabled bool
}

// UpdateCampaignParams represents parameters for partially updating a campaign
type UpdateCampaignParams struct {
	Title         *string
	BudgetRub     *float64
	TargetCACRub  *float64
	TargetROAS    *float64
	Status        *string
	ABTestEnabled *bool
}

// ListCampaignsParams represents pagination and filtering for campaign listing
type ListCampaignsParams struct {
	Page     int
	PageSize int
	Status   *string
}

// ListCampaignsResult is one page of campaigns plus the unpaginated total
type ListCampaignsResult struct {
	Campaigns []Campaign
	Total     int
}

const sqlCreateCampaign = `
INSERT INTO campaigns (title, sku, budget_rub, target_cac_rub, target_roas, channels, ab_test_enabled)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, title, sku, budget_rub, target_cac_rub, target_roas, channels, status, ab_test_enabled, created_at, updated_at
`

// CreateCampaign creates a new campaign
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.Title,
		params.SKU,
		params.BudgetRub,
		params.TargetCACRub,
		params.TargetROAS,
		StringArray(params.Channels),
		params.ABTestEnabled)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `
SELECT id, title, sku, budget_rub, target_cac_rub, target_roas, channels, status, ab_test_enabled, created_at, updated_at
FROM campaigns
WHERE id = $1
`

// GetCampaignByID retrieves a campaign by its ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign", err)
		return Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

const sqlListAllCampaigns = `
SELECT id, title, sku, budget_rub, target_cac_rub, target_roas, channels, status, ab_test_enabled, created_at, updated_at
FROM campaigns
`

// ListAllCampaigns retrieves every campaign without pagination. Used by the
// analytics aggregators which fold over the whole portfolio.
func (s *Store) ListAllCampaigns(ctx context.Context) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlListAllCampaigns)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlListCampaigns = `
SELECT id, title, sku, budget_rub, target_cac_rub, target_roas, channels, status, ab_test_enabled, created_at, updated_at
FROM campaigns
WHERE ($1::text IS NULL OR status = $1)
ORDER BY created_at DESC
OFFSET $2 LIMIT $3
`

const sqlCountCampaigns = `
SELECT COUNT(*) FROM campaigns
WHERE ($1::text IS NULL OR status = $1)
`

// ListCampaigns retrieves one page of campaigns, newest first
func (s *Store) ListCampaigns(ctx context.Context, params ListCampaignsParams) (ListCampaignsResult, error) {
	var total int
	if err := s.db.GetContext(ctx, &total, sqlCountCampaigns, params.Status); err != nil {
		s.logger.Error(ctx, "failed to count campaigns", err)
		return ListCampaignsResult{}, fmt.Errorf("failed to count campaigns: %w", err)
	}

	offset := (params.Page - 1) * params.PageSize
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaigns, params.Status, offset, params.PageSize)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return ListCampaignsResult{}, fmt.Errorf("failed to list campaigns: %w", err)
	}

	return ListCampaignsResult{Campaigns: campaigns, Total: total}, nil
}

const sqlUpdateCampaign = `
UPDATE campaigns
SET title = COALESCE($2, title),
    budget_rub = COALESCE($3, budget_rub),
    target_cac_rub = COALESCE($4, target_cac_rub),
    target_roas = COALESCE($5, target_roas),
    status = COALESCE($6, status),
    ab_test_enabled = COALESCE($7, ab_test_enabled),
    updated_at = NOW()
WHERE id = $1
RETURNING id, title, sku, budget_rub, target_cac_rub, target_roas, channels, status, ab_test_enabled, created_at, updated_at
`

// UpdateCampaign partially updates a campaign; nil params keep current values
func (s *Store) UpdateCampaign(ctx context.Context, campaignID uuid.UUID, params UpdateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlUpdateCampaign,
		campaignID,
		params.Title,
		params.BudgetRub,
		params.TargetCACRub,
		params.TargetROAS,
		params.Status,
		params.ABTestEnabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update campaign", err)
		return Campaign{}, fmt.Errorf("failed to update campaign: %w", err)
	}
	return campaign, nil
}

const sqlDeleteCampaign = `DELETE FROM campaigns WHERE id = $1`

// DeleteCampaign removes a campaign and its dependent rows (FK cascade)
func (s *Store) DeleteCampaign(ctx context.Context, campaignID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete campaign", err)
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
