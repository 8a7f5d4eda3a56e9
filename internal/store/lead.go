package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UpsertLeadParams represents parameters for creating or refreshing a lead.
// The phone number is the identity key.
type UpsertLeadParams struct {
	Phone        string
	UTMSource    *string
	UTMCampaign  *string
	UTMContent   *string
	UTMMedium    *string
	UTMTerm      *string
	FirstTouchAt *time.Time
}

const sqlUpsertLead = `
INSERT INTO leads (phone, utm_source, utm_campaign, utm_content, utm_medium, utm_term, first_touch_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (phone) DO UPDATE
SET utm_source = COALESCE(EXCLUDED.utm_source, leads.utm_source),
    utm_campaign = COALESCE(EXCLUDED.utm_campaign, leads.utm_campaign),
    utm_content = COALESCE(EXCLUDED.utm_content, leads.utm_content),
    utm_medium = COALESCE(EXCLUDED.utm_medium, leads.utm_medium),
    utm_term = COALESCE(EXCLUDED.utm_term, leads.utm_term),
    first_touch_at = COALESCE(leads.first_touch_at, EXCLUDED.first_touch_at)
RETURNING id, phone, utm_source, utm_campaign, utm_content, utm_medium, utm_term, first_touch_at, created_at
`

// UpsertLead creates a lead or refreshes the attribution of an existing one.
// The earliest first touch wins.
func (s *Store) UpsertLead(ctx context.Context, params UpsertLeadParams) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlUpsertLead,
		params.Phone,
		params.UTMSource,
		params.UTMCampaign,
		params.UTMContent,
		params.UTMMedium,
		params.UTMTerm,
		params.FirstTouchAt)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert lead", err)
		return Lead{}, fmt.Errorf("failed to upsert lead: %w", err)
	}
	return lead, nil
}

const sqlGetLeadByPhone = `
SELECT id, phone, utm_source, utm_campaign, utm_content, utm_medium, utm_term, first_touch_at, created_at
FROM leads
WHERE phone = $1
`

// GetLeadByPhone retrieves a lead by its phone number
func (s *Store) GetLeadByPhone(ctx context.Context, phone string) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlGetLeadByPhone, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get lead", err)
		return Lead{}, fmt.Errorf("failed to get lead: %w", err)
	}
	return lead, nil
}

const sqlGetLeadByID = `
SELECT id, phone, utm_source, utm_campaign, utm_content, utm_medium, utm_term, first_touch_at, created_at
FROM leads
WHERE id = $1
`

// GetLeadByID retrieves a lead by its ID
func (s *Store) GetLeadByID(ctx context.Context, leadID uuid.UUID) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlGetLeadByID, leadID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get lead", err)
		return Lead{}, fmt.Errorf("failed to get lead: %w", err)
	}
	return lead, nil
}
