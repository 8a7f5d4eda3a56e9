package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DailyConversionRow is one (day, campaign) group of conversions
type DailyConversionRow struct {
	Day         time.Time  `db:"day"`
	CampaignID  *uuid.UUID `db:"campaign_id"`
	Conversions int        `db:"conversions"`
	RevenueRub  float64    `db:"revenue"`
}

// DailyLeadRow is one day's lead count
type DailyLeadRow struct {
	Day   time.Time `db:"day"`
	Leads int       `db:"leads"`
}

// ChannelConversionRow is one (raw channel, campaign, day) group of conversions.
// The raw channel is the conversion's explicit code, falling back to the
// lead's utm_source.
type ChannelConversionRow struct {
	ChannelRaw  *string    `db:"channel_raw"`
	CampaignID  *uuid.UUID `db:"campaign_id"`
	Day         time.Time  `db:"day"`
	Conversions int        `db:"conversions"`
	RevenueRub  float64    `db:"revenue"`
}

// LeadSourceRow is one utm_source group of leads
type LeadSourceRow struct {
	Source string `db:"source"`
	Leads  int    `db:"leads"`
}

const sqlListDailyConversionStats = `
SELECT converted_at::date AS day,
       campaign_id,
       COUNT(id)::int AS conversions,
       COALESCE(SUM(revenue_rub), 0) AS revenue
FROM conversions
WHERE converted_at::date >= $1 AND converted_at::date <= $2
GROUP BY day, campaign_id
`

// ListDailyConversionStats groups conversions by conversion day and campaign
// over an inclusive date window
func (s *Store) ListDailyConversionStats(ctx context.Context, dateFrom, dateTo time.Time) ([]DailyConversionRow, error) {
	var rows []DailyConversionRow
	err := s.db.SelectContext(ctx, &rows, sqlListDailyConversionStats, dateFrom, dateTo)
	if err != nil {
		s.logger.Error(ctx, "failed to list daily conversion stats", err)
		return nil, fmt.Errorf("failed to list daily conversion stats: %w", err)
	}
	return rows, nil
}

const sqlListDailyLeadStats = `
SELECT created_at::date AS day, COUNT(id)::int AS leads
FROM leads
WHERE created_at IS NOT NULL
  AND created_at::date >= $1 AND created_at::date <= $2
GROUP BY day
`

// ListDailyLeadStats groups leads by creation day over an inclusive date window
func (s *Store) ListDailyLeadStats(ctx context.Context, dateFrom, dateTo time.Time) ([]DailyLeadRow, error) {
	var rows []DailyLeadRow
	err := s.db.SelectContext(ctx, &rows, sqlListDailyLeadStats, dateFrom, dateTo)
	if err != nil {
		s.logger.Error(ctx, "failed to list daily lead stats", err)
		return nil, fmt.Errorf("failed to list daily lead stats: %w", err)
	}
	return rows, nil
}

const sqlListChannelConversionStats = `
SELECT COALESCE(c.channel_code, l.utm_source) AS channel_raw,
       c.campaign_id,
       c.converted_at::date AS day,
       COUNT(c.id)::int AS conversions,
       COALESCE(SUM(c.revenue_rub), 0) AS revenue
FROM conversions c
LEFT JOIN leads l ON l.id = c.lead_id
WHERE c.converted_at::date >= $1 AND c.converted_at::date <= $2
GROUP BY channel_raw, c.campaign_id, day
`

// ListChannelConversionStats groups conversions by raw channel, campaign and
// conversion day over an inclusive date window
func (s *Store) ListChannelConversionStats(ctx context.Context, dateFrom, dateTo time.Time) ([]ChannelConversionRow, error) {
	var rows []ChannelConversionRow
	err := s.db.SelectContext(ctx, &rows, sqlListChannelConversionStats, dateFrom, dateTo)
	if err != nil {
		s.logger.Error(ctx, "failed to list channel conversion stats", err)
		return nil, fmt.Errorf("failed to list channel conversion stats: %w", err)
	}
	return rows, nil
}

const sqlListLeadSourceStats = `
SELECT COALESCE(utm_source, '') AS source, COUNT(id)::int AS leads
FROM leads
WHERE created_at IS NOT NULL
  AND created_at::date >= $1 AND created_at::date <= $2
GROUP BY source
`

// ListLeadSourceStats groups leads by attribution source over an inclusive
// date window
func (s *Store) ListLeadSourceStats(ctx context.Context, dateFrom, dateTo time.Time) ([]LeadSourceRow, error) {
	var rows []LeadSourceRow
	err := s.db.SelectContext(ctx, &rows, sqlListLeadSourceStats, dateFrom, dateTo)
	if err != nil {
		s.logger.Error(ctx, "failed to list lead source stats", err)
		return nil, fmt.Errorf("failed to list lead source stats: %w", err)
	}
	return rows, nil
}
