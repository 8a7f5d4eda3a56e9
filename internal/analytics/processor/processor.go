package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AnalyticsStore defines the database operations required by AnalyticsProcessor
type AnalyticsStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListAllCampaigns(ctx context.Context) ([]store.Campaign, error)
	ListCampaignConversions(ctx context.Context, campaignID uuid.UUID, dateFrom, dateTo *time.Time) ([]store.CampaignConversion, error)
	ListCampaignPlacements(ctx context.Context, campaignID uuid.UUID, dateFrom, dateTo *time.Time) ([]store.Placement, error)
	ListDailyConversionStats(ctx context.Context, dateFrom, dateTo time.Time) ([]store.DailyConversionRow, error)
	ListDailyLeadStats(ctx context.Context, dateFrom, dateTo time.Time) ([]store.DailyLeadRow, error)
	ListChannelConversionStats(ctx context.Context, dateFrom, dateTo time.Time) ([]store.ChannelConversionRow, error)
	ListLeadSourceStats(ctx context.Context, dateFrom, dateTo time.Time) ([]store.LeadSourceRow, error)
}

var (
	ErrCampaignNotFound = errors.New("campaign not found")
)

type AnalyticsProcessor struct {
	store  AnalyticsStore
	logger *observability.Logger
}

func New(store AnalyticsStore, logger *observability.Logger) AnalyticsProcessor {
	return AnalyticsProcessor{
		store:  store,
		logger: logger,
	}
}

// CampaignMetrics represents the aggregated metrics block for one campaign
type CampaignMetrics struct {
	CampaignID       uuid.UUID `json:"campaign_id"`
	CampaignTitle    string    `json:"campaign_title"`
	SKU              string    `json:"sku"`
	BudgetRub        float64   `json:"budget_rub"`
	SpentRub         float64   `json:"spent_rub"`
	TargetCACRub     float64   `json:"target_cac_rub"`
	TargetROAS       float64   `json:"target_roas"`
	Impressions      int       `json:"impressions"`
	Clicks           int       `json:"clicks"`
	CTR              float64   `json:"ctr"`
	LeadsCount       int       `json:"leads_count"`
	ConversionsCount int       `json:"conversions_count"`
	ConversionRate   float64   `json:"conversion_rate"`
	RevenueRub       float64   `json:"revenue_rub"`
	ActualCACRub     *float64  `json:"actual_cac_rub"`
	ActualROAS       *float64  `json:"actual_roas"`
	CACStatus        string    `json:"cac_status"`
	ROASStatus       string    `json:"roas_status"`
}

// ChannelBreakdown represents per-channel metrics within one campaign
type ChannelBreakdown struct {
	ChannelCode      string   `json:"channel_code"`
	ChannelName      string   `json:"channel_name"`
	PlacementsCount  int      `json:"placements_count"`
	ActivePlacements int      `json:"active_placements"`
	SpentRub         float64  `json:"spent_rub"`
	LeadsCount       int      `json:"leads_count"`
	ConversionsCount int      `json:"conversions_count"`
	RevenueRub       float64  `json:"revenue_rub"`
	CACRub           *float64 `json:"cac_rub"`
	ROAS             *float64 `json:"roas"`
}

// CampaignMetricsResponse is the full per-campaign analytics payload
type CampaignMetricsResponse struct {
	Metrics  CampaignMetrics    `json:"metrics"`
	Channels []ChannelBreakdown `json:"channels"`
}

// TopCampaign identifies the campaign with the highest ROAS
type TopCampaign struct {
	CampaignID    uuid.UUID `json:"campaign_id"`
	CampaignTitle string    `json:"campaign_title"`
	ROAS          float64   `json:"roas"`
}

// DashboardSummary represents the portfolio-wide rollup
type DashboardSummary struct {
	TotalCampaigns        int          `json:"total_campaigns"`
	ActiveCampaigns       int          `json:"active_campaigns"`
	PausedCampaigns       int          `json:"paused_campaigns"`
	TotalBudgetRub        float64      `json:"total_budget_rub"`
	TotalSpentRub         float64      `json:"total_spent_rub"`
	BudgetUtilization     float64      `json:"budget_utilization"`
	TotalLeads            int          `json:"total_leads"`
	TotalConversions      int          `json:"total_conversions"`
	TotalRevenueRub       float64      `json:"total_revenue_rub"`
	AvgCACRub             *float64     `json:"avg_cac_rub"`
	AvgROAS               *float64     `json:"avg_roas"`
	TopPerformingCampaign *TopCampaign `json:"top_performing_campaign"`
}

// DashboardDailyPoint is one day in the dashboard time series
type DashboardDailyPoint struct {
	Date        string   `json:"date"`
	Conversions int      `json:"conversions"`
	Leads       int      `json:"leads"`
	Revenue     float64  `json:"revenue"`
	Spend       float64  `json:"spend"`
	CAC         *float64 `json:"cac"`
	ROAS        *float64 `json:"roas"`
}

// ChannelSparklinePoint is one day of per-channel CAC for the sparkline
type ChannelSparklinePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ChannelPerformanceItem is one channel row of the performance comparison.
// Field names are camelCase since this payload feeds the dashboard charts
// directly.
type ChannelPerformanceItem struct {
	Channel       string                  `json:"channel"`
	ChannelName   string                  `json:"channelName"`
	Spend         float64                 `json:"spend"`
	Leads         int                     `json:"leads"`
	Conversions   int                     `json:"conversions"`
	Revenue       float64                 `json:"revenue"`
	CAC           *float64                `json:"cac"`
	ROAS          *float64                `json:"roas"`
	TargetCAC     *float64                `json:"targetCac"`
	SparklineData []ChannelSparklinePoint `json:"sparklineData"`
}

// GetCampaignMetrics aggregates metrics and per-channel breakdown for a
// single campaign over an optional date window.
func (p *AnalyticsProcessor) GetCampaignMetrics(ctx context.Context, campaignID uuid.UUID, dateFrom, dateTo *time.Time) (CampaignMetricsResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CampaignMetricsResponse{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return CampaignMetricsResponse{}, err
	}

	conversions, err := p.store.ListCampaignConversions(ctx, campaignID, dateFrom, dateTo)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaign conversions", err)
		return CampaignMetricsResponse{}, err
	}

	placements, err := p.store.ListCampaignPlacements(ctx, campaignID, dateFrom, dateTo)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaign placements", err)
		return CampaignMetricsResponse{}, err
	}

	metrics := buildCampaignMetrics(campaign, conversions)
	channels := buildChannelBreakdown(placements, conversions)

	return CampaignMetricsResponse{
		Metrics:  metrics,
		Channels: channels,
	}, nil
}

func buildCampaignMetrics(campaign store.Campaign, conversions []store.CampaignConversion) CampaignMetrics {
	conversionsCount := len(conversions)
	revenue := 0.0
	leadIDs := make(map[uuid.UUID]struct{})
	for _, c := range conversions {
		revenue += c.RevenueRub
		if c.HasLead {
			leadIDs[c.LeadID] = struct{}{}
		}
	}
	leadsCount := len(leadIDs)

	// Ad connectors are mocked for now, so impressions, clicks and spend are
	// derived from lead volume instead of real delivery stats.
	impressions := leadsCount * 100
	clicks := leadsCount
	spent := 0.0
	if leadsCount > 0 {
		spent = round2(campaign.BudgetRub * 0.5)
	}

	actualCAC := CAC(spent, conversionsCount)
	actualROAS := ROAS(revenue, spent)

	return CampaignMetrics{
		CampaignID:       campaign.ID,
		CampaignTitle:    campaign.Title,
		SKU:              campaign.SKU,
		BudgetRub:        campaign.BudgetRub,
		SpentRub:         spent,
		TargetCACRub:     campaign.TargetCACRub,
		TargetROAS:       campaign.TargetROAS,
		Impressions:      impressions,
		Clicks:           clicks,
		CTR:              CTR(clicks, impressions),
		LeadsCount:       leadsCount,
		ConversionsCount: conversionsCount,
		ConversionRate:   ConversionRate(conversionsCount, leadsCount),
		RevenueRub:       round2(revenue),
		ActualCACRub:     actualCAC,
		ActualROAS:       actualROAS,
		CACStatus:        CACStatus(actualCAC, campaign.TargetCACRub),
		ROASStatus:       ROASStatus(actualROAS, campaign.TargetROAS),
	}
}

type channelStat struct {
	placements  int
	active      int
	leads       int
	conversions int
	revenue     float64
}

func buildChannelBreakdown(placements []store.Placement, conversions []store.CampaignConversion) []ChannelBreakdown {
	stats := make(map[string]*channelStat)
	var order []string
	for _, pl := range placements {
		st, ok := stats[pl.ChannelCode]
		if !ok {
			st = &channelStat{}
			stats[pl.ChannelCode] = st
			order = append(order, pl.ChannelCode)
		}
		st.placements++
		if pl.Status == store.PlacementStatusActive {
			st.active++
		}
	}

	// Conversions attach to a channel through the lead's utm_source. A
	// conversion whose source does not resolve to a channel with placements
	// is left out of the breakdown.
	for _, c := range conversions {
		if !c.HasLead || c.LeadUTMSource == nil {
			continue
		}
		code := InferChannel(*c.LeadUTMSource)
		if code == "" {
			continue
		}
		st, ok := stats[code]
		if !ok {
			continue
		}
		st.leads++
		st.conversions++
		st.revenue += c.RevenueRub
	}

	breakdown := make([]ChannelBreakdown, 0, len(order))
	for _, code := range order {
		st := stats[code]
		spent := 0.0
		if st.leads > 0 {
			spent = round2(float64(st.leads) * 500)
		}
		breakdown = append(breakdown, ChannelBreakdown{
			ChannelCode:      code,
			ChannelName:      ChannelName(code),
			PlacementsCount:  st.placements,
			ActivePlacements: st.active,
			SpentRub:         spent,
			LeadsCount:       st.leads,
			ConversionsCount: st.conversions,
			RevenueRub:       round2(st.revenue),
			CACRub:           CAC(spent, st.conversions),
			ROAS:             ROAS(st.revenue, spent),
		})
	}
	return breakdown
}

// GetDashboardSummary rolls up metrics across every campaign. A campaign
// that fails to aggregate is logged and skipped so one bad campaign cannot
// blank the whole dashboard.
func (p *AnalyticsProcessor) GetDashboardSummary(ctx context.Context, dateFrom, dateTo *time.Time) (DashboardSummary, error) {
	campaigns, err := p.store.ListAllCampaigns(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return DashboardSummary{}, err
	}

	summary := DashboardSummary{
		TotalCampaigns: len(campaigns),
	}
	var top *TopCampaign

	for _, c := range campaigns {
		switch c.Status {
		case store.CampaignStatusActive:
			summary.ActiveCampaigns++
		case store.CampaignStatusPaused:
			summary.PausedCampaigns++
		}
		summary.TotalBudgetRub += c.BudgetRub

		resp, err := p.GetCampaignMetrics(ctx, c.ID, dateFrom, dateTo)
		if err != nil {
			p.logger.Error(ctx, "failed to aggregate campaign for dashboard", err,
				observability.Field{Key: "campaign_id", Value: c.ID.String()})
			continue
		}
		m := resp.Metrics

		summary.TotalSpentRub += m.SpentRub
		summary.TotalLeads += m.LeadsCount
		summary.TotalConversions += m.ConversionsCount
		summary.TotalRevenueRub += m.RevenueRub

		if m.ActualROAS != nil && *m.ActualROAS != 0 {
			if top == nil || *m.ActualROAS > top.ROAS {
				top = &TopCampaign{
					CampaignID:    m.CampaignID,
					CampaignTitle: m.CampaignTitle,
					ROAS:          *m.ActualROAS,
				}
			}
		}
	}

	summary.TotalSpentRub = round2(summary.TotalSpentRub)
	summary.TotalRevenueRub = round2(summary.TotalRevenueRub)
	if summary.TotalBudgetRub > 0 {
		summary.BudgetUtilization = round2(summary.TotalSpentRub / summary.TotalBudgetRub * 100)
	}
	summary.AvgCACRub = CAC(summary.TotalSpentRub, summary.TotalConversions)
	summary.AvgROAS = ROAS(summary.TotalRevenueRub, summary.TotalSpentRub)
	summary.TopPerformingCampaign = top

	return summary, nil
}
