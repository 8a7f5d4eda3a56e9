package processor

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// resolveWindow applies the default 30-day window and swaps a reversed range.
func resolveWindow(dateFrom, dateTo *time.Time) (time.Time, time.Time) {
	end := truncateDay(time.Now().UTC())
	if dateTo != nil {
		end = truncateDay(dateTo.UTC())
	}
	start := end.AddDate(0, 0, -29)
	if dateFrom != nil {
		start = truncateDay(dateFrom.UTC())
	}
	if start.After(end) {
		start, end = end, start
	}
	return start, end
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type dailyStat struct {
	conversions int
	leads       int
	revenue     float64
	spend       float64
}

// GetDashboardDailyMetrics returns one point per calendar day in the window,
// zero-filled for days with no activity. Spend is estimated per conversion
// from the owning campaign's target CAC; organic conversions carry no spend.
func (p *AnalyticsProcessor) GetDashboardDailyMetrics(ctx context.Context, dateFrom, dateTo *time.Time) ([]DashboardDailyPoint, error) {
	start, end := resolveWindow(dateFrom, dateTo)

	campaigns, err := p.store.ListAllCampaigns(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, err
	}
	targets := make(map[uuid.UUID]float64, len(campaigns))
	for _, c := range campaigns {
		targets[c.ID] = c.TargetCACRub
	}

	conversionRows, err := p.store.ListDailyConversionStats(ctx, start, end)
	if err != nil {
		p.logger.Error(ctx, "failed to list daily conversion stats", err)
		return nil, err
	}
	leadRows, err := p.store.ListDailyLeadStats(ctx, start, end)
	if err != nil {
		p.logger.Error(ctx, "failed to list daily lead stats", err)
		return nil, err
	}

	daily := make(map[string]*dailyStat)
	stat := func(day time.Time) *dailyStat {
		key := day.UTC().Format(dateLayout)
		st, ok := daily[key]
		if !ok {
			st = &dailyStat{}
			daily[key] = st
		}
		return st
	}

	for _, row := range conversionRows {
		st := stat(row.Day)
		st.conversions += row.Conversions
		st.revenue += row.RevenueRub
		if row.CampaignID != nil {
			st.spend += float64(row.Conversions) * targets[*row.CampaignID]
		}
	}
	for _, row := range leadRows {
		stat(row.Day).leads += row.Leads
	}

	var points []DashboardDailyPoint
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		st := daily[key]
		if st == nil {
			st = &dailyStat{}
		}
		var cac, roas *float64
		if st.conversions > 0 && st.spend > 0 {
			cac = CAC(st.spend, st.conversions)
		}
		if st.spend > 0 {
			roas = ROAS(st.revenue, st.spend)
		}
		points = append(points, DashboardDailyPoint{
			Date:        key,
			Conversions: st.conversions,
			Leads:       st.leads,
			Revenue:     round2(st.revenue),
			Spend:       round2(st.spend),
			CAC:         cac,
			ROAS:        roas,
		})
	}
	return points, nil
}

type channelTotals struct {
	spend       float64
	leads       int
	conversions int
	revenue     float64
	spark       map[string]*dailyStat
}

// GetChannelPerformance compares the known channels over the window,
// including a 7-day CAC sparkline per channel, sorted by revenue.
func (p *AnalyticsProcessor) GetChannelPerformance(ctx context.Context, dateFrom, dateTo *time.Time) ([]ChannelPerformanceItem, error) {
	start, end := resolveWindow(dateFrom, dateTo)

	campaigns, err := p.store.ListAllCampaigns(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, err
	}
	targets := make(map[uuid.UUID]float64, len(campaigns))
	channelTargetSamples := make(map[string][]float64)
	for _, c := range campaigns {
		targets[c.ID] = c.TargetCACRub
		for _, code := range c.Channels {
			channelTargetSamples[code] = append(channelTargetSamples[code], c.TargetCACRub)
		}
	}

	conversionRows, err := p.store.ListChannelConversionStats(ctx, start, end)
	if err != nil {
		p.logger.Error(ctx, "failed to list channel conversion stats", err)
		return nil, err
	}
	leadRows, err := p.store.ListLeadSourceStats(ctx, start, end)
	if err != nil {
		p.logger.Error(ctx, "failed to list lead source stats", err)
		return nil, err
	}

	totals := make(map[string]*channelTotals)
	var order []string
	channel := func(code string) *channelTotals {
		ct, ok := totals[code]
		if !ok {
			ct = &channelTotals{spark: make(map[string]*dailyStat)}
			totals[code] = ct
			order = append(order, code)
		}
		return ct
	}

	for _, row := range conversionRows {
		code := resolveChannel(row.ChannelRaw)
		if code == "" {
			continue
		}
		ct := channel(code)
		spend := 0.0
		if row.CampaignID != nil {
			spend = float64(row.Conversions) * targets[*row.CampaignID]
		}
		ct.conversions += row.Conversions
		ct.revenue += row.RevenueRub
		ct.spend += spend

		key := row.Day.UTC().Format(dateLayout)
		ds, ok := ct.spark[key]
		if !ok {
			ds = &dailyStat{}
			ct.spark[key] = ds
		}
		ds.conversions += row.Conversions
		ds.spend += spend
	}

	for _, row := range leadRows {
		code := InferChannel(row.Source)
		if code == "" {
			continue
		}
		channel(code).leads += row.Leads
	}

	items := make([]ChannelPerformanceItem, 0, len(order))
	for _, code := range order {
		ct := totals[code]
		var cac *float64
		if ct.conversions > 0 && ct.spend > 0 {
			cac = CAC(ct.spend, ct.conversions)
		}
		items = append(items, ChannelPerformanceItem{
			Channel:       code,
			ChannelName:   ChannelName(code),
			Spend:         round2(ct.spend),
			Leads:         ct.leads,
			Conversions:   ct.conversions,
			Revenue:       round2(ct.revenue),
			CAC:           cac,
			ROAS:          ROAS(ct.revenue, ct.spend),
			TargetCAC:     averageTarget(channelTargetSamples[code]),
			SparklineData: buildSparkline(ct.spark),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Revenue > items[j].Revenue
	})
	return items, nil
}

// resolveChannel maps a raw channel value (placement channel_code or lead
// utm_source) to a known channel code.
func resolveChannel(raw *string) string {
	if raw == nil || *raw == "" {
		return ""
	}
	lower := strings.ToLower(*raw)
	if _, ok := channelNames[lower]; ok {
		return lower
	}
	return InferChannel(*raw)
}

func averageTarget(samples []float64) *float64 {
	if len(samples) == 0 {
		return nil
	}
	sum := 0.0
	for _, s := range samples {
		sum += s
	}
	return float64Ptr(round2(sum / float64(len(samples))))
}

// buildSparkline returns daily CAC for the last 7 days that saw activity,
// oldest first. Days without both spend and conversions chart as zero.
func buildSparkline(spark map[string]*dailyStat) []ChannelSparklinePoint {
	days := make([]string, 0, len(spark))
	for day := range spark {
		days = append(days, day)
	}
	sort.Strings(days)
	if len(days) > 7 {
		days = days[len(days)-7:]
	}

	points := make([]ChannelSparklinePoint, 0, len(days))
	for _, day := range days {
		st := spark[day]
		value := 0.0
		if st.conversions > 0 && st.spend > 0 {
			value = round2(st.spend / float64(st.conversions))
		}
		points = append(points, ChannelSparklinePoint{Date: day, Value: value})
	}
	return points
}
