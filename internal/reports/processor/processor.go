package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"campaign-server/internal/clients/openai"
	"campaign-server/internal/observability"
	settings "campaign-server/internal/settings/processor"
	"campaign-server/internal/store"
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ReportStore defines the database operations required by ReportProcessor
type ReportStore interface {
	ListAllCampaigns(ctx context.Context) ([]store.Campaign, error)
	ListCampaignConversions(ctx context.Context, campaignID uuid.UUID, dateFrom, dateTo *time.Time) ([]store.CampaignConversion, error)
	ListDailyConversionStats(ctx context.Context, from, to time.Time) ([]store.DailyConversionRow, error)
	ListDailyLeadStats(ctx context.Context, from, to time.Time) ([]store.DailyLeadRow, error)
}

// ChatClient produces the AI narrative for the report
type ChatClient interface {
	Complete(ctx context.Context, params openai.ChatParams) (openai.ChatResult, error)
}

// MailClient delivers the rendered report
type MailClient interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}

// ConfigLoader resolves the operational report settings into a typed config
type ConfigLoader interface {
	LoadReportsConfig(ctx context.Context) (settings.ReportsConfig, error)
}

var ErrReportsDisabled = errors.New("weekly reports are disabled")

const (
	reportModel       = "gpt-4"
	reportTemperature = 0.2
	reportMaxTokens   = 1500
	reportFrom        = "reports@deepcalm.local"
)

type ReportProcessor struct {
	store  ReportStore
	chat   ChatClient
	mail   MailClient
	config ConfigLoader
	logger *observability.Logger
}

func New(store ReportStore, chat ChatClient, mail MailClient, config ConfigLoader, logger *observability.Logger) ReportProcessor {
	return ReportProcessor{
		store:  store,
		chat:   chat,
		mail:   mail,
		config: config,
		logger: logger,
	}
}

// ReportPeriod is the trailing window a report covers
type ReportPeriod struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Weeks     int       `json:"weeks"`
}

// ReportSummary holds portfolio-level totals for the period
type ReportSummary struct {
	TotalLeads       int     `json:"total_leads"`
	TotalConversions int     `json:"total_conversions"`
	TotalRevenue     float64 `json:"total_revenue"`
	ConversionRate   float64 `json:"conversion_rate"`
	ActiveCampaigns  int     `json:"active_campaigns"`
}

// CampaignReportRow is one campaign's contribution to the report
type CampaignReportRow struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	SKU         string    `json:"sku"`
	Status      string    `json:"status"`
	Leads       int       `json:"leads"`
	Conversions int       `json:"conversions"`
	Revenue     float64   `json:"revenue"`
	Spend       float64   `json:"spend"`
	ROAS        float64   `json:"roas"`
	CAC         float64   `json:"cac"`
	TargetCAC   float64   `json:"target_cac"`
	TargetROAS  float64   `json:"target_roas"`
}

// WeeklyReport is the assembled report ready for rendering
type WeeklyReport struct {
	ID             string              `json:"id"`
	GeneratedAt    time.Time           `json:"generated_at"`
	Period         ReportPeriod        `json:"period"`
	Summary        ReportSummary       `json:"summary"`
	AIAnalysis     string              `json:"ai_analysis"`
	TopPerformers  []CampaignReportRow `json:"top_performers"`
	NeedsAttention []CampaignReportRow `json:"needs_attention"`
	Campaigns      []CampaignReportRow `json:"campaigns"`
	RecipientEmail string              `json:"recipient_email"`
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

type weeklyData struct {
	Period         ReportPeriod
	Summary        ReportSummary
	Campaigns      []CampaignReportRow
	TopPerformers  []CampaignReportRow
	NeedsAttention []CampaignReportRow
}

func (p *ReportProcessor) collectWeeklyData(ctx context.Context, weeksBack int) (weeklyData, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -7*weeksBack)

	campaigns, err := p.store.ListAllCampaigns(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return weeklyData{}, err
	}

	conversionRows, err := p.store.ListDailyConversionStats(ctx, start, end)
	if err != nil {
		p.logger.Error(ctx, "failed to list conversion stats", err)
		return weeklyData{}, err
	}
	leadRows, err := p.store.ListDailyLeadStats(ctx, start, end)
	if err != nil {
		p.logger.Error(ctx, "failed to list lead stats", err)
		return weeklyData{}, err
	}

	var totalLeads, totalConversions int
	var totalRevenue float64
	for _, row := range leadRows {
		totalLeads += row.Leads
	}
	for _, row := range conversionRows {
		totalConversions += row.Conversions
		totalRevenue += row.RevenueRub
	}

	var conversionRate float64
	if totalLeads > 0 {
		conversionRate = round2(float64(totalConversions) / float64(totalLeads) * 100)
	}

	rows := []CampaignReportRow{}
	for _, campaign := range campaigns {
		if campaign.Status != store.CampaignStatusActive && campaign.Status != store.CampaignStatusPaused {
			continue
		}

		conversions, err := p.store.ListCampaignConversions(ctx, campaign.ID, &start, &end)
		if err != nil {
			p.logger.Error(ctx, "failed to list campaign conversions", err,
				observability.Field{Key: "campaign_id", Value: campaign.ID.String()},
			)
			return weeklyData{}, err
		}

		leadIDs := make(map[uuid.UUID]bool)
		var revenue float64
		for _, conv := range conversions {
			leadIDs[conv.LeadID] = true
			revenue += conv.RevenueRub
		}

		var spend float64
		if len(leadIDs) > 0 {
			spend = round2(campaign.BudgetRub * 0.5)
		}
		var roas, cac float64
		if spend > 0 {
			roas = round2(revenue / spend)
		}
		if len(conversions) > 0 {
			cac = round2(spend / float64(len(conversions)))
		}

		rows = append(rows, CampaignReportRow{
			ID:          campaign.ID,
			Title:       campaign.Title,
			SKU:         campaign.SKU,
			Status:      campaign.Status,
			Leads:       len(leadIDs),
			Conversions: len(conversions),
			Revenue:     revenue,
			Spend:       spend,
			ROAS:        roas,
			CAC:         cac,
			TargetCAC:   campaign.TargetCACRub,
			TargetROAS:  campaign.TargetROAS,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ROAS > rows[j].ROAS
	})

	top := rows
	if len(top) > 3 {
		top = top[:3]
	}

	needsAttention := []CampaignReportRow{}
	for _, row := range rows {
		if row.ROAS < row.TargetROAS {
			needsAttention = append(needsAttention, row)
		}
	}

	return weeklyData{
		Period: ReportPeriod{StartDate: start, EndDate: end, Weeks: weeksBack},
		Summary: ReportSummary{
			TotalLeads:       totalLeads,
			TotalConversions: totalConversions,
			TotalRevenue:     totalRevenue,
			ConversionRate:   conversionRate,
			ActiveCampaigns:  len(rows),
		},
		Campaigns:      rows,
		TopPerformers:  top,
		NeedsAttention: needsAttention,
	}, nil
}

func (p *ReportProcessor) generateAISummary(ctx context.Context, data weeklyData) string {
	result, err := p.chat.Complete(ctx, openai.ChatParams{
		Model:        reportModel,
		SystemPrompt: weeklyReportSystemPrompt,
		UserPrompt:   buildWeeklyReportPrompt(data),
		Temperature:  reportTemperature,
		MaxTokens:    reportMaxTokens,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to generate ai summary", err)
		return "Не удалось сгенерировать AI анализ. Проверьте настройки OpenAI API."
	}
	return result.Content
}

// GenerateWeeklyReport assembles the trailing-week report with an AI narrative.
// Returns ErrReportsDisabled when reports are switched off in settings.
func (p *ReportProcessor) GenerateWeeklyReport(ctx context.Context, weeksBack int) (WeeklyReport, error) {
	config, err := p.config.LoadReportsConfig(ctx)
	if err != nil {
		return WeeklyReport{}, err
	}
	if !config.Enabled {
		return WeeklyReport{}, ErrReportsDisabled
	}
	if weeksBack < 1 {
		weeksBack = config.WeeksBack
	}

	data, err := p.collectWeeklyData(ctx, weeksBack)
	if err != nil {
		return WeeklyReport{}, err
	}

	now := time.Now().UTC()
	report := WeeklyReport{
		ID:             fmt.Sprintf("weekly_%s", now.Format("20060102_150405")),
		GeneratedAt:    now,
		Period:         data.Period,
		Summary:        data.Summary,
		AIAnalysis:     p.generateAISummary(ctx, data),
		TopPerformers:  data.TopPerformers,
		NeedsAttention: data.NeedsAttention,
		Campaigns:      data.Campaigns,
		RecipientEmail: config.Email,
	}

	p.logger.Info(ctx, "weekly report generated",
		observability.Field{Key: "report_id", Value: report.ID},
		observability.Field{Key: "campaigns_count", Value: len(data.Campaigns)},
		observability.Field{Key: "total_revenue", Value: data.Summary.TotalRevenue},
	)
	return report, nil
}

// SendWeeklyReport generates the report and emails it to the configured
// recipient
func (p *ReportProcessor) SendWeeklyReport(ctx context.Context) error {
	report, err := p.GenerateWeeklyReport(ctx, 0)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Еженедельный отчет DeepCalm — %s", report.Period.EndDate.Format("2006-01-02"))
	if _, err := p.mail.SendEmail(ctx, reportFrom, report.RecipientEmail, subject, formatReportEmail(report)); err != nil {
		p.logger.Error(ctx, "failed to send weekly report", err)
		return err
	}

	p.logger.Info(ctx, "weekly report sent",
		observability.Field{Key: "report_id", Value: report.ID},
		observability.Field{Key: "recipient", Value: report.RecipientEmail},
	)
	return nil
}
