package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"campaign-server/internal/clients/openai"
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AnalystStore defines the database operations required by AnalystProcessor
type AnalystStore interface {
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListCreativesByCampaign(ctx context.Context, campaignID uuid.UUID, moderationStatus *string) ([]store.Creative, error)
	ListCampaignConversions(ctx context.Context, campaignID uuid.UUID, dateFrom, dateTo *time.Time) ([]store.CampaignConversion, error)
	ListSettings(ctx context.Context, category *string) ([]store.Setting, error)
}

// ChatClient produces chat completions for analysis prompts
type ChatClient interface {
	Complete(ctx context.Context, params openai.ChatParams) (openai.ChatResult, error)
}

var ErrCampaignNotFound = errors.New("campaign not found")

const analysisPeriodDays = 30

type AnalystProcessor struct {
	store  AnalystStore
	chat   ChatClient
	logger *observability.Logger
}

func New(store AnalystStore, chat ChatClient, logger *observability.Logger) AnalystProcessor {
	return AnalystProcessor{store: store, chat: chat, logger: logger}
}

type aiConfig struct {
	Model       string
	Temperature float64
	MaxTokens   int64
	MaxBudget   float64
}

func defaultAIConfig() aiConfig {
	return aiConfig{
		Model:       "gpt-4",
		Temperature: 0.3,
		MaxTokens:   2000,
		MaxBudget:   100000,
	}
}

// CampaignMetrics summarizes the trailing analysis window for one campaign
type CampaignMetrics struct {
	TotalLeads       int     `json:"total_leads"`
	TotalConversions int     `json:"total_conversions"`
	ConversionRate   float64 `json:"conversion_rate"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalSpend       float64 `json:"total_spend"`
	ROAS             float64 `json:"roas"`
	CAC              float64 `json:"cac"`
	PeriodDays       int     `json:"period_days"`
}

// TokenUsage reports OpenAI token accounting for one analysis run
type TokenUsage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

// Analysis is the full AI assessment of one campaign
type Analysis struct {
	CampaignID      uuid.UUID       `json:"campaign_id"`
	Analysis        string          `json:"analysis"`
	Metrics         CampaignMetrics `json:"metrics"`
	Recommendations []string        `json:"recommendations"`
	GeneratedAt     time.Time       `json:"generated_at"`
	TokenUsage      TokenUsage      `json:"token_usage"`
}

type campaignData struct {
	Campaign         store.Campaign
	Creatives        []store.Creative
	Metrics          CampaignMetrics
	MinROASThreshold float64
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func (p *AnalystProcessor) loadAIConfig(ctx context.Context) aiConfig {
	config := defaultAIConfig()

	category := "ai"
	settings, err := p.store.ListSettings(ctx, &category)
	if err != nil {
		p.logger.Warn(ctx, "failed to load ai settings, using defaults")
		return config
	}

	for _, setting := range settings {
		value, err := convertSettingValue(setting)
		if err != nil {
			p.logger.Warn(ctx, fmt.Sprintf("skipping unparseable ai setting %q", setting.Key))
			continue
		}
		switch setting.Key {
		case "ai_model":
			if s, ok := value.(string); ok && s != "" {
				config.Model = s
			}
		case "ai_temperature":
			if f, ok := value.(float64); ok {
				config.Temperature = f
			}
		case "ai_max_tokens":
			if n, ok := value.(int); ok && n > 0 {
				config.MaxTokens = int64(n)
			}
		case "max_campaign_budget":
			switch v := value.(type) {
			case int:
				config.MaxBudget = float64(v)
			case float64:
				config.MaxBudget = v
			}
		}
	}
	return config
}

func (p *AnalystProcessor) minROASThreshold(ctx context.Context) float64 {
	category := "financial"
	settings, err := p.store.ListSettings(ctx, &category)
	if err != nil {
		return 2.0
	}
	for _, setting := range settings {
		if setting.Key != "min_roas_threshold" {
			continue
		}
		value, err := convertSettingValue(setting)
		if err != nil {
			break
		}
		switch v := value.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		}
	}
	return 2.0
}

func (p *AnalystProcessor) collectCampaignData(ctx context.Context, campaignID uuid.UUID) (campaignData, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return campaignData{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return campaignData{}, err
	}

	creatives, err := p.store.ListCreativesByCampaign(ctx, campaignID, nil)
	if err != nil {
		p.logger.Error(ctx, "failed to list creatives", err)
		return campaignData{}, err
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -analysisPeriodDays)
	conversions, err := p.store.ListCampaignConversions(ctx, campaignID, &from, &now)
	if err != nil {
		p.logger.Error(ctx, "failed to list conversions", err)
		return campaignData{}, err
	}

	leadIDs := make(map[uuid.UUID]bool)
	var totalRevenue float64
	for _, conv := range conversions {
		leadIDs[conv.LeadID] = true
		totalRevenue += conv.RevenueRub
	}

	totalLeads := len(leadIDs)
	totalConversions := len(conversions)

	var conversionRate float64
	if totalLeads > 0 {
		conversionRate = round2(float64(totalConversions) / float64(totalLeads) * 100)
	}

	var totalSpend float64
	if totalLeads > 0 {
		totalSpend = round2(campaign.BudgetRub * 0.5)
	}

	var roas, cac float64
	if totalSpend > 0 {
		roas = round2(totalRevenue / totalSpend)
	}
	if totalConversions > 0 {
		cac = round2(totalSpend / float64(totalConversions))
	}

	return campaignData{
		Campaign:  campaign,
		Creatives: creatives,
		Metrics: CampaignMetrics{
			TotalLeads:       totalLeads,
			TotalConversions: totalConversions,
			ConversionRate:   conversionRate,
			TotalRevenue:     totalRevenue,
			TotalSpend:       totalSpend,
			ROAS:             roas,
			CAC:              cac,
			PeriodDays:       analysisPeriodDays,
		},
		MinROASThreshold: p.minROASThreshold(ctx),
	}, nil
}

// AnalyzeCampaign runs an AI assessment of one campaign's trailing window
func (p *AnalystProcessor) AnalyzeCampaign(ctx context.Context, campaignID uuid.UUID, userQuestion *string) (Analysis, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	data, err := p.collectCampaignData(ctx, campaignID)
	if err != nil {
		return Analysis{}, err
	}

	config := p.loadAIConfig(ctx)
	result, err := p.chat.Complete(ctx, openai.ChatParams{
		Model:        config.Model,
		SystemPrompt: analystSystemPrompt,
		UserPrompt:   buildAnalysisPrompt(data, userQuestion),
		Temperature:  config.Temperature,
		MaxTokens:    config.MaxTokens,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to generate campaign analysis", err)
		return Analysis{}, err
	}

	p.logger.Info(ctx, "campaign analysis completed",
		observability.Field{Key: "total_tokens", Value: result.TotalTokens},
	)

	return Analysis{
		CampaignID:      campaignID,
		Analysis:        result.Content,
		Metrics:         data.Metrics,
		Recommendations: extractRecommendations(result.Content),
		GeneratedAt:     time.Now().UTC(),
		TokenUsage: TokenUsage{
			PromptTokens:     result.PromptTokens,
			CompletionTokens: result.CompletionTokens,
			TotalTokens:      result.TotalTokens,
		},
	}, nil
}

// Chat answers a free-form marketing question, optionally in the context of a
// campaign's current metrics
func (p *AnalystProcessor) Chat(ctx context.Context, message string, campaignID *uuid.UUID) (string, error) {
	userPrompt := message
	if campaignID != nil {
		data, err := p.collectCampaignData(ctx, *campaignID)
		if err != nil {
			return "", err
		}
		userPrompt = fmt.Sprintf("КОНТЕКСТ: Кампания %q с метриками: ROAS %.2f, CAC %.0f руб.\n\nВОПРОС: %s",
			data.Campaign.Title, data.Metrics.ROAS, data.Metrics.CAC, message)
	}

	config := p.loadAIConfig(ctx)
	result, err := p.chat.Complete(ctx, openai.ChatParams{
		Model:        config.Model,
		SystemPrompt: analystChatSystemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  config.Temperature,
		MaxTokens:    1000,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to generate chat reply", err)
		return "", err
	}
	return result.Content, nil
}

// extractRecommendations pulls bulleted lines out of the recommendations
// section of the analysis text
func extractRecommendations(analysisText string) []string {
	recommendations := []string{}
	inRecommendations := false

	for _, line := range strings.Split(analysisText, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "рекомендаци"):
			inRecommendations = true
		case strings.Contains(lower, "прогноз"), strings.Contains(lower, "заключение"):
			inRecommendations = false
		case inRecommendations && (strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•")):
			item := strings.TrimPrefix(strings.TrimPrefix(line, "-"), "•")
			recommendations = append(recommendations, strings.TrimSpace(item))
		}
	}
	return recommendations
}

func convertSettingValue(setting store.Setting) (any, error) {
	switch setting.ValueType {
	case store.SettingTypeInt:
		n, err := strconv.Atoi(strings.TrimSpace(setting.Value))
		if err != nil {
			return nil, err
		}
		return n, nil
	case store.SettingTypeFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(setting.Value), 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	case store.SettingTypeBool:
		switch strings.ToLower(strings.TrimSpace(setting.Value)) {
		case "true", "1", "yes", "on":
			return true, nil
		default:
			return false, nil
		}
	}
	return setting.Value, nil
}
