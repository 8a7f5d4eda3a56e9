package bootstrap

import (
	"campaign-server/internal/config"
	"campaign-server/internal/observability"
	"campaign-server/internal/store"
	"context"
	"fmt"
	"time"

	analystHandler "campaign-server/internal/analyst/handler"
	analystProcessor "campaign-server/internal/analyst/processor"
	analyticsHandler "campaign-server/internal/analytics/handler"
	analyticsProcessor "campaign-server/internal/analytics/processor"
	campaignHandler "campaign-server/internal/campaign/handler"
	campaignProcessor "campaign-server/internal/campaign/processor"
	"campaign-server/internal/clients/avito"
	"campaign-server/internal/clients/mail"
	"campaign-server/internal/clients/openai"
	"campaign-server/internal/clients/vkads"
	"campaign-server/internal/clients/yandexdirect"
	creativeHandler "campaign-server/internal/creatives/handler"
	creativeProcessor "campaign-server/internal/creatives/processor"
	"campaign-server/internal/jobs/scheduler"
	schedulerJobs "campaign-server/internal/jobs/scheduler/jobs"
	leadHandler "campaign-server/internal/leads/handler"
	leadProcessor "campaign-server/internal/leads/processor"
	publishingHandler "campaign-server/internal/publishing/handler"
	publishingProcessor "campaign-server/internal/publishing/processor"
	reportHandler "campaign-server/internal/reports/handler"
	reportProcessor "campaign-server/internal/reports/processor"
	settingHandler "campaign-server/internal/settings/handler"
	settingProcessor "campaign-server/internal/settings/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	CampaignHandler   campaignHandler.Handler
	CreativeHandler   creativeHandler.Handler
	AnalyticsHandler  analyticsHandler.Handler
	PublishingHandler *publishingHandler.Handler
	LeadHandler       *leadHandler.Handler
	SettingHandler    *settingHandler.Handler
	AnalystHandler    *analystHandler.Handler
	ReportHandler     *reportHandler.Handler

	// Background jobs
	Scheduler *scheduler.Scheduler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize clients
	openAIClient, err := openai.NewClient(cfg.Services.OpenAIAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}

	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, cfg.Services.DefaultEmailSender, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	vkClient := vkads.New(cfg.AdClients.VKAppID, logger)
	directClient := yandexdirect.New(
		cfg.AdClients.DirectToken,
		cfg.AdClients.DirectLogin,
		cfg.AdClients.DirectSandbox,
		logger,
	)
	avitoClient := avito.New(cfg.AdClients.AvitoClientID, logger)

	// Initialize campaign processor and handler
	campaignProc := campaignProcessor.New(&deps.Store, logger)
	deps.CampaignHandler = campaignHandler.New(campaignProc, logger)

	// Initialize creative processor and handler
	creativeProc := creativeProcessor.New(&deps.Store, logger)
	deps.CreativeHandler = creativeHandler.New(creativeProc, logger)

	// Initialize analytics processor and handler
	analyticsProc := analyticsProcessor.New(&deps.Store, logger)
	deps.AnalyticsHandler = analyticsHandler.New(analyticsProc, logger)

	// Initialize publishing processor and handler
	publishingProc := publishingProcessor.New(&deps.Store, vkClient, directClient, avitoClient, logger)
	deps.PublishingHandler = publishingHandler.NewHandler(publishingProc, logger)

	// Initialize lead processor and handler
	leadProc := leadProcessor.New(&deps.Store, logger)
	deps.LeadHandler = leadHandler.NewHandler(leadProc, logger)

	// Initialize settings processor and handler
	settingProc := settingProcessor.New(&deps.Store, logger)
	deps.SettingHandler = settingHandler.NewHandler(settingProc, logger)

	// Initialize AI analyst processor and handler
	analystProc := analystProcessor.New(&deps.Store, openAIClient, logger)
	deps.AnalystHandler = analystHandler.NewHandler(analystProc, logger)

	// Initialize reports processor and handler
	reportProc := reportProcessor.New(&deps.Store, openAIClient, mailClient, &settingProc, logger)
	deps.ReportHandler = reportHandler.NewHandler(reportProc, logger)

	// Initialize scheduler with the weekly report job
	deps.Scheduler = scheduler.New(logger)
	deps.Scheduler.Register(schedulerJobs.NewWeeklyReportJob(reportProc, logger, 7*24*time.Hour))

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close database connection", err)
	}
}
