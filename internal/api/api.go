package api

import (
	analystHandler "campaign-server/internal/analyst/handler"
	analyticsHandler "campaign-server/internal/analytics/handler"
	campaignHandler "campaign-server/internal/campaign/handler"
	creativeHandler "campaign-server/internal/creatives/handler"
	leadHandler "campaign-server/internal/leads/handler"
	"campaign-server/internal/observability"
	publishingHandler "campaign-server/internal/publishing/handler"
	reportHandler "campaign-server/internal/reports/handler"
	settingHandler "campaign-server/internal/settings/handler"
	"net/http"

	"github.com/gin-gonic/gin"
)

type API struct {
	router            *gin.RouterGroup
	campaignHandler   campaignHandler.Handler
	creativeHandler   creativeHandler.Handler
	analyticsHandler  analyticsHandler.Handler
	publishingHandler *publishingHandler.Handler
	leadHandler       *leadHandler.Handler
	settingHandler    *settingHandler.Handler
	analystHandler    *analystHandler.Handler
	reportHandler     *reportHandler.Handler
}

func New(
	router *gin.RouterGroup,
	campaignHandler campaignHandler.Handler,
	creativeHandler creativeHandler.Handler,
	analyticsHandler analyticsHandler.Handler,
	publishingHandler *publishingHandler.Handler,
	leadHandler *leadHandler.Handler,
	settingHandler *settingHandler.Handler,
	analystHandler *analystHandler.Handler,
	reportHandler *reportHandler.Handler,
) API {
	return API{
		router:            router,
		campaignHandler:   campaignHandler,
		creativeHandler:   creativeHandler,
		analyticsHandler:  analyticsHandler,
		publishingHandler: publishingHandler,
		leadHandler:       leadHandler,
		settingHandler:    settingHandler,
		analystHandler:    analystHandler,
		reportHandler:     reportHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", observability.PrometheusHandler())

	apiGroup := a.router.Group("/api")
	{
		campaignGroup := apiGroup.Group("/campaigns")
		campaignGroup.POST("", a.campaignHandler.HandleCreateCampaign)
		campaignGroup.GET("", a.campaignHandler.HandleListCampaigns)
		campaignGroup.GET("/:campaign_id", a.campaignHandler.HandleGetCampaign)
		campaignGroup.PATCH("/:campaign_id", a.campaignHandler.HandleUpdateCampaign)
		campaignGroup.DELETE("/:campaign_id", a.campaignHandler.HandleDeleteCampaign)
		campaignGroup.POST("/:campaign_id/publish", a.publishingHandler.HandlePublishCampaign)
		campaignGroup.GET("/:campaign_id/publication-status", a.publishingHandler.HandleGetCampaignStatus)
		campaignGroup.POST("/:campaign_id/pause", a.publishingHandler.HandlePauseCampaign)

		creativeGroup := apiGroup.Group("/creatives")
		creativeGroup.POST("/generate", a.creativeHandler.HandleGenerateCreatives)
		creativeGroup.POST("", a.creativeHandler.HandleCreateCreative)
		creativeGroup.GET("", a.creativeHandler.HandleListCreatives)
		creativeGroup.GET("/:creative_id", a.creativeHandler.HandleGetCreative)
		creativeGroup.POST("/:creative_id/moderate", a.creativeHandler.HandleModerateCreative)
		creativeGroup.DELETE("/:creative_id", a.creativeHandler.HandleDeleteCreative)

		analyticsGroup := apiGroup.Group("/analytics")
		analyticsGroup.GET("/campaigns/:campaign_id", a.analyticsHandler.HandleGetCampaignMetrics)
		analyticsGroup.GET("/dashboard", a.analyticsHandler.HandleGetDashboardSummary)
		analyticsGroup.GET("/dashboard/daily", a.analyticsHandler.HandleGetDashboardDailyMetrics)
		analyticsGroup.GET("/channels", a.analyticsHandler.HandleGetChannelPerformance)

		leadGroup := apiGroup.Group("/leads")
		leadGroup.POST("", a.leadHandler.HandleUpsertLead)
		leadGroup.GET("/:lead_id", a.leadHandler.HandleGetLead)
		apiGroup.POST("/conversions", a.leadHandler.HandleCreateConversion)

		settingGroup := apiGroup.Group("/settings")
		settingGroup.GET("", a.settingHandler.HandleListSettings)
		settingGroup.PUT("/:key", a.settingHandler.HandleUpsertSetting)
		settingGroup.GET("/:key", a.settingHandler.HandleGetSetting)
		settingGroup.GET("/:key/value", a.settingHandler.HandleGetSettingValue)

		analystGroup := apiGroup.Group("/analyst")
		analystGroup.POST("/analyze", a.analystHandler.HandleAnalyzeCampaign)
		analystGroup.POST("/chat", a.analystHandler.HandleChat)

		reportGroup := apiGroup.Group("/reports")
		reportGroup.POST("/weekly", a.reportHandler.HandleGenerateWeeklyReport)
		reportGroup.POST("/weekly/send", a.reportHandler.HandleSendWeeklyReport)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
