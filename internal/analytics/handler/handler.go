package handler

import (
	"campaign-server/internal/analytics/processor"
	"campaign-server/internal/observability"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.AnalyticsProcessor
	logger    *observability.Logger
}

func New(processor processor.AnalyticsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// parseDateRange reads optional start_date/end_date query parameters in
// YYYY-MM-DD form. The second return value is false when a parameter was
// present but malformed, in which case a 400 has already been written.
func (h *Handler) parseDateRange(c *gin.Context) (*time.Time, *time.Time, bool) {
	var dateFrom, dateTo *time.Time

	if fromStr := c.Query("start_date"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			h.logger.Error(c.Request.Context(), "failed to parse start_date", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date format, use YYYY-MM-DD"})
			return nil, nil, false
		}
		dateFrom = &parsed
	}
	if toStr := c.Query("end_date"); toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			h.logger.Error(c.Request.Context(), "failed to parse end_date", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date format, use YYYY-MM-DD"})
			return nil, nil, false
		}
		dateTo = &parsed
	}
	return dateFrom, dateTo, true
}

// HandleGetCampaignMetrics retrieves aggregated metrics and the per-channel
// breakdown for one campaign
func (h *Handler) HandleGetCampaignMetrics(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		h.logger.Error(ctx, "failed to parse campaign ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	dateFrom, dateTo, ok := h.parseDateRange(c)
	if !ok {
		return
	}

	metrics, err := h.processor.GetCampaignMetrics(ctx, campaignID, dateFrom, dateTo)
	if err != nil {
		h.logger.Error(ctx, "failed to get campaign metrics", err)
		if errors.Is(err, processor.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// HandleGetDashboardSummary retrieves the portfolio-wide rollup
func (h *Handler) HandleGetDashboardSummary(c *gin.Context) {
	ctx := c.Request.Context()

	dateFrom, dateTo, ok := h.parseDateRange(c)
	if !ok {
		return
	}

	summary, err := h.processor.GetDashboardSummary(ctx, dateFrom, dateTo)
	if err != nil {
		h.logger.Error(ctx, "failed to get dashboard summary", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// HandleGetDashboardDailyMetrics retrieves the zero-filled daily time series
func (h *Handler) HandleGetDashboardDailyMetrics(c *gin.Context) {
	ctx := c.Request.Context()

	dateFrom, dateTo, ok := h.parseDateRange(c)
	if !ok {
		return
	}

	points, err := h.processor.GetDashboardDailyMetrics(ctx, dateFrom, dateTo)
	if err != nil {
		h.logger.Error(ctx, "failed to get dashboard daily metrics", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, points)
}

// HandleGetChannelPerformance retrieves the channel comparison with
// sparklines
func (h *Handler) HandleGetChannelPerformance(c *gin.Context) {
	ctx := c.Request.Context()

	dateFrom, dateTo, ok := h.parseDateRange(c)
	if !ok {
		return
	}

	channels, err := h.processor.GetChannelPerformance(ctx, dateFrom, dateTo)
	if err != nil {
		h.logger.Error(ctx, "failed to get channel performance", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, channels)
}
