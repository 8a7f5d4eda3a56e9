package handler

import (
	"campaign-server/internal/observability"
	"campaign-server/internal/publishing/processor"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.PublishingProcessor
	logger    *observability.Logger
}

func NewHandler(p processor.PublishingProcessor, logger *observability.Logger) *Handler {
	return &Handler{processor: p, logger: logger}
}

type PublishCampaignRequest struct {
	Channels []string `json:"channels"`
}

// HandlePublishCampaign deploys a campaign's approved creatives to ad platforms
func (h *Handler) HandlePublishCampaign(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	var req PublishCampaignRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := h.processor.PublishCampaign(c.Request.Context(), campaignID, req.Channels)
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, processor.ErrNoChannels), errors.Is(err, processor.ErrNoApprovedCreatives):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error(c.Request.Context(), "failed to publish campaign", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to publish campaign"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetCampaignStatus returns the placement status rollup for a campaign
func (h *Handler) HandleGetCampaignStatus(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	result, err := h.processor.GetCampaignStatus(c.Request.Context(), campaignID)
	if err != nil {
		if errors.Is(err, processor.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(c.Request.Context(), "failed to get campaign status", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get campaign status"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandlePauseCampaign pauses a campaign's active placements on every platform
func (h *Handler) HandlePauseCampaign(c *gin.Context) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	result, err := h.processor.PauseCampaign(c.Request.Context(), campaignID)
	if err != nil {
		if errors.Is(err, processor.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(c.Request.Context(), "failed to pause campaign", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to pause campaign"})
		return
	}

	c.JSON(http.StatusOK, result)
}
