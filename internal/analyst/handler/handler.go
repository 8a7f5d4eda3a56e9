package handler

import (
	"campaign-server/internal/analyst/processor"
	"campaign-server/internal/observability"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.AnalystProcessor
	logger    *observability.Logger
}

func NewHandler(p processor.AnalystProcessor, logger *observability.Logger) *Handler {
	return &Handler{processor: p, logger: logger}
}

type AnalyzeCampaignRequest struct {
	CampaignID uuid.UUID `json:"campaign_id" binding:"required"`
	Question   *string   `json:"question"`
}

// HandleAnalyzeCampaign runs an AI assessment of one campaign
func (h *Handler) HandleAnalyzeCampaign(c *gin.Context) {
	var req AnalyzeCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := h.processor.AnalyzeCampaign(c.Request.Context(), req.CampaignID, req.Question)
	if err != nil {
		if errors.Is(err, processor.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(c.Request.Context(), "failed to analyze campaign", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze campaign"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

type ChatRequest struct {
	Message    string     `json:"message" binding:"required"`
	CampaignID *uuid.UUID `json:"campaign_id"`
}

// HandleChat answers a free-form marketing question
func (h *Handler) HandleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.processor.Chat(c.Request.Context(), req.Message, req.CampaignID)
	if err != nil {
		if errors.Is(err, processor.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(c.Request.Context(), "failed to answer analyst chat", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to answer analyst chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
