package handler

import (
	"campaign-server/internal/leads/processor"
	"campaign-server/internal/observability"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.LeadProcessor
	logger    *observability.Logger
}

func NewHandler(p processor.LeadProcessor, logger *observability.Logger) *Handler {
	return &Handler{processor: p, logger: logger}
}

type UpsertLeadRequest struct {
	Phone        string     `json:"phone" binding:"required"`
	UTMSource    *string    `json:"utm_source"`
	UTMCampaign  *string    `json:"utm_campaign"`
	UTMContent   *string    `json:"utm_content"`
	UTMMedium    *string    `json:"utm_medium"`
	UTMTerm      *string    `json:"utm_term"`
	FirstTouchAt *time.Time `json:"first_touch_at"`
}

// HandleUpsertLead creates or refreshes a lead keyed by phone
func (h *Handler) HandleUpsertLead(c *gin.Context) {
	var req UpsertLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.processor.UpsertLead(c.Request.Context(), processor.UpsertLeadParams{
		Phone:        req.Phone,
		UTMSource:    req.UTMSource,
		UTMCampaign:  req.UTMCampaign,
		UTMContent:   req.UTMContent,
		UTMMedium:    req.UTMMedium,
		UTMTerm:      req.UTMTerm,
		FirstTouchAt: req.FirstTouchAt,
	})
	if err != nil {
		if errors.Is(err, processor.ErrInvalidPhone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(c.Request.Context(), "failed to upsert lead", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upsert lead"})
		return
	}

	c.JSON(http.StatusOK, lead)
}

// HandleGetLead retrieves a lead by ID
func (h *Handler) HandleGetLead(c *gin.Context) {
	leadID, err := uuid.Parse(c.Param("lead_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead id"})
		return
	}

	lead, err := h.processor.GetLead(c.Request.Context(), leadID)
	if err != nil {
		if errors.Is(err, processor.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(c.Request.Context(), "failed to get lead", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get lead"})
		return
	}

	c.JSON(http.StatusOK, lead)
}

type CreateConversionRequest struct {
	LeadID      uuid.UUID  `json:"lead_id" binding:"required"`
	CampaignID  *uuid.UUID `json:"campaign_id"`
	ChannelCode *string    `json:"channel_code"`
	RevenueRub  float64    `json:"revenue_rub"`
	ConvertedAt *time.Time `json:"converted_at"`
}

// HandleCreateConversion records a sale for an existing lead
func (h *Handler) HandleCreateConversion(c *gin.Context) {
	var req CreateConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conversion, err := h.processor.CreateConversion(c.Request.Context(), processor.CreateConversionParams{
		LeadID:      req.LeadID,
		CampaignID:  req.CampaignID,
		ChannelCode: req.ChannelCode,
		RevenueRub:  req.RevenueRub,
		ConvertedAt: req.ConvertedAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrLeadNotFound), errors.Is(err, processor.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, processor.ErrInvalidRevenue), errors.Is(err, processor.ErrInvalidChannel):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error(c.Request.Context(), "failed to create conversion", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create conversion"})
		}
		return
	}

	c.JSON(http.StatusCreated, conversion)
}
