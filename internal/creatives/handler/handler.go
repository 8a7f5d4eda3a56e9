package handler

import (
	"campaign-server/internal/creatives/processor"
	"campaign-server/internal/observability"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CreativeProcessor
	logger    *observability.Logger
}

func New(processor processor.CreativeProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// GenerateCreativesRequest is the JSON body for creative generation
type GenerateCreativesRequest struct {
	CampaignID uuid.UUID `json:"campaign_id" binding:"required"`
	Count      int       `json:"count"`
}

// CreateCreativeRequest is the JSON body for manual creative creation
type CreateCreativeRequest struct {
	CampaignID uuid.UUID `json:"campaign_id" binding:"required"`
	Variant    string    `json:"variant" binding:"required"`
	Title      string    `json:"title" binding:"required"`
	Body       string    `json:"body" binding:"required"`
	ImageURL   *string   `json:"image_url"`
	CTA        *string   `json:"cta"`
}

// ModerateCreativeRequest is the JSON body for a moderation decision
type ModerateCreativeRequest struct {
	Status string `json:"status" binding:"required"`
}

// HandleGenerateCreatives generates template-based creatives for a campaign
func (h *Handler) HandleGenerateCreatives(c *gin.Context) {
	ctx := c.Request.Context()

	var req GenerateCreativesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind generate creatives request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Count == 0 {
		req.Count = 3
	}

	creatives, err := h.processor.GenerateCreatives(ctx, req.CampaignID, req.Count)
	if err != nil {
		if errors.Is(err, processor.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
			return
		}
		h.logger.Error(ctx, "failed to generate creatives", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, creatives)
}

// HandleCreateCreative creates a creative manually
func (h *Handler) HandleCreateCreative(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCreativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind create creative request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	creative, err := h.processor.CreateCreative(ctx, processor.CreateCreativeParams{
		CampaignID: req.CampaignID,
		Variant:    req.Variant,
		Title:      req.Title,
		Body:       req.Body,
		ImageURL:   req.ImageURL,
		CTA:        req.CTA,
	})
	if err != nil {
		if errors.Is(err, processor.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
			return
		}
		if errors.Is(err, processor.ErrRestrictedContent) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(ctx, "failed to create creative", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, creative)
}

// HandleListCreatives lists a campaign's creatives
func (h *Handler) HandleListCreatives(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Query("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	var moderationStatus *string
	if s := c.Query("moderation_status"); s != "" {
		moderationStatus = &s
	}

	creatives, err := h.processor.ListCreatives(ctx, campaignID, moderationStatus)
	if err != nil {
		if errors.Is(err, processor.ErrInvalidModerationState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(ctx, "failed to list creatives", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": creatives, "total": len(creatives)})
}

// HandleGetCreative retrieves a single creative
func (h *Handler) HandleGetCreative(c *gin.Context) {
	ctx := c.Request.Context()

	creativeID, err := uuid.Parse(c.Param("creative_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid creative id"})
		return
	}

	creative, err := h.processor.GetCreative(ctx, creativeID)
	if err != nil {
		if errors.Is(err, processor.ErrCreativeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "creative not found"})
			return
		}
		h.logger.Error(ctx, "failed to get creative", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, creative)
}

// HandleModerateCreative records a moderation decision
func (h *Handler) HandleModerateCreative(c *gin.Context) {
	ctx := c.Request.Context()

	creativeID, err := uuid.Parse(c.Param("creative_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid creative id"})
		return
	}

	var req ModerateCreativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind moderation request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	creative, err := h.processor.ModerateCreative(ctx, creativeID, req.Status)
	if err != nil {
		if errors.Is(err, processor.ErrCreativeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "creative not found"})
			return
		}
		if errors.Is(err, processor.ErrInvalidModerationState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(ctx, "failed to moderate creative", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, creative)
}

// HandleDeleteCreative removes a creative
func (h *Handler) HandleDeleteCreative(c *gin.Context) {
	ctx := c.Request.Context()

	creativeID, err := uuid.Parse(c.Param("creative_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid creative id"})
		return
	}

	if err := h.processor.DeleteCreative(ctx, creativeID); err != nil {
		if errors.Is(err, processor.ErrCreativeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "creative not found"})
			return
		}
		h.logger.Error(ctx, "failed to delete creative", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
