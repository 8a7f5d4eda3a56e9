package handler

import (
	"campaign-server/internal/campaign/processor"
	"campaign-server/internal/observability"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCampaignRequest is the JSON body for campaign creation
type CreateCampaignRequest struct {
	Title         string   `json:"title" binding:"required"`
	SKU           string   `json:"sku" binding:"required"`
	BudgetRub     float64  `json:"budget_rub" binding:"required"`
	TargetCACRub  float64  `json:"target_cac_rub" binding:"required"`
	TargetROAS    float64  `json:"target_roas" binding:"required"`
	Channels      []string `json:"channels" binding:"required"`
	ABTestEnabled bool     `json:"ab_test_enabled"`
}

// UpdateCampaignRequest is the JSON body for a partial campaign update
type UpdateCampaignRequest struct {
	Title         *string  `json:"title"`
	BudgetRub     *float64 `json:"budget_rub"`
	TargetCACRub  *float64 `json:"target_cac_rub"`
	TargetROAS    *float64 `json:"target_roas"`
	Status        *string  `json:"status"`
	ABTestEnabled *bool    `json:"ab_test_enabled"`
}

// validationStatus maps a processor error to an HTTP status, 0 when the
// error is not a validation failure.
func validationStatus(err error) int {
	switch {
	case errors.Is(err, processor.ErrInvalidTitle),
		errors.Is(err, processor.ErrInvalidSKU),
		errors.Is(err, processor.ErrInvalidBudget),
		errors.Is(err, processor.ErrInvalidTarget),
		errors.Is(err, processor.ErrInvalidChannel),
		errors.Is(err, processor.ErrNoChannels),
		errors.Is(err, processor.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, processor.ErrRestrictedSKU):
		return http.StatusUnprocessableEntity
	}
	return 0
}

// HandleCreateCampaign creates a new campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind create campaign request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	campaign, err := h.processor.CreateCampaign(ctx, processor.CreateCampaignParams{
		Title:         req.Title,
		SKU:           req.SKU,
		BudgetRub:     req.BudgetRub,
		TargetCACRub:  req.TargetCACRub,
		TargetROAS:    req.TargetROAS,
		Channels:      req.Channels,
		ABTestEnabled: req.ABTestEnabled,
	})
	if err != nil {
		if status := validationStatus(err); status != 0 {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(ctx, "failed to create campaign", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleGetCampaign retrieves a single campaign
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, campaignID)
	if err != nil {
		if errors.Is(err, processor.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
			return
		}
		h.logger.Error(ctx, "failed to get campaign", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleListCampaigns retrieves a page of campaigns
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	resp, err := h.processor.ListCampaigns(ctx, processor.ListCampaignsParams{
		Page:     page,
		PageSize: pageSize,
		Status:   status,
	})
	if err != nil {
		if errors.Is(err, processor.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(ctx, "failed to list campaigns", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleUpdateCampaign applies a partial update to a campaign
func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind update campaign request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	campaign, err := h.processor.UpdateCampaign(ctx, campaignID, processor.UpdateCampaignParams{
		Title:         req.Title,
		BudgetRub:     req.BudgetRub,
		TargetCACRub:  req.TargetCACRub,
		TargetROAS:    req.TargetROAS,
		Status:        req.Status,
		ABTestEnabled: req.ABTestEnabled,
	})
	if err != nil {
		if errors.Is(err, processor.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
			return
		}
		if status := validationStatus(err); status != 0 {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(ctx, "failed to update campaign", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleDeleteCampaign removes a campaign
func (h *Handler) HandleDeleteCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid campaign id"})
		return
	}

	if err := h.processor.DeleteCampaign(ctx, campaignID); err != nil {
		if errors.Is(err, processor.ErrCampaignNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "campaign not found"})
			return
		}
		h.logger.Error(ctx, "failed to delete campaign", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
