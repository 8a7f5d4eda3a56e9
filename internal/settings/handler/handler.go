package handler

import (
	"campaign-server/internal/observability"
	"campaign-server/internal/settings/processor"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.SettingProcessor
	logger    *observability.Logger
}

func NewHandler(p processor.SettingProcessor, logger *observability.Logger) *Handler {
	return &Handler{processor: p, logger: logger}
}

type UpsertSettingRequest struct {
	Value       string  `json:"value" binding:"required"`
	ValueType   string  `json:"value_type" binding:"required"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
	UpdatedBy   *string `json:"updated_by"`
}

// HandleUpsertSetting creates or updates a setting under the key in the path
func (h *Handler) HandleUpsertSetting(c *gin.Context) {
	var req UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setting, err := h.processor.UpsertSetting(c.Request.Context(), processor.UpsertSettingParams{
		Key:         c.Param("key"),
		Value:       req.Value,
		ValueType:   req.ValueType,
		Category:    req.Category,
		Description: req.Description,
		UpdatedBy:   req.UpdatedBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrInvalidKey), errors.Is(err, processor.ErrInvalidValueType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, processor.ErrInvalidValue):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			h.logger.Error(c.Request.Context(), "failed to upsert setting", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upsert setting"})
		}
		return
	}

	c.JSON(http.StatusOK, setting)
}

// HandleGetSetting retrieves a setting by key
func (h *Handler) HandleGetSetting(c *gin.Context) {
	setting, err := h.processor.GetSetting(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, processor.ErrSettingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(c.Request.Context(), "failed to get setting", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get setting"})
		return
	}

	c.JSON(http.StatusOK, setting)
}

// HandleGetSettingValue returns a setting with its value converted to the
// declared type
func (h *Handler) HandleGetSettingValue(c *gin.Context) {
	typed, err := h.processor.GetTypedValue(c.Request.Context(), c.Param("key"))
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrSettingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, processor.ErrInvalidValue), errors.Is(err, processor.ErrInvalidValueType):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			h.logger.Error(c.Request.Context(), "failed to get setting value", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get setting value"})
		}
		return
	}

	c.JSON(http.StatusOK, typed)
}

// HandleListSettings lists settings, optionally filtered by category
func (h *Handler) HandleListSettings(c *gin.Context) {
	var category *string
	if v := c.Query("category"); v != "" {
		category = &v
	}

	settings, err := h.processor.ListSettings(c.Request.Context(), category)
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to list settings", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings, "total": len(settings)})
}
