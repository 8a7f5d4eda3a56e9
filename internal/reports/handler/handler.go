package handler

import (
	"campaign-server/internal/observability"
	"campaign-server/internal/reports/processor"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.ReportProcessor
	logger    *observability.Logger
}

func NewHandler(p processor.ReportProcessor, logger *observability.Logger) *Handler {
	return &Handler{processor: p, logger: logger}
}

// HandleGenerateWeeklyReport assembles the trailing-week report without
// sending it
func (h *Handler) HandleGenerateWeeklyReport(c *gin.Context) {
	weeksBack, err := strconv.Atoi(c.DefaultQuery("weeks_back", "1"))
	if err != nil || weeksBack < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weeks_back must be a positive integer"})
		return
	}

	report, err := h.processor.GenerateWeeklyReport(c.Request.Context(), weeksBack)
	if err != nil {
		if errors.Is(err, processor.ErrReportsDisabled) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(c.Request.Context(), "failed to generate weekly report", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate weekly report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// HandleSendWeeklyReport generates the report and emails it to the configured
// recipient
func (h *Handler) HandleSendWeeklyReport(c *gin.Context) {
	if err := h.processor.SendWeeklyReport(c.Request.Context()); err != nil {
		if errors.Is(err, processor.ErrReportsDisabled) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error(c.Request.Context(), "failed to send weekly report", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send weekly report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
