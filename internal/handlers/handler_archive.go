package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkopo/chama_management_app/internal/apperrors"
	portssvc "github.com/mkopo/chama_management_app/internal/core/ports/services"
	"github.com/mkopo/chama_management_app/internal/dto"
	"github.com/mkopo/chama_management_app/internal/middleware"
)

// archiveHandler handles the period rollover endpoints and queries over
// archived data.
type archiveHandler struct {
	archiveService portssvc.ArchiveSvcFacade
}

// newArchiveHandler creates a new archiveHandler.
func newArchiveHandler(as portssvc.ArchiveSvcFacade) *archiveHandler {
	return &archiveHandler{
		archiveService: as,
	}
}

// registerArchiveRoutes registers the rollover and archive query routes.
// The generate endpoints mutate live records and are admin only.
func registerArchiveRoutes(rg *gin.RouterGroup, archiveService portssvc.ArchiveSvcFacade) {
	h := newArchiveHandler(archiveService)

	rg.POST("/generate_form", middleware.RequireAdmin(), h.generateForm)
	rg.POST("/generate_monthly_form", middleware.RequireAdmin(), h.generateMonthlyAdvanceForm)
	rg.GET("/histories", h.listHistories)
	rg.GET("/form_records/:history_id", h.getFormRecords)
	rg.GET("/query_advance_history", h.queryAdvanceHistory)
	rg.GET("/query_advance_summary", h.queryAdvanceSummaries)
}

func (h *archiveHandler) generateForm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GenerateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GenerateForm", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	identity, ok := middleware.GetIdentityFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.archiveService.GenerateForm(c.Request.Context(), req.GroupID, identity.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No performance records found for group"})
		} else {
			logger.Error("Failed to generate form", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate form"})
		}
		return
	}

	logger.Info("Archived group performance period",
		slog.Int64("group_id", req.GroupID),
		slog.Int64("history_id", resp.HistoryID),
		slog.Int("records", resp.RecordsArchivedCount))
	c.JSON(http.StatusCreated, resp)
}

func (h *archiveHandler) generateMonthlyAdvanceForm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GenerateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GenerateMonthlyAdvanceForm", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	identity, ok := middleware.GetIdentityFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.archiveService.GenerateMonthlyAdvanceForm(c.Request.Context(), req.GroupID, identity.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No advances found for group"})
		} else {
			logger.Error("Failed to generate monthly advance form", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate monthly advance form"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.GenerateMonthlyAdvanceFormResponse{Summary: *summary})
}

func (h *archiveHandler) listHistories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	histories, err := h.archiveService.ListHistories(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list histories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list histories"})
		return
	}

	c.JSON(http.StatusOK, histories)
}

func (h *archiveHandler) getFormRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	historyID, err := strconv.ParseInt(c.Param("history_id"), 10, 64)
	if err != nil || historyID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid history ID"})
		return
	}

	records, err := h.archiveService.GetFormRecords(c.Request.Context(), historyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No records found for history"})
		} else {
			logger.Error("Failed to get form records", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get form records"})
		}
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *archiveHandler) queryAdvanceHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	groupID, err := strconv.ParseInt(c.Query("group_id"), 10, 64)
	if err != nil || groupID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "group_id query parameter is required"})
		return
	}

	entries, err := h.archiveService.QueryAdvanceHistory(c.Request.Context(), groupID)
	if err != nil {
		logger.Error("Failed to query advance history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query advance history"})
		return
	}

	c.JSON(http.StatusOK, dto.AdvanceHistoryResponse{AdvanceHistory: entries})
}

func (h *archiveHandler) queryAdvanceSummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	groupName := c.Query("group_name")
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
			return
		}
		date = &parsed
	}

	summaries, err := h.archiveService.QueryAdvanceSummaries(c.Request.Context(), groupName, date)
	if err != nil {
		logger.Error("Failed to query advance summaries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query advance summaries"})
		return
	}

	c.JSON(http.StatusOK, summaries)
}
