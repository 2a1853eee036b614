package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkopo/chama_management_app/internal/apperrors"
	portssvc "github.com/mkopo/chama_management_app/internal/core/ports/services"
	"github.com/mkopo/chama_management_app/internal/dto"
	"github.com/mkopo/chama_management_app/internal/middleware"
)

// performanceHandler handles HTTP requests for group and monthly performance.
type performanceHandler struct {
	performanceService portssvc.PerformanceSvcFacade
}

// newPerformanceHandler creates a new performanceHandler.
func newPerformanceHandler(ps portssvc.PerformanceSvcFacade) *performanceHandler {
	return &performanceHandler{
		performanceService: ps,
	}
}

// registerPerformanceRoutes registers routes related to performance records.
func registerPerformanceRoutes(rg *gin.RouterGroup, performanceService portssvc.PerformanceSvcFacade) {
	h := newPerformanceHandler(performanceService)

	rg.POST("/group_performances", middleware.RequireAdmin(), h.createOrUpdateGroupPerformance)
	rg.GET("/group_performances", h.listGroupPerformances)
	rg.GET("/group_performances/:id", h.getGroupPerformance)
	rg.PUT("/group_performances/:id", middleware.RequireAdmin(), h.updateGroupPerformance)
	rg.POST("/group_performances/filter", h.filterGroupPerformances)
	rg.POST("/monthly_performance", middleware.RequireAdmin(), h.upsertMonthlyPerformance)
	rg.GET("/monthly_performances", h.listMonthlyPerformances)
	rg.PUT("/monthly_performances/:id", middleware.RequireAdmin(), h.updateMonthlyPerformance)
	rg.POST("/monthly_performances/filter", h.filterMonthlyPerformances)
	rg.GET("/member_names", h.getMemberSummary)
}

func (h *performanceHandler) createOrUpdateGroupPerformance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGroupPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGroupPerformance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.performanceService.CreateOrUpdateGroupPerformance(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error resolving group performance", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to resolve group performance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save group performance"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.GroupPerformanceResponse{
		ID:      record.ID,
		Message: "Record saved successfully",
	})
}

func (h *performanceHandler) listGroupPerformances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	groupID, err := strconv.ParseInt(c.Query("group_id"), 10, 64)
	if err != nil || groupID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "group_id query parameter is required"})
		return
	}

	resp, err := h.performanceService.ListGroupPerformances(c.Request.Context(), groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No records found for group"})
		} else {
			logger.Error("Failed to list group performances", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list group performances"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *performanceHandler) getGroupPerformance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	recordID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || recordID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return
	}

	record, err := h.performanceService.GetGroupPerformance(c.Request.Context(), recordID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		} else {
			logger.Error("Failed to get group performance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get group performance"})
		}
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *performanceHandler) updateGroupPerformance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	recordID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || recordID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record ID"})
		return
	}

	var req dto.UpdateGroupPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateGroupPerformance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.performanceService.UpdateGroupPerformance(c.Request.Context(), recordID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group performance not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update group performance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update group performance"})
		}
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *performanceHandler) filterGroupPerformances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PerformanceFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	records, err := h.performanceService.FilterGroupPerformances(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to filter group performances", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter group performances"})
		}
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *performanceHandler) upsertMonthlyPerformance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertMonthlyPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertMonthlyPerformance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sheet, err := h.performanceService.UpsertMonthlyPerformance(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to upsert monthly performance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save monthly performance"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": sheet.ID, "message": "Monthly performance saved"})
}

func (h *performanceHandler) listMonthlyPerformances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sheets, err := h.performanceService.ListMonthlyPerformances(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list monthly performances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list monthly performances"})
		return
	}

	c.JSON(http.StatusOK, sheets)
}

func (h *performanceHandler) updateMonthlyPerformance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sheetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || sheetID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sheet ID"})
		return
	}

	var req dto.UpdateMonthlyPerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMonthlyPerformance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sheet, err := h.performanceService.UpdateMonthlyPerformance(c.Request.Context(), sheetID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Monthly performance not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update monthly performance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update monthly performance"})
		}
		return
	}

	c.JSON(http.StatusOK, sheet)
}

func (h *performanceHandler) filterMonthlyPerformances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PerformanceFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sheets, err := h.performanceService.FilterMonthlyPerformances(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to filter monthly performances", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter monthly performances"})
		}
		return
	}

	c.JSON(http.StatusOK, sheets)
}

func (h *performanceHandler) getMemberSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	identity, ok := middleware.GetIdentityFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary, err := h.performanceService.GetMemberSummary(c.Request.Context(), identity.UserID)
	if err != nil {
		logger.Error("Failed to get member summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get member summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
