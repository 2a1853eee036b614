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

// advanceHandler handles HTTP requests for cash advances and the manual
// credit ledger.
type advanceHandler struct {
	advanceService portssvc.AdvanceSvcFacade
}

// newAdvanceHandler creates a new advanceHandler.
func newAdvanceHandler(as portssvc.AdvanceSvcFacade) *advanceHandler {
	return &advanceHandler{
		advanceService: as,
	}
}

// registerAdvanceRoutes registers routes related to advances.
func registerAdvanceRoutes(rg *gin.RouterGroup, advanceService portssvc.AdvanceSvcFacade) {
	h := newAdvanceHandler(advanceService)

	advances := rg.Group("/advances")
	{
		advances.POST("", h.createAdvance)
		advances.GET("", h.listAdvancesByGroup)
		advances.GET("/mine", h.listOwnAdvances)
		advances.POST("/:id/payment", h.makePayment)
		advances.PATCH("/:id", h.updateAdvance)
		advances.GET("/:id/balance", h.remainingBalance)
	}

	credits := rg.Group("/advance_credits")
	{
		credits.POST("", h.createAdvanceCredit)
		credits.GET("", h.listAdvanceCredits)
	}
}

func advanceIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid advance ID"})
		return 0, false
	}
	return id, true
}

func (h *advanceHandler) createAdvance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAdvance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	identity, ok := middleware.GetIdentityFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	advance, err := h.advanceService.CreateAdvance(c.Request.Context(), req, identity.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating advance", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create advance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create advance"})
		}
		return
	}

	c.JSON(http.StatusCreated, advance)
}

func (h *advanceHandler) makePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	advanceID, ok := advanceIDParam(c)
	if !ok {
		return
	}

	var req dto.MakePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for MakePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	identity, ok := middleware.GetIdentityFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	advance, err := h.advanceService.MakePayment(c.Request.Context(), advanceID, req.PaymentAmount, identity.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Advance not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error applying payment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to apply payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply payment"})
		}
		return
	}

	c.JSON(http.StatusOK, advance)
}

func (h *advanceHandler) updateAdvance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	advanceID, ok := advanceIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAdvance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	advance, err := h.advanceService.UpdateAdvance(c.Request.Context(), advanceID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Advance not found"})
		} else {
			logger.Error("Failed to update advance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update advance"})
		}
		return
	}

	c.JSON(http.StatusOK, advance)
}

func (h *advanceHandler) remainingBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	advanceID, ok := advanceIDParam(c)
	if !ok {
		return
	}

	balance, err := h.advanceService.RemainingBalance(c.Request.Context(), advanceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Advance not found"})
		} else {
			logger.Error("Failed to get remaining balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get remaining balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RemainingBalanceResponse{RemainingBalance: balance})
}

func (h *advanceHandler) listAdvancesByGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	groupID, err := strconv.ParseInt(c.Query("group_id"), 10, 64)
	if err != nil || groupID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "group_id query parameter is required"})
		return
	}

	resp, err := h.advanceService.ListAdvancesByGroup(c.Request.Context(), groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		} else {
			logger.Error("Failed to list advances", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list advances"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *advanceHandler) listOwnAdvances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	identity, ok := middleware.GetIdentityFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	advances, err := h.advanceService.ListAdvancesForUser(c.Request.Context(), identity.UserID)
	if err != nil {
		logger.Error("Failed to list user advances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list advances"})
		return
	}

	c.JSON(http.StatusOK, advances)
}

func (h *advanceHandler) createAdvanceCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAdvanceCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAdvanceCredit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	credit, err := h.advanceService.CreateAdvanceCredit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create advance credit", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create advance credit"})
		}
		return
	}

	c.JSON(http.StatusCreated, credit)
}

func (h *advanceHandler) listAdvanceCredits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	credits, err := h.advanceService.ListAdvanceCredits(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list advance credits", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list advance credits"})
		return
	}

	c.JSON(http.StatusOK, credits)
}
