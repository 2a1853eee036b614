package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mkopo/chama_management_app/internal/core/ports/services"
	"github.com/mkopo/chama_management_app/internal/dto"
	"github.com/mkopo/chama_management_app/internal/middleware"
	"github.com/mkopo/chama_management_app/internal/platform/config"
)

// oauthHandler handles Google sign-in.
type oauthHandler struct {
	oauthService portssvc.OAuthSvcFacade
	userService  portssvc.UserSvcFacade
	cfg          *config.Config
}

// newOAuthHandler creates a new oauthHandler.
func newOAuthHandler(os portssvc.OAuthSvcFacade, us portssvc.UserSvcFacade, cfg *config.Config) *oauthHandler {
	return &oauthHandler{
		oauthService: os,
		userService:  us,
		cfg:          cfg,
	}
}

// registerOAuthRoutes registers the public Google sign-in route.
func registerOAuthRoutes(r *gin.Engine, cfg *config.Config, oauthService portssvc.OAuthSvcFacade, userService portssvc.UserSvcFacade) {
	h := newOAuthHandler(oauthService, userService, cfg)

	google := r.Group("/auth/google")
	{
		google.POST("/exchange-code", h.exchangeCode)
	}
}

// exchangeCode trades an authorization code for an application JWT. The code
// is exchanged with Google, the returned ID token is verified, and the user
// account is created on first sign-in.
func (h *oauthHandler) exchangeCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ExchangeCode", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	token, err := h.oauthService.ExchangeCodeForToken(c.Request.Context(), req.Code)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired authorization code"})
			return
		}
		logger.Error("Failed to exchange authorization code", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to communicate with Google"})
		return
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		logger.Error("ID token missing from Google token response")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ID token from Google"})
		return
	}

	payload, err := h.oauthService.ValidateIDToken(c.Request.Context(), idToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		logger.Error("Email claim missing from Google ID token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Essential user information missing from Google token"})
		return
	}

	user, err := h.userService.GetOrCreateOAuthUser(c.Request.Context(), email)
	if err != nil {
		logger.Error("Failed to resolve oauth user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	appToken, err := middleware.GenerateJWT(*user, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration)
	if err != nil {
		logger.Error("Failed to generate token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	logger.Info("User logged in via Google", slog.Int64("user_id", user.ID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: appToken})
}
