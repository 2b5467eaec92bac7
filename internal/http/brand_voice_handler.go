package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/satya-supercluster/brand-voice-service/internal/service"
)

// BrandVoiceHandler mantiene dependencias para los endpoints de brand voice.
type BrandVoiceHandler struct {
	logger *zap.Logger
	svc    *service.BrandVoiceService
}

func NewBrandVoiceHandler(logger *zap.Logger, svc *service.BrandVoiceService) *BrandVoiceHandler {
	return &BrandVoiceHandler{
		logger: logger,
		svc:    svc,
	}
}

// CreateProfile maneja POST /api/v1/brand-voice/profiles.
func (h *BrandVoiceHandler) CreateProfile(c *gin.Context) {
	var req struct {
		CustomerID    string `json:"customerId" binding:"required"`
		BrandName     string `json:"brandName" binding:"required"`
		SampleContent string `json:"sampleContent" binding:"required,min=100"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "customerId, brandName and sampleContent (min 100 characters) are required"})
		return
	}

	view, err := h.svc.CreateProfile(c.Request.Context(), req.CustomerID, req.BrandName, req.SampleContent)
	if err != nil {
		if errors.Is(err, service.ErrProfileExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "brand profile already exists for customer"})
			return
		}
		h.logger.Error("create profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create brand profile"})
		return
	}

	c.JSON(http.StatusCreated, view)
}

// GetProfile maneja GET /api/v1/brand-voice/profiles/:customerId.
func (h *BrandVoiceHandler) GetProfile(c *gin.Context) {
	customerID := c.Param("customerId")

	view, err := h.svc.GetProfile(c.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "brand profile not found"})
			return
		}
		h.logger.Error("get profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch brand profile"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// ValidateContent maneja POST /api/v1/brand-voice/validate.
func (h *BrandVoiceHandler) ValidateContent(c *gin.Context) {
	var req struct {
		CustomerID  string `json:"customerId" binding:"required"`
		Content     string `json:"content" binding:"required,min=10"`
		ContentType string `json:"contentType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid validate content request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "customerId and content (min 10 characters) are required"})
		return
	}

	result, err := h.svc.ValidateContent(c.Request.Context(), req.CustomerID, req.Content, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "brand profile not found"})
			return
		}
		h.logger.Error("validate content failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not validate content"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteProfile maneja DELETE /api/v1/brand-voice/profiles/:customerId.
func (h *BrandVoiceHandler) DeleteProfile(c *gin.Context) {
	customerID := c.Param("customerId")

	if err := h.svc.DeleteProfile(c.Request.Context(), customerID); err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "brand profile not found"})
			return
		}
		h.logger.Error("delete profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete brand profile"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Health maneja GET /api/v1/brand-voice/health.
func (h *BrandVoiceHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "brand-voice-service",
	})
}
