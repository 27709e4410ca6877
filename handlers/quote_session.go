package handlers

import (
	"net/http"
	"strings"

	"webnest/services/quote"

	"github.com/gin-gonic/gin"
)

// QuoteSessionHandler exposes the customization-session lifecycle.
type QuoteSessionHandler struct {
	Svc quote.SessionService
}

func NewQuoteSessionHandler(svc quote.SessionService) *QuoteSessionHandler {
	return &QuoteSessionHandler{Svc: svc}
}

// OpenQuoteSessionHandler handles POST /api/quote/session.
func (h *QuoteSessionHandler) OpenQuoteSessionHandler(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
		Currency  string `json:"currency"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := h.Svc.Open(c.Request.Context(), input.ServiceID, input.Currency)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateQuoteSessionHandler handles PUT /api/quote/session/:sessionID.
func (h *QuoteSessionHandler) UpdateQuoteSessionHandler(c *gin.Context) {
	var upd quote.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	view, err := h.Svc.Apply(c.Request.Context(), c.Param("sessionID"), upd)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "expired") {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// CloseQuoteSessionHandler handles DELETE /api/quote/session/:sessionID.
func (h *QuoteSessionHandler) CloseQuoteSessionHandler(c *gin.Context) {
	if err := h.Svc.Close(c.Request.Context(), c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}
