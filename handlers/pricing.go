// File: webnest/handlers/pricing.go
package handlers

import (
	"errors"
	"net/http"

	"webnest/middleware"
	"webnest/models"
	"webnest/services/submission"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler exposes the form endpoints that relay quote and
// partnership submissions to the mail layer.
type SubmissionHandler struct {
	Svc submission.Service
}

func NewSubmissionHandler(svc submission.Service) *SubmissionHandler {
	return &SubmissionHandler{Svc: svc}
}

// respondSubmitError maps submission errors onto the uniform
// {success, message, errors} response shape. Honeypot hits get a fake
// success so automated clients cannot distinguish themselves.
func respondSubmitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, submission.ErrBot):
		c.JSON(http.StatusOK, models.SubmitResponse{
			Success: true,
			Message: "Thanks! We'll be in touch shortly.",
		})
	case errors.Is(err, submission.ErrCSRF):
		c.JSON(http.StatusForbidden, models.SubmitResponse{
			Success: false,
			Message: "Your session expired. Please reload the page and try again.",
		})
	case errors.Is(err, submission.ErrDelivery):
		c.JSON(http.StatusBadGateway, models.SubmitResponse{
			Success: false,
			Message: "We couldn't send your request right now. Please try again in a moment.",
		})
	default:
		if ve, ok := submission.AsValidation(err); ok {
			resp := models.SubmitResponse{Success: false, Message: "Please review your submission."}
			for _, m := range ve.Messages {
				resp.Errors = append(resp.Errors, models.SubmitError{Message: m})
			}
			c.JSON(http.StatusBadRequest, resp)
			return
		}
		c.JSON(http.StatusInternalServerError, models.SubmitResponse{
			Success: false,
			Message: "Something went wrong. Please try again later.",
		})
	}
}

// SubmitPricingHandler handles POST /api/pricing.
func (h *SubmissionHandler) SubmitPricingHandler(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.SubmitResponse{
			Success: false,
			Message: "Please review your submission.",
			Errors:  []models.SubmitError{{Message: err.Error()}},
		})
		return
	}

	payload, err := h.Svc.SubmitQuote(c.Request.Context(), req, middleware.ClientIP(c))
	if err != nil {
		respondSubmitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Your quote is on its way to your inbox.",
		"total":   payload.Total,
	})
}

// SubmitPartnershipHandler handles POST /api/partnership.
func (h *SubmissionHandler) SubmitPartnershipHandler(c *gin.Context) {
	var inquiry models.PartnershipInquiry
	if err := c.ShouldBindJSON(&inquiry); err != nil {
		c.JSON(http.StatusBadRequest, models.SubmitResponse{
			Success: false,
			Message: "Please review your submission.",
			Errors:  []models.SubmitError{{Message: err.Error()}},
		})
		return
	}

	if err := h.Svc.SubmitPartnership(c.Request.Context(), inquiry, middleware.ClientIP(c)); err != nil {
		respondSubmitError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SubmitResponse{
		Success: true,
		Message: "Thanks for reaching out! We'll reply within two business days.",
	})
}
