package handlers

import (
	"net/http"

	"webnest/middleware"
	"webnest/services/geo"

	"github.com/gin-gonic/gin"
)

// LocaleHandler guesses a default display currency for the visitor.
// Detection is best-effort; the endpoint always answers with a
// currency.
type LocaleHandler struct {
	Detector *geo.Detector
}

func NewLocaleHandler(detector *geo.Detector) *LocaleHandler {
	return &LocaleHandler{Detector: detector}
}

// DetectLocaleHandler handles GET /api/locale. Clients may send their
// own timezone in X-Timezone as a fallback hint.
func (h *LocaleHandler) DetectLocaleHandler(c *gin.Context) {
	currency := h.Detector.DetectCurrency(
		c.Request.Context(),
		middleware.ClientIP(c),
		c.GetHeader("X-Timezone"),
	)
	c.JSON(http.StatusOK, gin.H{"currency": currency})
}
