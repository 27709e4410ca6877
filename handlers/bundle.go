// File: webnest/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints.
	ListServicesHandler     gin.HandlerFunc
	GetServiceHandler       gin.HandlerFunc
	ListProjectsHandler     gin.HandlerFunc
	ListCoursesHandler      gin.HandlerFunc
	ListTestimonialsHandler gin.HandlerFunc

	// Form endpoints.
	CSRFTokenHandler         gin.HandlerFunc
	SubmitPricingHandler     gin.HandlerFunc
	SubmitPartnershipHandler gin.HandlerFunc
	NewsletterSignupHandler  gin.HandlerFunc

	// Quote session endpoints.
	OpenQuoteSessionHandler   gin.HandlerFunc
	UpdateQuoteSessionHandler gin.HandlerFunc
	CloseQuoteSessionHandler  gin.HandlerFunc

	// Locale detection.
	DetectLocaleHandler gin.HandlerFunc
}
