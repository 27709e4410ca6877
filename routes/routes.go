package routes

import (
	"net/http"
	"time"

	"webnest/handlers"
	"webnest/middleware"
	"webnest/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the content-catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/services/:id", hb.GetServiceHandler)
		api.GET("/projects", hb.ListProjectsHandler)
		api.GET("/courses", hb.ListCoursesHandler)
		api.GET("/testimonials", hb.ListTestimonialsHandler)
	}
}

// RegisterFormRoutes registers the lead-capture endpoints.
func RegisterFormRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/csrf", hb.CSRFTokenHandler)
		api.POST("/pricing", hb.SubmitPricingHandler)
		api.POST("/partnership", hb.SubmitPartnershipHandler)
		api.POST("/newsletter", hb.NewsletterSignupHandler)
	}
}

// RegisterQuoteRoutes sets up the customization-session endpoints.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	quoteGroup := r.Group("/api/quote")
	{
		quoteGroup.POST("/session", hb.OpenQuoteSessionHandler)
		quoteGroup.PUT("/session/:sessionID", hb.UpdateQuoteSessionHandler)
		quoteGroup.DELETE("/session/:sessionID", hb.CloseQuoteSessionHandler)
	}
}

// RegisterLocaleRoute registers the default-currency detection endpoint.
func RegisterLocaleRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/locale", hb.DetectLocaleHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Webnest",
			"checks":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Timezone"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterCatalogRoutes(r, hb)
	RegisterFormRoutes(r, hb)
	RegisterQuoteRoutes(r, hb)
	RegisterLocaleRoute(r, hb)
	RegisterHealthRoute(r)
}
