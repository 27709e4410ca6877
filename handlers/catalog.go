package handlers

import (
	"net/http"

	"webnest/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static content catalogs the site renders.
type CatalogHandler struct {
	Repo catalog.Repository
}

func NewCatalogHandler(repo catalog.Repository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// ListServicesHandler returns the full service catalog.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.Repo.ListServices()})
}

// GetServiceHandler returns a single service by slug.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Repo.GetService(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *CatalogHandler) ListProjectsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"projects": h.Repo.ListProjects()})
}

func (h *CatalogHandler) ListCoursesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"courses": h.Repo.ListCourses()})
}

func (h *CatalogHandler) ListTestimonialsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"testimonials": h.Repo.ListTestimonials()})
}
