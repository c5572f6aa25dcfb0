package umrah

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 📄 List Packages - GET /umrah
func (h *Handler) ListPackages(c *gin.Context) {
	var facets Facets
	if err := c.ShouldBindQuery(&facets); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters: " + err.Error()})
		return
	}

	packages, err := h.Service.List(c.Request.Context(), facets)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load umrah packages: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"packages": packages, "count": len(packages)})
}

// ===========================
// 🔍 Get Package - GET /umrah/:slug
func (h *Handler) GetPackageBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing package slug"})
		return
	}

	p, err := h.Service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "umrah package not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}
