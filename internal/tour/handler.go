package tour

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
// 📄 List Tours - GET /tours
func (h *Handler) ListTours(c *gin.Context) {
	var facets Facets
	if err := c.ShouldBindQuery(&facets); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters: " + err.Error()})
		return
	}

	tours, err := h.Service.List(c.Request.Context(), facets)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load tours: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tours": tours, "count": len(tours)})
}

// ===========================
// 🔍 Get Tour - GET /tours/:slug
func (h *Handler) GetTourBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing tour slug"})
		return
	}

	t, err := h.Service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tour not found"})
		return
	}

	c.JSON(http.StatusOK, t)
}
