package hotel

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
// 📄 List Hotels - GET /hotels
func (h *Handler) ListHotels(c *gin.Context) {
	var facets Facets
	if err := c.ShouldBindQuery(&facets); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters: " + err.Error()})
		return
	}

	hotels, err := h.Service.List(c.Request.Context(), facets)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load hotels: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hotels": hotels, "count": len(hotels)})
}

// ===========================
// 🔍 Get Hotel - GET /hotels/:slug
func (h *Handler) GetHotelBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing hotel slug"})
		return
	}

	hotel, err := h.Service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hotel not found"})
		return
	}

	c.JSON(http.StatusOK, hotel)
}
