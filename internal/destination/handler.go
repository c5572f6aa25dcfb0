package destination

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(r *Repository) *Handler {
	return &Handler{Repo: r}
}

// 📄 List Destinations - GET /destinations
func (h *Handler) ListDestinations(c *gin.Context) {
	destinations, err := h.Repo.FetchAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load destinations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"destinations": destinations, "count": len(destinations)})
}
