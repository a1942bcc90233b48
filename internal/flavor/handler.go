package flavor

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// GET /flavors
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, Alternatives())
}
