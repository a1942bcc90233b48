package analysis

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /get-menu
// --------------------------------------------------
func (h *Handler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Menu(c.Request.Context()))
}

// --------------------------------------------------
// POST /analyze
// --------------------------------------------------
func (h *Handler) Analyze(c *gin.Context) {
	var req struct {
		RecipeID    string  `json:"recipe_id"`
		DishName    string  `json:"dish_name"`
		VendorPrice float64 `json:"vendor_price"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipeRef := req.RecipeID
	if recipeRef == "" {
		recipeRef = req.DishName
	}
	if recipeRef == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe_id or dish_name is required"})
		return
	}

	if req.VendorPrice <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vendor_price must be a positive number"})
		return
	}

	result, err := h.service.Analyze(c.Request.Context(), recipeRef, req.VendorPrice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
