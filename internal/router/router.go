package router

import (
	"annadata/internal/analysis"
	"annadata/internal/flavor"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New builds the HTTP surface: the menu proxy, the price-analysis
// endpoint and the FlavorDB table. CORS is fully open; every route
// is public and unauthenticated.
func New(analysisHandler *analysis.Handler, flavorHandler *flavor.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.GET("/get-menu", analysisHandler.GetMenu)
	r.POST("/analyze", analysisHandler.Analyze)
	r.GET("/flavors", flavorHandler.List)

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
