package main

import (
	"log"
	"os"

	"annadata/internal/analysis"
	"annadata/internal/config"
	"annadata/internal/flavor"
	"annadata/internal/market"
	"annadata/internal/recipe"
	"annadata/internal/router"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"RECIPE_API_KEY",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	cfg := config.Load()

	switch cfg.PricingStrategy {
	case config.StrategyNutrition, config.StrategyIngredient:
	default:
		log.Fatalf("❌ Unknown PRICING_STRATEGY: %s", cfg.PricingStrategy)
	}

	// ───────────────────────── MARKET DATA ─────────────────────────
	// loaded once; read-only for the life of the process
	table := market.Load(cfg.MarketReportPath)

	// ───────────────────────── SERVICES ─────────────────────────
	recipeClient := recipe.NewFoodoscope(cfg.RecipeAPIBaseURL, cfg.RecipeAPIKey)
	analysisService := analysis.NewService(recipeClient, table, cfg.PricingStrategy)

	// ───────────────────────── HANDLERS ─────────────────────────
	analysisHandler := analysis.NewHandler(analysisService)
	flavorHandler := flavor.NewHandler()

	r := router.New(analysisHandler, flavorHandler)

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://%s (strategy=%s)", cfg.Addr, cfg.PricingStrategy)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
