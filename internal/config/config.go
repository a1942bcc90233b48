package config

import "os"

// Config holds all runtime settings. Everything comes from env vars;
// cmd/api validates the required ones before calling Load.
type Config struct {
	Addr             string
	RecipeAPIKey     string
	RecipeAPIBaseURL string
	MarketReportPath string
	PricingStrategy  string
}

// Pricing strategies
const (
	StrategyNutrition  = "nutrition"
	StrategyIngredient = "ingredient"
)

func Load() *Config {
	return &Config{
		Addr:             GetEnv("APP_ADDR", "127.0.0.1:8000"),
		RecipeAPIKey:     os.Getenv("RECIPE_API_KEY"),
		RecipeAPIBaseURL: GetEnv("RECIPE_API_BASE_URL", "https://api.foodoscope.com/recipe2-api"),
		MarketReportPath: GetEnv("MARKET_REPORT_PATH", "Weekly Avg. Report Data Commoditywise.csv"),
		PricingStrategy:  GetEnv("PRICING_STRATEGY", StrategyNutrition),
	}
}

// GetEnv reads an env var with a fallback default
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
