package analysis

import (
	"context"
	"fmt"
	"log"

	"annadata/internal/config"
	"annadata/internal/market"
	"annadata/internal/recipe"

	"github.com/google/uuid"
)

type Service struct {
	client   recipe.Client
	table    market.Table
	strategy string
}

func NewService(client recipe.Client, table market.Table, strategy string) *Service {
	return &Service{
		client:   client,
		table:    table,
		strategy: strategy,
	}
}

// --------------------------------------------------
// Menu listing
// --------------------------------------------------
func (s *Service) Menu(ctx context.Context) []recipe.Summary {
	return s.client.ListMenu(ctx)
}

// --------------------------------------------------
// Price analysis
// --------------------------------------------------
// Analyze resolves the recipe, estimates its honest cost and classifies
// the vendor price. Upstream failures never fail the request; the verdict
// is computed from default attributes and flagged as degraded instead.
func (s *Service) Analyze(ctx context.Context, recipeRef string, vendorPrice float64) (*Result, error) {
	detail, degraded := s.resolveRecipe(ctx, recipeRef)

	result := &Result{
		AnalysisID: uuid.New().String(),
		Degraded:   degraded,
	}

	var est Estimate
	if s.strategy == config.StrategyIngredient {
		if len(detail.Ingredients) == 0 {
			// nothing to price line by line; score the default attributes
			if !result.Degraded {
				log.Printf("recipe %q has no ingredient data, scoring default attributes", recipeRef)
				result.Degraded = true
			}
			est = NutritionEstimate(recipe.DefaultDetail())
		} else {
			est = IngredientEstimate(detail.Ingredients, s.table)
			result.Inflation = fmt.Sprintf("%.1f%%", round1(est.AvgInflation))
		}
		result.Status, result.Verdict = ThreeTierVerdict(vendorPrice, est.HonestCost)
	} else {
		est = NutritionEstimate(detail)
		result.Status, result.Verdict = TwoTierVerdict(vendorPrice, est.HonestCost)
	}

	result.HonestCost = est.HonestCost
	result.Breakdown = est.Breakdown

	return result, nil
}

// resolveRecipe fetches the recipe per strategy, degrading to the default
// detail when the upstream lookup fails
func (s *Service) resolveRecipe(ctx context.Context, recipeRef string) (*recipe.Detail, bool) {
	var detail *recipe.Detail
	var err error

	if s.strategy == config.StrategyIngredient {
		detail, err = s.client.GetByID(ctx, recipeRef)
	} else {
		detail, err = s.client.GetByTitle(ctx, recipeRef)
	}

	if err != nil {
		log.Printf("recipe lookup for %q failed: %v, degrading to defaults", recipeRef, err)
		return recipe.DefaultDetail(), true
	}
	return detail, false
}
