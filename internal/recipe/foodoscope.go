package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Every outbound call shares one bounded timeout; a slow upstream must
// never hang a request.
const requestTimeout = 10 * time.Second

// Foodoscope talks to the third-party recipe API
type Foodoscope struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewFoodoscope(baseURL, apiKey string) *Foodoscope {
	return &Foodoscope{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// listing responses arrive as {payload: {data: [...]}} with loosely typed
// records, so fields are coerced instead of strictly decoded
type envelope struct {
	Payload struct {
		Data []map[string]any `json:"data"`
	} `json:"payload"`
}

// --------------------------------------------------
// Menu listing
// --------------------------------------------------
func (f *Foodoscope) ListMenu(ctx context.Context) []Summary {
	env, err := f.fetchListing(ctx)
	if err != nil {
		log.Printf("menu fetch failed: %v, serving fallback menu", err)
		return FallbackMenu()
	}

	seen := map[string]bool{}
	var menu []Summary

	for _, rec := range env.Payload.Data {
		id := asString(rec["recipe_id"])
		title := asString(pick(rec, "Recipe_title", "recipe_title"))
		if id == "" {
			continue
		}
		if seen[title] {
			continue
		}
		seen[title] = true
		menu = append(menu, Summary{ID: id, Title: title})
	}

	if len(menu) == 0 {
		log.Println("menu listing had no usable entries, serving fallback menu")
		return FallbackMenu()
	}
	return menu
}

// --------------------------------------------------
// Detail by numeric id (ingredient records)
// --------------------------------------------------
func (f *Foodoscope) GetByID(ctx context.Context, id string) (*Detail, error) {
	endpoint := fmt.Sprintf("%s/search-recipe/%s", f.baseURL, url.PathEscape(id))

	// this endpoint skips the payload envelope and returns the record directly
	var rec struct {
		Title       string           `json:"Recipe_title"`
		Ingredients []map[string]any `json:"ingredients"`
	}
	if err := f.get(ctx, endpoint, &rec); err != nil {
		return nil, err
	}

	detail := &Detail{ID: id, Title: rec.Title}
	for _, ing := range rec.Ingredients {
		detail.Ingredients = append(detail.Ingredients, Ingredient{
			Name:     asString(ing["ingredient"]),
			Quantity: asString(ing["quantity"]),
		})
	}
	return detail, nil
}

// --------------------------------------------------
// Detail by exact title (nutrition records)
// --------------------------------------------------
func (f *Foodoscope) GetByTitle(ctx context.Context, title string) (*Detail, error) {
	env, err := f.fetchListing(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range env.Payload.Data {
		if asString(pick(rec, "Recipe_title", "recipe_title")) != title {
			continue
		}
		return &Detail{
			ID:        asString(rec["recipe_id"]),
			Title:     title,
			Calories:  asFloat(pick(rec, "calories", "Calories"), DefaultCalories),
			Protein:   asFloat(pick(rec, "protein", "Protein"), DefaultProtein),
			TotalTime: asFloat(pick(rec, "total_time", "totalTime"), DefaultTotalTime),
			Region:    firstNonEmpty(asString(pick(rec, "region", "Region")), DefaultRegion),
		}, nil
	}

	return nil, fmt.Errorf("recipe %q not found", title)
}

func (f *Foodoscope) fetchListing(ctx context.Context) (*envelope, error) {
	endpoint := fmt.Sprintf("%s/recipe/recipesinfo?page=1&limit=100", f.baseURL)
	var env envelope
	if err := f.get(ctx, endpoint, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// get performs an authenticated GET and decodes the JSON body into out
func (f *Foodoscope) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+f.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("recipe api unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("recipe api error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// --------------------------------------------------
// Loose-field coercion helpers
// --------------------------------------------------

func pick(rec map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// upstream ids arrive as JSON numbers
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

func asFloat(v any, fallback float64) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return n
		}
	case json.Number:
		if n, err := t.Float64(); err == nil {
			return n
		}
	}
	return fallback
}

func firstNonEmpty(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
