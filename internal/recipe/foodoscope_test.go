package recipe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const listingBody = `{
	"payload": {
		"data": [
			{"recipe_id": 92757, "Recipe_title": "Costa Rican Stuffed Tortilla", "calories": "300", "protein": 10, "total_time": 45, "region": "Central American"},
			{"recipe_id": "10087", "Recipe_title": "Dal Rice", "calories": 220, "protein": 8.5, "total_time": "30"},
			{"Recipe_title": "No Id Recipe"},
			{"recipe_id": "999", "Recipe_title": "Dal Rice"}
		]
	}
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Foodoscope) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewFoodoscope(srv.URL, "test-key")
}

func TestListMenu_MapsFiltersAndDedupes(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer auth header, got %q", got)
		}
		if !strings.Contains(r.URL.RawQuery, "page=1") || !strings.Contains(r.URL.RawQuery, "limit=100") {
			t.Errorf("expected paginated listing request, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(listingBody))
	})

	menu := client.ListMenu(context.Background())

	if len(menu) != 2 {
		t.Fatalf("expected 2 entries after filter + dedupe, got %d", len(menu))
	}
	if menu[0].ID != "92757" || menu[0].Title != "Costa Rican Stuffed Tortilla" {
		t.Errorf("unexpected first entry: %+v", menu[0])
	}
	if menu[1].ID != "10087" || menu[1].Title != "Dal Rice" {
		t.Errorf("unexpected second entry: %+v", menu[1])
	}
}

func TestListMenu_UpstreamErrorFallsBack(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	menu := client.ListMenu(context.Background())

	if len(menu) == 0 || len(menu) > 3 {
		t.Fatalf("expected 1-3 fallback entries, got %d", len(menu))
	}
	if menu[0].ID != "92757" {
		t.Errorf("expected documented fallback recipe, got %+v", menu[0])
	}
}

func TestListMenu_UnreachableFallsBack(t *testing.T) {
	srv, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close() // connection refused from here on

	menu := client.ListMenu(context.Background())

	if len(menu) != len(FallbackMenu()) {
		t.Fatalf("expected fallback menu, got %+v", menu)
	}
}

func TestListMenu_GarbageBodyFallsBack(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	menu := client.ListMenu(context.Background())

	if menu[0].ID != FallbackMenu()[0].ID {
		t.Errorf("expected fallback menu, got %+v", menu)
	}
}

func TestGetByID_ParsesIngredients(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/search-recipe/92757") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"Recipe_title": "Costa Rican Stuffed Tortilla",
			"ingredients": [
				{"ingredient": "chicken breast", "quantity": "2"},
				{"ingredient": "corn tortilla", "quantity": 6},
				{"ingredient": "salt", "quantity": ""}
			]
		}`))
	})

	detail, err := client.GetByID(context.Background(), "92757")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(detail.Ingredients) != 3 {
		t.Fatalf("expected 3 ingredients, got %d", len(detail.Ingredients))
	}
	if detail.Ingredients[0].Name != "chicken breast" || detail.Ingredients[0].Quantity != "2" {
		t.Errorf("unexpected first ingredient: %+v", detail.Ingredients[0])
	}
	if detail.Ingredients[1].Quantity != "6" {
		t.Errorf("expected numeric quantity coerced to string, got %q", detail.Ingredients[1].Quantity)
	}
}

func TestGetByID_UpstreamErrorPropagates(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	})

	if _, err := client.GetByID(context.Background(), "1"); err == nil {
		t.Fatal("expected error from failing upstream")
	}
}

func TestGetByTitle_ExactMatchWithCoercion(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingBody))
	})

	detail, err := client.GetByTitle(context.Background(), "Costa Rican Stuffed Tortilla")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.Calories != 300 {
		t.Errorf("expected string calories coerced to 300, got %v", detail.Calories)
	}
	if detail.Protein != 10 || detail.TotalTime != 45 {
		t.Errorf("unexpected attributes: %+v", detail)
	}
	if detail.Region != "Central American" {
		t.Errorf("expected region from record, got %q", detail.Region)
	}
}

func TestGetByTitle_MissingFieldsUseDefaults(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"payload":{"data":[{"recipe_id":"1","Recipe_title":"Mystery Dish"}]}}`))
	})

	detail, err := client.GetByTitle(context.Background(), "Mystery Dish")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if detail.Calories != DefaultCalories || detail.Protein != DefaultProtein {
		t.Errorf("expected default attributes, got %+v", detail)
	}
	if detail.Region != DefaultRegion {
		t.Errorf("expected default region, got %q", detail.Region)
	}
}

func TestGetByTitle_NotFound(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingBody))
	})

	if _, err := client.GetByTitle(context.Background(), "Unknown Dish"); err == nil {
		t.Fatal("expected not-found error")
	}
}
