package catalog

import (
	"context"
	"testing"

	"github.com/niaone/backend/internal/models"
	"github.com/niaone/backend/internal/store"
)

func newCatalogService(t *testing.T) *service {
	t.Helper()
	s := store.New()
	s.SetCatalog(models.SeedCatalog())
	return NewService(s)
}

func names(items []models.CatalogItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func TestFilter_ByCategory(t *testing.T) {
	svc := newCatalogService(t)

	got := names(svc.Filter(context.Background(), "studio", ""))
	want := []string{"Co-Living Housing", "Daily Meals Plan"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFilter_AllWithSearch(t *testing.T) {
	svc := newCatalogService(t)

	got := svc.Filter(context.Background(), "All", "job")
	if len(got) != 1 || got[0].Name != "Job Matching Service" {
		t.Errorf("expected only Job Matching Service, got %v", names(got))
	}
}

func TestFilter_EmptyCategoryPassesEverything(t *testing.T) {
	svc := newCatalogService(t)

	got := svc.Filter(context.Background(), "", "")
	if len(got) != 4 {
		t.Errorf("expected all 4 items, got %d", len(got))
	}
}

func TestFilter_CategoryCaseInsensitive(t *testing.T) {
	svc := newCatalogService(t)

	got := svc.Filter(context.Background(), "STUDIO", "")
	if len(got) != 2 {
		t.Errorf("expected 2 studio items, got %d", len(got))
	}
}

func TestFilter_SearchCaseInsensitive(t *testing.T) {
	svc := newCatalogService(t)

	got := svc.Filter(context.Background(), "", "MEALS")
	if len(got) != 1 || got[0].Name != "Daily Meals Plan" {
		t.Errorf("expected Daily Meals Plan, got %v", names(got))
	}
}

func TestFilter_BothFiltersCompose(t *testing.T) {
	svc := newCatalogService(t)

	// "i" matches names across categories; the category filter must still
	// narrow the result.
	got := svc.Filter(context.Background(), "tribe", "i")
	if len(got) != 1 || got[0].Name != "Digital Literacy Course" {
		t.Errorf("expected Digital Literacy Course, got %v", names(got))
	}
}

func TestFilter_NoMatches(t *testing.T) {
	svc := newCatalogService(t)

	if got := svc.Filter(context.Background(), "studio", "movie"); len(got) != 0 {
		t.Errorf("expected no items, got %v", names(got))
	}
}
