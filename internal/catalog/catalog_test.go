package catalog

import (
	"testing"

	"bannerarchitect/internal/domain"
)

func TestDefaultCatalogOrder(t *testing.T) {
	c := Default()
	defs := c.List()
	want := []struct {
		id    string
		style domain.BannerStyle
	}{
		{"cyber", domain.BannerStyleCyber},
		{"minimal", domain.BannerStyleMinimal},
		{"luxury", domain.BannerStyleLuxury},
		{"cartoon", domain.BannerStyleCartoon},
	}
	if len(defs) != len(want) {
		t.Fatalf("len(List()) = %d, want %d", len(defs), len(want))
	}
	for i, w := range want {
		if defs[i].ID != w.id || defs[i].Style != w.style {
			t.Fatalf("defs[%d] = %s/%s, want %s/%s", i, defs[i].ID, defs[i].Style, w.id, w.style)
		}
		if defs[i].Title == "" || defs[i].Description == "" {
			t.Fatalf("defs[%d] missing display strings: %+v", i, defs[i])
		}
	}
}

func TestListReturnsCopy(t *testing.T) {
	c := Default()
	defs := c.List()
	defs[0].Title = "mutated"
	if got, _ := c.Find("cyber"); got.Title == "mutated" {
		t.Fatalf("catalog was mutated through List()")
	}
}

func TestFind(t *testing.T) {
	c := Default()
	def, ok := c.Find("luxury")
	if !ok || def.Style != domain.BannerStyleLuxury {
		t.Fatalf("Find(luxury) = %+v, %v", def, ok)
	}
	if _, ok := c.Find("unknown"); ok {
		t.Fatalf("expected unknown id to be missing")
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New(
		domain.BannerDefinition{ID: "a", Style: domain.BannerStyleCyber},
		domain.BannerDefinition{ID: "a", Style: domain.BannerStyleMinimal},
	)
	if err == nil {
		t.Fatalf("expected duplicate id error")
	}
	if _, err := New(domain.BannerDefinition{ID: " "}); err == nil {
		t.Fatalf("expected blank id error")
	}
}
