package catalog

import (
	"fmt"
	"strings"

	"bannerarchitect/internal/domain"
)

// Catalog is an immutable, ordered set of banner definitions.
type Catalog struct {
	defs  []domain.BannerDefinition
	index map[string]int
}

var defaultDefinitions = []domain.BannerDefinition{
	{
		ID:          "cyber",
		Style:       domain.BannerStyleCyber,
		Title:       "Futuristic Neon Cyber",
		Description: "Dark gradient, neon pink/blue accents, 3D icons, particle effects.",
	},
	{
		ID:          "minimal",
		Style:       domain.BannerStyleMinimal,
		Title:       "Minimal Flat Design",
		Description: "Light gray background, geometric icons, clean typography.",
	},
	{
		ID:          "luxury",
		Style:       domain.BannerStyleLuxury,
		Title:       "Luxury Gold / Premium",
		Description: "Dark metallic theme, gold accents, premium serif fonts.",
	},
	{
		ID:          "cartoon",
		Style:       domain.BannerStyleCartoon,
		Title:       "Cartoon / Playful",
		Description: "Bright colorful background, bold rounded fonts, engaging style.",
	},
}

// Default returns the four built-in banner styles.
func Default() *Catalog {
	c, err := New(defaultDefinitions...)
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a catalog from the given definitions, preserving their order.
func New(defs ...domain.BannerDefinition) (*Catalog, error) {
	c := &Catalog{
		defs:  make([]domain.BannerDefinition, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	for _, def := range defs {
		id := strings.TrimSpace(def.ID)
		if id == "" {
			return nil, fmt.Errorf("catalog: banner id is required")
		}
		if _, dup := c.index[id]; dup {
			return nil, fmt.Errorf("catalog: duplicate banner id %q", id)
		}
		def.ID = id
		c.index[id] = len(c.defs)
		c.defs = append(c.defs, def)
	}
	return c, nil
}

// List returns a copy of the definitions in catalog order.
func (c *Catalog) List() []domain.BannerDefinition {
	out := make([]domain.BannerDefinition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Find resolves a banner id to its definition.
func (c *Catalog) Find(id string) (domain.BannerDefinition, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.BannerDefinition{}, false
	}
	return c.defs[i], true
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}
