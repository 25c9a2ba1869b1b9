package repository

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

//go:embed data/categories.yaml
var categoriesYAML []byte

// NameIndexer resolves a transliteration to its canonical position.
type NameIndexer interface {
	IndexOf(name string) (int, bool)
}

type categoryDocument struct {
	Categories []struct {
		Name        string         `yaml:"name"`
		Color       entities.Color `yaml:"color"`
		Description string         `yaml:"description"`
		Names       []string       `yaml:"names"`
	} `yaml:"categories"`
}

// CategoryIndex groups names into categories and answers lookups in both directions.
type CategoryIndex struct {
	categories []entities.Category
	byID       map[string]int
	registry   NameIndexer
}

// NewCategoryIndex creates a CategoryIndex from the bundled category document.
func NewCategoryIndex(registry NameIndexer) (*CategoryIndex, error) {
	return NewCategoryIndexFromYAML(categoriesYAML, registry)
}

// NewCategoryIndexFromYAML decodes a category document.
func NewCategoryIndexFromYAML(data []byte, registry NameIndexer) (*CategoryIndex, error) {
	var doc categoryDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories YAML: %w", err)
	}

	categories := make([]entities.Category, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		categories = append(categories, entities.Category{
			Name:        c.Name,
			Color:       c.Color,
			Names:       c.Names,
			Description: c.Description,
		})
	}

	return NewCategoryIndexFrom(categories, registry), nil
}

// NewCategoryIndexFrom creates a CategoryIndex from categories in declared order.
// Missing IDs are derived from the display name, and repeated members are
// collapsed to their first occurrence.
func NewCategoryIndexFrom(categories []entities.Category, registry NameIndexer) *CategoryIndex {
	idx := &CategoryIndex{
		categories: make([]entities.Category, 0, len(categories)),
		byID:       make(map[string]int, len(categories)),
		registry:   registry,
	}

	for _, c := range categories {
		if c.ID == "" {
			c.ID = categoryID(c.Name)
		}
		c.Names = uniqueNames(c.Names)

		idx.byID[c.ID] = len(idx.categories)
		idx.categories = append(idx.categories, c)
	}

	return idx
}

func categoryID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("divine-names:category:"+name)).String()
}

// uniqueNames removes duplicates while preserving the original order.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// All returns every category in declared order.
func (c *CategoryIndex) All() []entities.Category {
	out := make([]entities.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// ByID returns the category with the given ID.
func (c *CategoryIndex) ByID(id string) (entities.Category, bool) {
	i, ok := c.byID[id]
	if !ok {
		return entities.Category{}, false
	}
	return c.categories[i], true
}

// ByName returns the category whose display name matches, ignoring case.
func (c *CategoryIndex) ByName(name string) (entities.Category, bool) {
	for _, cat := range c.categories {
		if strings.EqualFold(cat.Name, name) {
			return cat, true
		}
	}
	return entities.Category{}, false
}

// CategoryFor returns the first category, in declared order, that lists the name.
func (c *CategoryIndex) CategoryFor(name string) (entities.Category, bool) {
	for _, cat := range c.categories {
		if cat.Contains(name) {
			return cat, true
		}
	}
	return entities.Category{}, false
}

// NamesIn returns the member names of a category in declared order.
func (c *CategoryIndex) NamesIn(id string) []string {
	cat, ok := c.ByID(id)
	if !ok {
		return nil
	}
	out := make([]string, len(cat.Names))
	copy(out, cat.Names)
	return out
}

// IndicesIn returns the zero-based registry positions of a category's members.
// Members unknown to the registry are skipped; see Validate.
func (c *CategoryIndex) IndicesIn(id string) []int {
	cat, ok := c.ByID(id)
	if !ok {
		return nil
	}

	indices := make([]int, 0, len(cat.Names))
	for _, name := range cat.Names {
		if i, ok := c.registry.IndexOf(name); ok {
			indices = append(indices, i)
		}
	}
	return indices
}

// Validate reports category members that are missing from the registry.
func (c *CategoryIndex) Validate() []string {
	var problems []string
	for _, cat := range c.categories {
		for _, name := range cat.Names {
			if _, ok := c.registry.IndexOf(name); !ok {
				problems = append(problems, fmt.Sprintf("category %q: unknown name %q", cat.Name, name))
			}
		}
	}
	return problems
}
