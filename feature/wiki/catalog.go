package wiki

import (
	"data-exporter/feature/items"
	"data-exporter/feature/recipes"

	"go.uber.org/zap"
)

// Duplicate records two items documented under the same wiki name. The later item
// replaces the earlier one in Items.json.
type Duplicate struct {
	Name     string `json:"name"`
	RowName  string `json:"rowName"`
	Previous string `json:"previous"`
}

// Catalog indexes a parsed item and recipe set for the wiki.
type Catalog struct {
	overrides Overrides
	logger    *zap.Logger

	items      []items.Item
	recipes    []recipes.Recipe
	byRow      map[string]int
	categories map[string]string
}

// NewCatalog indexes items by row name and records the category of the first recipe
// producing each item.
func NewCatalog(all []items.Item, recipeList []recipes.Recipe, overrides Overrides, logger *zap.Logger) *Catalog {
	c := &Catalog{
		overrides:  overrides,
		logger:     logger,
		items:      all,
		recipes:    recipeList,
		byRow:      make(map[string]int, len(all)),
		categories: make(map[string]string),
	}
	for i, item := range all {
		c.byRow[item.RowName] = i
	}
	for _, r := range recipeList {
		if _, ok := c.categories[r.ResultRowName]; !ok {
			c.categories[r.ResultRowName] = r.Category
		}
	}
	return c
}

// Items returns every parsed item, ignored ones included.
func (c *Catalog) Items() []items.Item {
	return c.items
}

// Recipes returns every recipe variant.
func (c *Catalog) Recipes() []recipes.Recipe {
	return c.recipes
}

// Overrides returns the override tables the catalog applies.
func (c *Catalog) Overrides() Overrides {
	return c.overrides
}

// Item returns the item with the given row name.
func (c *Catalog) Item(rowName string) (items.Item, bool) {
	i, ok := c.byRow[rowName]
	if !ok {
		return items.Item{}, false
	}
	return c.items[i], true
}

// WikiName returns the wiki name of the item with the given row name.
func (c *Catalog) WikiName(rowName string) (string, bool) {
	item, ok := c.Item(rowName)
	if !ok {
		return "", false
	}
	return c.overrides.WikiName(item.RowName, item.Name), true
}

// IsIgnored reports whether an item is left out of the wiki.
func (c *Catalog) IsIgnored(item items.Item) bool {
	return c.overrides.IsIgnored(item.RowName, c.overrides.WikiName(item.RowName, item.Name))
}

// Documented returns the items that are not ignored, in table order.
func (c *Catalog) Documented() []items.Item {
	out := make([]items.Item, 0, len(c.items))
	for _, item := range c.items {
		if !c.IsIgnored(item) {
			out = append(out, item)
		}
	}
	return out
}

// Category returns the wiki category of an item, or "" when no recipe produces it or
// its recipe category is unmapped.
func (c *Catalog) Category(rowName string) string {
	category, ok := c.categories[rowName]
	if !ok {
		return ""
	}
	return c.overrides.Categories[category]
}

// WikiItems returns the documented items keyed by wiki name. When two items share a
// name the later one wins.
func (c *Catalog) WikiItems() map[string]WikiItem {
	out := make(map[string]WikiItem, len(c.items))
	for _, item := range c.Documented() {
		formatted := c.FormatItem(item)
		out[formatted.Name] = formatted
	}
	return out
}

// WikiRecipes returns every recipe variant in wiki form.
func (c *Catalog) WikiRecipes() []WikiRecipe {
	out := make([]WikiRecipe, 0, len(c.recipes))
	for _, r := range c.recipes {
		out = append(out, c.FormatRecipe(r))
	}
	return out
}

// DuplicateNames lists every documented item whose wiki name was already taken.
func (c *Catalog) DuplicateNames() []Duplicate {
	seen := make(map[string]string)
	var duplicates []Duplicate
	for _, item := range c.Documented() {
		name := c.overrides.WikiName(item.RowName, item.Name)
		if previous, ok := seen[name]; ok {
			duplicates = append(duplicates, Duplicate{Name: name, RowName: item.RowName, Previous: previous})
		}
		seen[name] = item.RowName
	}
	return duplicates
}

// GameplayTags returns every gameplay tag used by any item, in order of first use.
func (c *Catalog) GameplayTags() []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, item := range c.items {
		for _, tag := range item.GameplayTags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}
