package recipes

import (
	"context"
	"errors"
	"fmt"

	"data-exporter/core/unreal"

	"go.uber.org/zap"
)

// SubstitutesTableName is the data table holding substitute groups.
const SubstitutesTableName = "DT_ItemSubstitutes"

// ErrSubstituteGroupNotFound is returned when a slot references a substitute group that
// does not exist. The recipe cannot be built without guessing its ingredients.
var ErrSubstituteGroupNotFound = errors.New("substitute group not found")

// RowGetter resolves row handles.
type RowGetter interface {
	GetRow(ctx context.Context, handle unreal.DataTableRowHandle) (*unreal.Object, bool, error)
}

// Expander expands substitute-group slots into concrete recipe variants.
type Expander struct {
	rows   RowGetter
	logger *zap.Logger
}

// NewExpander creates an expander looking up substitute groups through rows.
func NewExpander(rows RowGetter, logger *zap.Logger) *Expander {
	return &Expander{rows: rows, logger: logger}
}

// IsSubstituteSlot reports whether a slot references a substitute group.
func IsSubstituteSlot(slot IngredientSlot) bool {
	return slot.Item.DataTable.ObjectName == SubstitutesTableName
}

// Expand returns every concrete variant of a recipe. A recipe without slots yields one
// variant with no ingredients; a recipe with an empty substitute group yields none.
func (e *Expander) Expand(ctx context.Context, recipe RawRecipe) ([]ExpandedRecipe, error) {
	slots := make([][]Ingredient, 0, len(recipe.RecipeItems))
	for i, slot := range recipe.RecipeItems {
		options, err := e.candidates(ctx, slot)
		if err != nil {
			return nil, fmt.Errorf("recipe %s slot %d: %w", recipe.RowName, i, err)
		}
		if len(options) == 0 {
			e.logger.Warn("Substitute group has no items, recipe yields no variants",
				zap.String("recipe", recipe.RowName),
				zap.String("group", slot.Item.RowName),
			)
		}
		slots = append(slots, options)
	}

	benches := make([]string, 0, len(recipe.BenchesRequired))
	for _, bench := range recipe.BenchesRequired {
		benches = append(benches, bench.RowName)
	}

	combinations := cartesian(slots)
	variants := make([]ExpandedRecipe, 0, len(combinations))
	for i, ingredients := range combinations {
		variants = append(variants, ExpandedRecipe{
			RowName:         recipe.RowName,
			Variant:         i,
			ResultRowName:   recipe.ItemToCreate.RowName,
			ResultCount:     recipe.CountToCreate,
			Category:        recipe.Category,
			Ingredients:     ingredients,
			BenchesRequired: benches,
			CraftDuration:   recipe.CraftDuration,
		})
	}
	return variants, nil
}

// candidates lists the concrete ingredients that can fill a slot.
func (e *Expander) candidates(ctx context.Context, slot IngredientSlot) ([]Ingredient, error) {
	if !IsSubstituteSlot(slot) {
		return []Ingredient{{ItemRowName: slot.Item.RowName, ItemCount: slot.Count}}, nil
	}

	row, ok, err := e.rows.GetRow(ctx, slot.Item)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSubstituteGroupNotFound, slot.Item)
	}

	group, err := unreal.DecodeRow[SubstituteGroup](row)
	if err != nil {
		return nil, fmt.Errorf("substitute group %s: %w", slot.Item, err)
	}

	options := make([]Ingredient, 0, len(group.ItemsOfType))
	for _, item := range group.ItemsOfType {
		options = append(options, Ingredient{ItemRowName: item.RowName, ItemCount: slot.Count})
	}
	return options, nil
}

// cartesian folds the slots into every ordered combination of their options.
// The product of no slots is a single empty combination.
func cartesian(slots [][]Ingredient) [][]Ingredient {
	combinations := [][]Ingredient{{}}
	for _, options := range slots {
		next := make([][]Ingredient, 0, len(combinations)*len(options))
		for _, prefix := range combinations {
			for _, option := range options {
				combination := make([]Ingredient, len(prefix), len(prefix)+1)
				copy(combination, prefix)
				next = append(next, append(combination, option))
			}
		}
		combinations = next
	}
	return combinations
}
