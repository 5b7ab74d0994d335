package recipes

import "data-exporter/core/unreal"

// RecipeRow is a row of the recipes data table.
type RecipeRow struct {
	ItemToCreate          unreal.DataTableRowHandle   `json:"ItemToCreate"`
	CountToCreate         int                         `json:"CountToCreate"`
	Category              string                      `json:"Category"`
	RecipeItems           []IngredientSlot            `json:"RecipeItems"`
	BenchesRequired       []unreal.DataTableRowHandle `json:"BenchesRequired"`
	CraftDuration         float64                     `json:"CraftDuration"`
	LinkedRecipesToUnlock []unreal.DataTableRowHandle `json:"LinkedRecipesToUnlock"`
	NotUnlockableByPickup bool                        `json:"NotUnlockableByPickup"`
	ResearchData          ResearchData                `json:"ResearchData"`
	RecipeTags            []string                    `json:"RecipeTags"`
	StrippedFromBuild     bool                        `json:"StrippedFromBuild"`
}

// IngredientSlot is one ingredient requirement of a recipe. Item may point at an item
// row or at a substitute group.
type IngredientSlot struct {
	Item  unreal.DataTableRowHandle `json:"Item"`
	Count int                       `json:"Count"`
}

// ResearchData describes the research minigame unlocking a recipe.
type ResearchData struct {
	MinigameDifficulty string                      `json:"MinigameDifficulty"`
	FakeItems          []unreal.DataTableRowHandle `json:"FakeItems"`
}

// RawRecipe is a recipe row together with its row name.
type RawRecipe struct {
	RowName string
	RecipeRow
}

// SubstituteGroup is a row of the substitutes table.
type SubstituteGroup struct {
	ItemTypeName        unreal.StringHandle         `json:"ItemTypeName"`
	ItemTypeIcon        unreal.AssetHandle          `json:"ItemTypeIcon"`
	ItemTypeDescription unreal.StringHandle         `json:"ItemTypeDescription"`
	ItemsOfType         []unreal.DataTableRowHandle `json:"ItemsOfType"`
}

// Ingredient is a concrete ingredient of an expanded recipe.
type Ingredient struct {
	ItemRowName string `json:"itemRowName"`
	ItemCount   int    `json:"itemCount"`
}

// ExpandedRecipe is one concrete variant of a raw recipe.
type ExpandedRecipe struct {
	RowName         string
	Variant         int
	ResultRowName   string
	ResultCount     int
	Category        string
	Ingredients     []Ingredient
	BenchesRequired []string
	CraftDuration   float64
}

// Recipe is the human-readable record of a recipe variant.
type Recipe struct {
	RowName string `json:"rowName"`
	Variant int    `json:"variant"`

	ResultRowName string `json:"resultRowName"`
	ResultCount   int    `json:"resultCount"`

	Category string `json:"category"`

	Ingredients     []Ingredient `json:"ingredients"`
	BenchesRequired []string     `json:"benchesRequired"`

	CraftDuration float64 `json:"craftDuration"`

	LinkedRecipes []string `json:"linkedRecipes,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}
