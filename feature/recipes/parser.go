package recipes

import (
	"context"
	"fmt"
	"sync"

	"data-exporter/core/unreal"

	"go.uber.org/zap"
)

// RecipesTable is the data table holding every crafting recipe.
var RecipesTable = unreal.ObjectIdentifier{
	ObjectName: "DT_Recipes",
	ObjectPath: "/Game/Blueprints/DataTables/DT_Recipes.0",
}

// EnumDisplayNamer resolves enum references to display names.
type EnumDisplayNamer interface {
	ResolveEnumDisplayName(ctx context.Context, value string) (string, error)
}

// TableReader reads whole data tables.
type TableReader interface {
	GetAllRows(ctx context.Context, identifier unreal.ObjectIdentifier) (*unreal.Rows, error)
}

// RowParser builds recipe records from raw recipe rows.
type RowParser struct {
	enums    EnumDisplayNamer
	expander *Expander
}

// NewRowParser creates a row parser.
func NewRowParser(enums EnumDisplayNamer, expander *Expander) *RowParser {
	return &RowParser{enums: enums, expander: expander}
}

// Parse returns one record per variant of the row.
func (p *RowParser) Parse(ctx context.Context, rowName string, row *unreal.Object) ([]Recipe, error) {
	decoded, err := unreal.DecodeRow[RecipeRow](row)
	if err != nil {
		return nil, err
	}
	raw := RawRecipe{RowName: rowName, RecipeRow: decoded}

	category, err := p.enums.ResolveEnumDisplayName(ctx, raw.Category)
	if err != nil {
		return nil, fmt.Errorf("category: %w", err)
	}

	variants, err := p.expander.Expand(ctx, raw)
	if err != nil {
		return nil, err
	}

	linked := make([]string, 0, len(raw.LinkedRecipesToUnlock))
	for _, handle := range raw.LinkedRecipesToUnlock {
		if !handle.IsNone() {
			linked = append(linked, handle.RowName)
		}
	}

	records := make([]Recipe, 0, len(variants))
	for _, v := range variants {
		records = append(records, Recipe{
			RowName:         v.RowName,
			Variant:         v.Variant,
			ResultRowName:   v.ResultRowName,
			ResultCount:     v.ResultCount,
			Category:        category,
			Ingredients:     v.Ingredients,
			BenchesRequired: v.BenchesRequired,
			CraftDuration:   v.CraftDuration,
			LinkedRecipes:   linked,
			Tags:            raw.RecipeTags,
		})
	}
	return records, nil
}

// Parser parses the recipes table. Results are computed once and shared by every
// caller for the lifetime of the parser.
type Parser struct {
	tables TableReader
	rows   *RowParser
	logger *zap.Logger

	mu      sync.Mutex
	recipes []Recipe
	done    bool
}

// NewParser creates a recipes parser.
func NewParser(tables TableReader, rows *RowParser, logger *zap.Logger) *Parser {
	return &Parser{tables: tables, rows: rows, logger: logger}
}

// Recipes returns every recipe variant in table order. A recipe that fails to parse is
// logged and skipped; only a failure to read the table itself is returned.
func (p *Parser) Recipes(ctx context.Context) ([]Recipe, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return p.recipes, nil
	}

	table, err := p.tables.GetAllRows(ctx, RecipesTable)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipes table: %w", err)
	}

	recipes := make([]Recipe, 0, table.Len())
	failed := 0
	err = table.Each(func(name string, row *unreal.Object) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		records, err := p.rows.Parse(ctx, name, row)
		if err != nil {
			failed++
			p.logger.Warn("Skipping recipe", zap.String("recipe", name), zap.Error(err))
			return nil
		}
		recipes = append(recipes, records...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info("Parsed recipes",
		zap.Int("rows", table.Len()),
		zap.Int("variants", len(recipes)),
		zap.Int("failed", failed),
	)

	p.recipes = recipes
	p.done = true
	return recipes, nil
}

// ByRowName returns every variant of a recipe.
func (p *Parser) ByRowName(ctx context.Context, rowName string) ([]Recipe, error) {
	all, err := p.Recipes(ctx)
	if err != nil {
		return nil, err
	}
	var out []Recipe
	for _, r := range all {
		if r.RowName == rowName {
			out = append(out, r)
		}
	}
	return out, nil
}
