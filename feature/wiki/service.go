package wiki

import (
	"context"
	"fmt"
	"sync"

	"data-exporter/feature/items"
	"data-exporter/feature/recipes"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ItemSource provides parsed items.
type ItemSource interface {
	Items(ctx context.Context) ([]items.Item, error)
}

// RecipeSource provides parsed recipe variants.
type RecipeSource interface {
	Recipes(ctx context.Context) ([]recipes.Recipe, error)
}

// EnumDisplayNamer resolves enum references to display names.
type EnumDisplayNamer interface {
	ResolveEnumDisplayName(ctx context.Context, value string) (string, error)
}

// Service serves wiki documents built from a single parse of the game data.
type Service struct {
	items     ItemSource
	recipes   RecipeSource
	enums     EnumDisplayNamer
	overrides Overrides
	logger    *zap.Logger

	mu      sync.Mutex
	catalog *Catalog
}

// NewService creates a new wiki service.
func NewService(itemSource ItemSource, recipeSource RecipeSource, enums EnumDisplayNamer, overrides Overrides, logger *zap.Logger) *Service {
	return &Service{
		items:     itemSource,
		recipes:   recipeSource,
		enums:     enums,
		overrides: overrides,
		logger:    logger,
	}
}

// Catalog parses items and recipes on first use and returns the shared catalog.
// A failed parse is not cached.
func (s *Service) Catalog(ctx context.Context) (*Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog != nil {
		return s.catalog, nil
	}

	var (
		parsedItems   []items.Item
		parsedRecipes []recipes.Recipe
	)
	g, ctxGroup := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		parsedItems, err = s.items.Items(ctxGroup)
		if err != nil {
			return fmt.Errorf("failed to parse items: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		parsedRecipes, err = s.recipes.Recipes(ctxGroup)
		if err != nil {
			return fmt.Errorf("failed to parse recipes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.catalog = NewCatalog(parsedItems, parsedRecipes, s.overrides, s.logger)
	return s.catalog, nil
}

// WikiItems returns the documented items keyed by wiki name.
func (s *Service) WikiItems(ctx context.Context) (map[string]WikiItem, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.WikiItems(), nil
}

// WikiItem returns the documented item with the given wiki name.
func (s *Service) WikiItem(ctx context.Context, name string) (WikiItem, bool, error) {
	all, err := s.WikiItems(ctx)
	if err != nil {
		return WikiItem{}, false, err
	}
	item, ok := all[name]
	return item, ok, nil
}

// WikiRecipes returns every recipe variant in wiki form.
func (s *Service) WikiRecipes(ctx context.Context) ([]WikiRecipe, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.WikiRecipes(), nil
}

// RecipesFor returns every variant of the recipe with the given row name.
func (s *Service) RecipesFor(ctx context.Context, rowName string) ([]WikiRecipe, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	out := []WikiRecipe{}
	for _, r := range catalog.Recipes() {
		if r.RowName == rowName {
			out = append(out, catalog.FormatRecipe(r))
		}
	}
	return out, nil
}

// EnumDisplayName resolves an enum reference such as E_Slot::NewEnumerator1.
func (s *Service) EnumDisplayName(ctx context.Context, value string) (string, error) {
	return s.enums.ResolveEnumDisplayName(ctx, value)
}

// DuplicateNames lists documented items sharing a wiki name.
func (s *Service) DuplicateNames(ctx context.Context) ([]Duplicate, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.DuplicateNames(), nil
}

// GameplayTags lists every gameplay tag used by an item.
func (s *Service) GameplayTags(ctx context.Context) ([]string, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.GameplayTags(), nil
}
