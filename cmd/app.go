package cmd

import (
	"fmt"

	"data-exporter/core/config"
	"data-exporter/core/logger"
	"data-exporter/core/unreal"
	"data-exporter/feature/items"
	"data-exporter/feature/recipes"
	"data-exporter/feature/wiki"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// app wires the resolvers, parsers and wiki service shared by every command.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	fs     afero.Fs

	objects *unreal.ObjectStore
	strings *unreal.StringResolver
	enums   *unreal.EnumResolver
	rows    *unreal.RowStore

	items   *items.Parser
	recipes *recipes.Parser
	wiki    *wiki.Service
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig(envDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	fs := afero.NewOsFs()
	overrides, err := wiki.LoadOverrides(fs, cfg.Wiki.OverridesFile)
	if err != nil {
		return nil, err
	}

	objects := unreal.NewObjectStore(fs, cfg.Export.InputPath, logg)
	strs := unreal.NewStringResolver(objects)
	enums := unreal.NewEnumResolver(objects, strs)
	rows := unreal.NewRowStore(objects)

	itemParser := items.NewParser(rows, items.NewRowParser(strs, enums, rows, objects), cfg.Export.Workers, logg)
	recipeParser := recipes.NewParser(rows, recipes.NewRowParser(enums, recipes.NewExpander(rows, logg)), logg)

	return &app{
		cfg:     cfg,
		logger:  logg,
		fs:      fs,
		objects: objects,
		strings: strs,
		enums:   enums,
		rows:    rows,
		items:   itemParser,
		recipes: recipeParser,
		wiki:    wiki.NewService(itemParser, recipeParser, enums, overrides, logg),
	}, nil
}

// logStats reports how well the object cache served the run.
func (a *app) logStats() {
	stats := a.objects.Stats()
	a.logger.Debug("Object store stats",
		zap.Int64("files_read", stats.FilesRead),
		zap.Int64("cache_hits", stats.CacheHits),
	)
}
