package wiki

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"path"

	"data-exporter/core/output"
	"data-exporter/core/unreal"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

const (
	ItemsDocument    = "Items.json"
	RecipesDocument  = "Recipes.json"
	IconsDirectory   = "Icons"
	StringsDirectory = "Strings"
)

// ErrNoIcon is returned for items without an inventory icon.
var ErrNoIcon = errors.New("item has no inventory icon")

// Exporter writes one wiki artifact.
type Exporter interface {
	// Name returns the exporter's unique name.
	Name() string
	// Run writes the artifact through the exporter's sink.
	Run(ctx context.Context) error
}

// ItemsExporter writes Items.json.
type ItemsExporter struct {
	service *Service
	sink    output.Sink
	logger  *zap.Logger
}

// NewItemsExporter creates an items exporter.
func NewItemsExporter(service *Service, sink output.Sink, logger *zap.Logger) *ItemsExporter {
	return &ItemsExporter{service: service, sink: sink, logger: logger}
}

func (e *ItemsExporter) Name() string { return "items" }

// Run writes every documented item keyed by wiki name.
func (e *ItemsExporter) Run(ctx context.Context) error {
	catalog, err := e.service.Catalog(ctx)
	if err != nil {
		return err
	}

	for _, d := range catalog.DuplicateNames() {
		e.logger.Warn("Duplicated item name",
			zap.String("name", d.Name),
			zap.String("item", d.RowName),
			zap.String("previous", d.Previous),
		)
	}

	all := catalog.WikiItems()
	if err := e.sink.WriteJSON(ctx, ItemsDocument, all); err != nil {
		return fmt.Errorf("failed to export items: %w", err)
	}
	e.logger.Info("Exported items", zap.String("document", ItemsDocument), zap.Int("items", len(all)))
	return nil
}

// RecipesExporter writes Recipes.json.
type RecipesExporter struct {
	service *Service
	sink    output.Sink
	logger  *zap.Logger
}

// NewRecipesExporter creates a recipes exporter.
func NewRecipesExporter(service *Service, sink output.Sink, logger *zap.Logger) *RecipesExporter {
	return &RecipesExporter{service: service, sink: sink, logger: logger}
}

func (e *RecipesExporter) Name() string { return "recipes" }

// Run writes every recipe variant in table order.
func (e *RecipesExporter) Run(ctx context.Context) error {
	all, err := e.service.WikiRecipes(ctx)
	if err != nil {
		return err
	}
	if err := e.sink.WriteJSON(ctx, RecipesDocument, all); err != nil {
		return fmt.Errorf("failed to export recipes: %w", err)
	}
	e.logger.Info("Exported recipes", zap.String("document", RecipesDocument), zap.Int("recipes", len(all)))
	return nil
}

// BinaryGetter reads the raw bytes behind an object path.
type BinaryGetter interface {
	GetBinary(ctx context.Context, objectPath, extension string) ([]byte, error)
}

// IconsExporter copies the inventory icon of every documented item.
type IconsExporter struct {
	service *Service
	objects BinaryGetter
	sink    output.Sink
	cfg     Config
	logger  *zap.Logger
}

// NewIconsExporter creates an icons exporter.
func NewIconsExporter(service *Service, objects BinaryGetter, sink output.Sink, cfg Config, logger *zap.Logger) *IconsExporter {
	return &IconsExporter{service: service, objects: objects, sink: sink, cfg: cfg, logger: logger}
}

func (e *IconsExporter) Name() string { return "icons" }

// IconName returns the file an item icon is exported to.
func (e *IconsExporter) IconName(overrides Overrides, rowName, name string) string {
	return path.Join(IconsDirectory, e.cfg.IconPrefix+overrides.RawName(rowName, name)+".png")
}

// Run exports each icon independently. An icon that cannot be read or written is
// logged and skipped.
func (e *IconsExporter) Run(ctx context.Context) error {
	catalog, err := e.service.Catalog(ctx)
	if err != nil {
		return err
	}

	exported, failed := 0, 0
	for _, item := range catalog.Documented() {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := e.IconName(catalog.Overrides(), item.RowName, item.Name)
		if err := e.export(ctx, item.InventoryIconPath, name); err != nil {
			failed++
			e.logger.Warn("Failed to export inventory icon", zap.String("item", item.RowName), zap.Error(err))
			continue
		}
		exported++
		e.logger.Debug("Exported icon", zap.String("item", item.RowName), zap.String("file", name))
	}

	e.logger.Info("Exported icons", zap.Int("icons", exported), zap.Int("failed", failed))
	return nil
}

func (e *IconsExporter) export(ctx context.Context, iconPath, name string) error {
	if iconPath == "" || iconPath == unreal.NoneRowName {
		return ErrNoIcon
	}

	data, err := e.objects.GetBinary(ctx, iconPath, "png")
	if err != nil {
		return err
	}
	if e.cfg.InvertIconAlpha {
		if data, err = InvertAlpha(data); err != nil {
			return err
		}
	}
	return e.sink.WriteFile(ctx, name, data)
}

// InvertAlpha negates the alpha channel of a PNG image. Non-premultiplied images
// keep their colors, so fully transparent pixels regain them.
func InvertAlpha(data []byte) ([]byte, error) {
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode icon: %w", err)
	}

	img, ok := src.(*image.NRGBA)
	if !ok {
		bounds := src.Bounds()
		img = image.NewNRGBA(bounds)
		draw.Copy(img, bounds.Min, src, bounds, draw.Src, nil)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255 - img.Pix[i]
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode icon: %w", err)
	}
	return buf.Bytes(), nil
}

// StringTableResolver reads whole string tables.
type StringTableResolver interface {
	ResolveAllStrings(ctx context.Context, tableID string) (*unreal.StringTable, error)
}

// StringsExporter writes each configured string table as a key to value document.
type StringsExporter struct {
	strings StringTableResolver
	tables  []string
	sink    output.Sink
	logger  *zap.Logger
}

// NewStringsExporter creates a strings exporter for the given table IDs.
func NewStringsExporter(strings StringTableResolver, tables []string, sink output.Sink, logger *zap.Logger) *StringsExporter {
	return &StringsExporter{strings: strings, tables: tables, sink: sink, logger: logger}
}

func (e *StringsExporter) Name() string { return "strings" }

// Run writes Strings/<table name>.json for every configured table.
func (e *StringsExporter) Run(ctx context.Context) error {
	if len(e.tables) == 0 {
		e.logger.Info("No string tables configured")
		return nil
	}

	for _, id := range e.tables {
		table, err := e.strings.ResolveAllStrings(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to read string table %s: %w", id, err)
		}
		tableName := table.Name
		if tableName == "" {
			tableName = path.Base(id)
		}
		name := path.Join(StringsDirectory, tableName+".json")
		if err := e.sink.WriteJSON(ctx, name, table.Map()); err != nil {
			return fmt.Errorf("failed to export string table %s: %w", id, err)
		}
		e.logger.Info("Exported string table",
			zap.String("table", id),
			zap.String("document", name),
			zap.Int("entries", len(table.Entries)),
		)
	}
	return nil
}
