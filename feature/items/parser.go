package items

import (
	"context"
	"fmt"
	"sync"

	"data-exporter/core/unreal"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ItemsTable is the data table holding every item.
var ItemsTable = unreal.ObjectIdentifier{
	ObjectName: "ItemTable_Global",
	ObjectPath: "/Game/Blueprints/Items/ItemTable_Global.0",
}

// TableReader reads whole data tables.
type TableReader interface {
	GetAllRows(ctx context.Context, identifier unreal.ObjectIdentifier) (*unreal.Rows, error)
}

// Parser parses the global item table. Results are computed once per parser.
type Parser struct {
	tables  TableReader
	rows    *RowParser
	workers int
	logger  *zap.Logger

	mu    sync.Mutex
	items []Item
	done  bool
}

// NewParser creates an items parser parsing up to workers rows at a time.
func NewParser(tables TableReader, rows *RowParser, workers int, logger *zap.Logger) *Parser {
	if workers < 1 {
		workers = 1
	}
	return &Parser{tables: tables, rows: rows, workers: workers, logger: logger}
}

type namedRow struct {
	name string
	row  ItemRow
}

// Items returns every parsable item in table order.
func (p *Parser) Items(ctx context.Context) ([]Item, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return p.items, nil
	}

	table, err := p.tables.GetAllRows(ctx, ItemsTable)
	if err != nil {
		return nil, fmt.Errorf("failed to read items table: %w", err)
	}

	decoded := make([]namedRow, 0, table.Len())
	_ = table.Each(func(name string, row *unreal.Object) error {
		itemRow, err := unreal.DecodeRow[ItemRow](row)
		if err != nil {
			p.logger.Warn("Skipping item", zap.String("item", name), zap.Error(err))
			return nil
		}
		decoded = append(decoded, namedRow{name: name, row: itemRow})
		return nil
	})

	states := cookableStates(decoded)

	results := make([]*Item, len(decoded))
	g, ctxGroup := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, entry := range decoded {
		g.Go(func() error {
			if err := ctxGroup.Err(); err != nil {
				return err
			}
			item, err := p.rows.Parse(ctxGroup, entry.name, entry.row, states)
			if err != nil {
				if ctxGroup.Err() != nil {
					return ctxGroup.Err()
				}
				p.logger.Warn("Skipping item", zap.String("item", entry.name), zap.Error(err))
				return nil
			}
			results[i] = &item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(results))
	for _, item := range results {
		if item != nil {
			items = append(items, *item)
		}
	}

	p.logger.Info("Parsed items",
		zap.Int("rows", table.Len()),
		zap.Int("items", len(items)),
		zap.Int("failed", table.Len()-len(items)),
	)

	p.items = items
	p.done = true
	return items, nil
}

// Find returns the item with the given row name.
func (p *Parser) Find(ctx context.Context, rowName string) (Item, bool, error) {
	all, err := p.Items(ctx)
	if err != nil {
		return Item{}, false, err
	}
	for _, item := range all {
		if item.RowName == rowName {
			return item, true, nil
		}
	}
	return Item{}, false, nil
}

// cookableStates indexes the state triple of every cookable item by its raw, cooked
// and burned row names. Later roles win when a row name plays several.
func cookableStates(rows []namedRow) map[string]CookableStates {
	var triples []CookableStates
	for _, entry := range rows {
		if !entry.row.CookableData.CanBeCooked {
			continue
		}
		triples = append(triples, CookableStates{
			RawItemRowName:    entry.name,
			CookedItemRowName: entry.row.CookableData.CookedItem.RowName,
			BurnedItemRowName: entry.row.CookableData.BurnedItem.RowName,
		})
	}

	states := make(map[string]CookableStates, len(triples)*3)
	keys := []func(CookableStates) string{
		func(s CookableStates) string { return s.RawItemRowName },
		func(s CookableStates) string { return s.CookedItemRowName },
		func(s CookableStates) string { return s.BurnedItemRowName },
	}
	for _, key := range keys {
		for _, triple := range triples {
			if name := key(triple); name != "" && name != unreal.NoneRowName {
				states[name] = triple
			}
		}
	}
	return states
}
