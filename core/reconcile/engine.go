package reconcile

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// checksumPrefix is how many checksum characters mismatch descriptions show.
const checksumPrefix = 12

// ReconcileAll indexes the reference and every target concurrently and
// returns one result per document path, sorted by path.
func ReconcileAll(ctx context.Context, reference Reference, targets ...Store) ([]Result, error) {
	stores := append([]Store{reference}, targets...)
	indices := make([]map[string]string, len(stores))

	g, gctx := errgroup.WithContext(ctx)
	for i, store := range stores {
		g.Go(func() error {
			index, err := store.Index(gctx)
			if err != nil {
				return fmt.Errorf("failed to index %s: %w", store.Name(), err)
			}
			indices[i] = index
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	union := buildUnion(indices)
	results := make([]Result, 0, len(union))
	for path := range union {
		results = append(results, buildResult(path, stores, indices))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	return results, nil
}

// buildUnion collects every path held by at least one store.
func buildUnion(indices []map[string]string) map[string]struct{} {
	union := make(map[string]struct{})
	for _, index := range indices {
		for path := range index {
			union[path] = struct{}{}
		}
	}
	return union
}

// buildResult compares one path across stores. stores[0] is the reference.
func buildResult(path string, stores []Store, indices []map[string]string) Result {
	result := Result{
		Path:     path,
		Present:  make(map[string]bool, len(stores)),
		Mismatch: []string{},
	}

	want, inReference := indices[0][path]
	for i, store := range stores {
		got, ok := indices[i][path]
		result.Present[store.Name()] = ok
		if i == 0 || !ok || !inReference {
			continue
		}
		if got != want {
			result.Mismatch = append(result.Mismatch, fmt.Sprintf("%s: checksum %s != %s", store.Name(), short(got), short(want)))
		}
	}

	return result
}

func short(checksum string) string {
	if checksum == "" {
		return "none"
	}
	if len(checksum) > checksumPrefix {
		return checksum[:checksumPrefix]
	}
	return checksum
}
