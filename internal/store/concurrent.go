package store

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"fastadex/internal/index"
)

// FetchConcurrent is FromIndexWithIDs with up to workers lookups in flight.
// The index is read-only and safe to share; every lookup opens its own
// source handle, so no handle is ever used from two goroutines. Error
// attribution matches FromIndexWithIDs.
func FetchConcurrent(path string, idx *index.OffsetIndex, ids []string, workers int) (*Store, error) {
	if workers < 2 {
		return FromIndexWithIDs(path, idx, ids)
	}

	st := &Store{IDToSeq: make(map[string]string, len(ids))}
	var mu sync.Mutex
	var errs []error

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			off, ok := idx.Offset(id)
			if !ok {
				mu.Lock()
				errs = append(errs, fmt.Errorf("accession %q: %w", id, ErrMissingAccession))
				mu.Unlock()
				return nil
			}
			rec, err := FetchOne(path, off)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("accession %q: %w", id, err))
				return nil
			}
			st.IDToSeq[id] = rec.Sequence
			return nil
		})
	}
	_ = g.Wait()

	return st, errors.Join(errs...)
}
