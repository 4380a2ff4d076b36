package memory

import (
	"context"

	"community-support-platform/internal/dataset"
)

// Save stores the dataset, evicting the least recently used entry if needed.
func (r *implRepository) Save(ctx context.Context, ds dataset.Dataset) error {
	if evicted := r.cache.Add(ds.ID, ds); evicted {
		r.l.Infof(ctx, "dataset store full, evicted oldest entry")
	}
	return nil
}

// Get returns the dataset with the given ID and marks it recently used.
func (r *implRepository) Get(ctx context.Context, id string) (dataset.Dataset, bool) {
	return r.cache.Get(id)
}
