package repository

import (
	"context"

	"community-support-platform/internal/dataset"
)

// Repository is the data store for the dataset domain. Implementations are
// process-lifetime only; nothing survives a restart.
type Repository interface {
	// Save stores a dataset under its ID, evicting the least recently
	// used entry when the store is full.
	Save(ctx context.Context, ds dataset.Dataset) error

	// Get returns the dataset with the given ID.
	Get(ctx context.Context, id string) (dataset.Dataset, bool)
}
