// Package memory implements the dataset repository on a bounded LRU cache.
// Datasets live for the process lifetime at most; old entries are evicted
// when the store is full.
package memory

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"community-support-platform/internal/dataset"
	"community-support-platform/internal/dataset/repository"
	pkgLog "community-support-platform/pkg/log"
)

type implRepository struct {
	l     pkgLog.Logger
	cache *lru.Cache[string, dataset.Dataset]
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a memory repository holding at most capacity datasets.
func New(l pkgLog.Logger, capacity int) (*implRepository, error) {
	if capacity <= 0 {
		capacity = 32
	}
	cache, err := lru.New[string, dataset.Dataset](capacity)
	if err != nil {
		return nil, err
	}
	return &implRepository{
		l:     l,
		cache: cache,
	}, nil
}
