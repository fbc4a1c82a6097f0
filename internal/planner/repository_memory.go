package planner

import (
	"context"
	"errors"
	"sort"
	"sync"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// InMemoryRepository keeps snapshots in a map. Used by tests and by
// deployments that run the engine without a database.
type InMemoryRepository struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		snapshots: make(map[string]*Snapshot),
	}
}

func (r *InMemoryRepository) Save(_ context.Context, snap *Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *snap
	r.snapshots[snap.ID] = &stored
	return nil
}

func (r *InMemoryRepository) Get(_ context.Context, id string) (*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, ok := r.snapshots[id]
	if !ok {
		return nil, ErrSnapshotNotFound
	}

	out := *snap
	return &out, nil
}

func (r *InMemoryRepository) ListRecent(_ context.Context, limit int) ([]*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*Snapshot, 0, len(r.snapshots))
	for _, snap := range r.snapshots {
		out := *snap
		all = append(all, &out)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}
