package planner

import "context"

// Repository defines the snapshot persistence contract.
// Service depends ONLY on this interface.
type Repository interface {
	Save(ctx context.Context, snap *Snapshot) error
	Get(ctx context.Context, id string) (*Snapshot, error)
	ListRecent(ctx context.Context, limit int) ([]*Snapshot, error)
}
