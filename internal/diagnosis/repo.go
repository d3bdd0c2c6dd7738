package diagnosis

import "context"

// Repo defines persistence operations for stored diagnoses.
type Repo interface {
	Create(ctx context.Context, record Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	ListRecent(ctx context.Context, limit int) ([]Record, error)
}
