package store

import (
	"context"

	"github.com/ytget/project-manager/internal/model"
)

// Store defines the operations the list controller needs from the table.
type Store interface {
	// ScanAll returns every record in the order the table yields them
	ScanAll(ctx context.Context) ([]model.Project, error)

	// Upsert inserts or replaces the record with p.ID
	Upsert(ctx context.Context, p model.Project) error

	// Delete removes the record with the given ID
	Delete(ctx context.Context, id string) error
}
