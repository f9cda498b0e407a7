package store

import (
	"context"
	"errors"

	"github.com/ytget/project-manager/internal/model"
)

// ErrUnavailable is returned by every operation of an Unavailable store
var ErrUnavailable = errors.New("project table is not connected")

var _ Store = Unavailable{}

// Unavailable stands in for the table when the connection could not be made
// at startup. Every operation fails with ErrUnavailable wrapping the cause.
type Unavailable struct {
	Cause error
}

func (u Unavailable) err() error {
	if u.Cause == nil {
		return ErrUnavailable
	}
	return errors.Join(ErrUnavailable, u.Cause)
}

func (u Unavailable) ScanAll(ctx context.Context) ([]model.Project, error) {
	return nil, u.err()
}

func (u Unavailable) Upsert(ctx context.Context, p model.Project) error {
	return u.err()
}

func (u Unavailable) Delete(ctx context.Context, id string) error {
	return u.err()
}
