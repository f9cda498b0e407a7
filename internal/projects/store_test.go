package projects

import (
	"context"
	"errors"
	"slices"

	"github.com/ytget/project-manager/internal/model"
)

var errStoreDown = errors.New("store unavailable")

// memStore is an ordered in-memory table used in place of the remote store.
type memStore struct {
	records []model.Project

	failScan   bool
	failUpsert bool
	failDelete bool

	upserts int
	deletes int
}

func (m *memStore) ScanAll(ctx context.Context) ([]model.Project, error) {
	if m.failScan {
		return nil, errStoreDown
	}
	return slices.Clone(m.records), nil
}

func (m *memStore) Upsert(ctx context.Context, p model.Project) error {
	if m.failUpsert {
		return errStoreDown
	}
	m.upserts++
	for i := range m.records {
		if m.records[i].ID == p.ID {
			m.records[i] = p
			return nil
		}
	}
	m.records = append(m.records, p)
	return nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	if m.failDelete {
		return errStoreDown
	}
	m.deletes++
	m.records = slices.DeleteFunc(m.records, func(p model.Project) bool { return p.ID == id })
	return nil
}

func (m *memStore) ids() []string {
	out := make([]string, 0, len(m.records))
	for _, p := range m.records {
		out = append(out, p.ID)
	}
	return out
}
