package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ytget/project-manager/internal/model"
)

var (
	ErrMissingID   = errors.New("stored record has no id")
	ErrKeyMismatch = errors.New("stored record id does not match its key")
)

// record mirrors the table schema. Every field is written on each upsert.
type record struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	DueDate     string `json:"dueDate"`
}

func encode(p model.Project) ([]byte, error) {
	return json.Marshal(record(p))
}

// decode parses the value stored under key
func decode(key string, data []byte) (model.Project, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return model.Project{}, err
	}
	if r.ID == "" {
		return model.Project{}, ErrMissingID
	}
	if r.ID != key {
		return model.Project{}, fmt.Errorf("%w: key %s holds id %s", ErrKeyMismatch, key, r.ID)
	}
	return model.Project(r), nil
}
