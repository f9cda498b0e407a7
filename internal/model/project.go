package model

import (
	"strconv"
	"strings"
)

// Progress bounds, inclusive
const (
	MinProgress = 0
	MaxProgress = 100
)

// Project represents a single project record as stored in the table
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Progress    int    `json:"progress"` // 0 to 100
	DueDate     string `json:"dueDate"`  // free text, not parsed
}

// Validate checks the presence and range rules for a record
func (p Project) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: FieldName, Err: ErrEmptyName}
	}
	if p.Description == "" {
		return &ValidationError{Field: FieldDescription, Err: ErrEmptyDescription}
	}
	if p.Progress < MinProgress || p.Progress > MaxProgress {
		return &ValidationError{Field: FieldProgress, Err: ErrProgressRange}
	}
	return nil
}

// Update replaces the editable fields with those of other, keeping the ID
func (p *Project) Update(other Project) {
	p.Name = other.Name
	p.Description = other.Description
	p.Progress = other.Progress
	p.DueDate = other.DueDate
}

// Matches reports whether term is a substring of the name or the description.
// Matching is case-sensitive.
func (p Project) Matches(term string) bool {
	return strings.Contains(p.Name, term) || strings.Contains(p.Description, term)
}

// ParseProgress converts the text of a progress field to an integer.
// Surrounding whitespace is ignored; an empty field means 0.
func ParseProgress(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, &ValidationError{Field: FieldProgress, Err: ErrProgressNotNumber}
	}
	return n, nil
}
