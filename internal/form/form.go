package form

import (
	"errors"
	"strconv"

	"github.com/google/uuid"

	"github.com/ytget/project-manager/internal/model"
)

// ErrClosed is returned when a form is used after reaching a terminal state
var ErrClosed = errors.New("form is closed")

// Input holds the raw text of the editable fields as entered by the user
type Input struct {
	Name        string
	Description string
	Progress    string
	DueDate     string
}

// Form collects and validates the fields of one project
type Form struct {
	id      string
	initial model.Project
	editing bool
	state   State
}

// New opens a form. With a nil existing record the form gets a fresh ID and
// blank fields; otherwise it is prefilled and keeps the record's ID.
func New(existing *model.Project) *Form {
	f := &Form{state: StateOpen}
	if existing != nil {
		f.id = existing.ID
		f.initial = *existing
		f.editing = true
		return f
	}
	f.id = uuid.NewString()
	f.initial = model.Project{ID: f.id, Progress: model.MinProgress}
	return f
}

// ID returns the identifier the saved record will carry
func (f *Form) ID() string {
	return f.id
}

// Initial returns the values the form was opened with
func (f *Form) Initial() model.Project {
	return f.initial
}

// InitialInput returns the opening values as field text
func (f *Form) InitialInput() Input {
	return Input{
		Name:        f.initial.Name,
		Description: f.initial.Description,
		Progress:    strconv.Itoa(f.initial.Progress),
		DueDate:     f.initial.DueDate,
	}
}

// IsEditing reports whether the form was opened for an existing record
func (f *Form) IsEditing() bool {
	return f.editing
}

// State returns the current state
func (f *Form) State() State {
	return f.state
}

// Save validates in. On failure the form stays open and the validation error
// is returned with a nil outcome.
func (f *Form) Save(in Input) (Outcome, error) {
	if f.state.IsTerminal() {
		return nil, ErrClosed
	}

	progress, err := model.ParseProgress(in.Progress)
	if err != nil {
		return nil, err
	}

	p := model.Project{
		ID:          f.id,
		Name:        in.Name,
		Description: in.Description,
		Progress:    progress,
		DueDate:     in.DueDate,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	f.state = StateSaved
	return Saved{Project: p}, nil
}

// Cancel closes the form without a result
func (f *Form) Cancel() (Outcome, error) {
	if f.state.IsTerminal() {
		return nil, ErrClosed
	}
	f.state = StateCancelled
	return Cancelled{}, nil
}
