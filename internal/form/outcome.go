package form

import "github.com/ytget/project-manager/internal/model"

// Outcome is the result of a finished form: either Saved or Cancelled.
type Outcome interface {
	isOutcome()
}

// Saved carries the validated record
type Saved struct {
	Project model.Project
}

// Cancelled signals that the caller should do nothing
type Cancelled struct{}

func (Saved) isOutcome()     {}
func (Cancelled) isOutcome() {}
