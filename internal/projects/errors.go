package projects

import "errors"

var (
	// ErrNoSelection is returned when an action needs a selected row and none is selected
	ErrNoSelection = errors.New("no project selected")

	// ErrNotFound is returned when the selected ID is not in the local list
	ErrNotFound = errors.New("project not found")

	// ErrIDMismatch is returned when an edit result carries a different ID than the selection
	ErrIDMismatch = errors.New("edited project id does not match selection")
)
