package form

// State represents the lifecycle state of an edit form
type State string

const (
	// StateOpen means the form accepts input and may be saved or cancelled
	StateOpen State = "Open"

	// StateSaved means the form produced a validated record
	StateSaved State = "Saved"

	// StateCancelled means the user dismissed the form without a result
	StateCancelled State = "Cancelled"
)

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// IsTerminal returns true once the form was saved or cancelled
func (s State) IsTerminal() bool {
	return s == StateSaved || s == StateCancelled
}
