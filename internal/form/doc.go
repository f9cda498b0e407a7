package form

// Package form implements the edit form used to create or update a project.
// A form starts Open and ends either Saved, carrying the validated record, or
// Cancelled. The caller receives the result as an Outcome value.
