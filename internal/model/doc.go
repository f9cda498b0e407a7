package model

// Package model defines the project record shared by the store, the list
// controller and the edit form, together with its validation rules.
