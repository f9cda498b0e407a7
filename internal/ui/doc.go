package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the project controller and renders the project
// table, the detail and search dialogs, and settings. All UI strings are
// localized via Localization.
