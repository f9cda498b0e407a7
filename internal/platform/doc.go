package platform

// Package platform contains OS integration helpers: where configuration
// lives on each operating system and filesystem setup for it.
