package store

// Package store is the client for the remote project table. Records live in a
// NATS JetStream key-value bucket, keyed by project ID, one JSON document per
// key. Failures are returned to the caller as-is; nothing is retried.
