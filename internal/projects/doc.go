package projects

// Package projects holds the list controller: the in-memory collection of
// project records, its synchronisation with the store, search and sort over
// the local copy, and the fixed-width text table the window displays.
