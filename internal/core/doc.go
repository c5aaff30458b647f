// Package core holds the small abstractions shared across dockerpeek:
// a context-aware filesystem used for output files and the permission
// constants those files are created with.
package core
