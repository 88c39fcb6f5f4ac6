// Package domain contains the core entities and value objects for sheaf.
//
// This package represents the innermost layer of the architecture. It has
// no dependencies on infrastructure concerns (PDF libraries, file system,
// logging) and contains only data and invariants.
//
// # Entities
//
//   - [FileStats]: per-source-file outcome of a split run
//   - [Summary]: the aggregate outcome of a whole job
//   - [Event]: a progress notification emitted while a job runs
//
// Entities are plain values, testable without mocks or external systems.
package domain
