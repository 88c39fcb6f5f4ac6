// Package ports defines the interfaces (ports) that connect the job engine
// to infrastructure adapters.
//
// Ports are the boundaries between the application core and the outside
// world. They define what the engine needs from external systems without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [DocumentOpener] / [Document]: access to paged documents and their
//     serialized (optionally compressed) byte form
//   - [Packer]: bundling a directory of artifacts into a single archive
//   - [EventSink]: delivery of job progress events
//   - [HistoryStore]: persistence of completed job summaries
//
// The job engine (internal/job) depends only on these interfaces.
// Adapters (internal/pdf, internal/archive, internal/history) implement
// them with concrete libraries. This enables testing the engine with fake
// documents and swapping infrastructure without touching business logic.
package ports
