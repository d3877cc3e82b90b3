// Package resource provides the handle table for streams crossing the
// engine boundary.
//
// The engine collaborator cannot hold Go values; it holds opaque integer
// handles. This package maps handles to open streams and owns their
// teardown.
//
// # Handle Table
//
// The Table maps integer handles to IOStream values:
//
//	table := resource.NewTable()
//
//	// Insert a stream, get a handle
//	handle := table.Insert(stream)
//
//	// Retrieve stream by handle
//	stream, ok := table.Get(handle)
//
//	// Remove: closes the stream and frees the handle
//	table.Remove(handle)
//
// Handle 0 is reserved and always invalid. Freed handles are reused.
// Removing a stream closes it; Close tears down everything still open.
//
// # Observers
//
// Register observers to track stream lifecycle events:
//
//	table.Subscribe(obs) // obs.OnStreamEvent called on open/close
package resource
