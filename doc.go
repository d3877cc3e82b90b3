// Package assimp provides the virtual I/O layer used to feed asset data
// to an importer engine.
//
// The engine never touches storage directly. The host hands it an IOSystem,
// and every resource the engine needs is acquired through that capability,
// used through the uniform IOStream surface, and released when the engine
// is done with it.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	assimp/        Root package with the IOSystem and IOStream contracts
//	├── iosys/     Directory-backed IOSystem with search-path fallback
//	├── fileio/    Handle-based procedure surface for the engine boundary
//	├── resource/  Stream handle table implementation
//	└── errors/    Structured error types for contract violations
//
// # Quick Start
//
// Open a model file through a directory-backed IOSystem:
//
//	sys := iosys.New("assets/models", "assets/fallback")
//
//	stream := sys.OpenFile("model.obj", assimp.OpenRead)
//	if !stream.IsValid() {
//	    log.Fatal("model.obj not found")
//	}
//	defer stream.Close()
//
//	buf := make([]byte, stream.Size())
//	if _, err := stream.Read(buf, int64(len(buf))); err != nil {
//	    log.Fatal(err)
//	}
//
// # Capability Contracts
//
// IOSystem is the open-a-resource-by-name entry point. OpenFile never
// returns an error: a failed open is reported through the returned stream,
// which callers must check with IsValid before use.
//
// IOStream is the uniform per-resource capability set: Read, Write, Seek,
// Position, Size, Flush, Close. A stream opened for reading rejects writes
// and vice versa; the wrong-direction operation fails loudly rather than
// being ignored. Close is idempotent on every implementation.
//
// # Engine Boundary
//
// The fileio package adapts any IOSystem into the procedure table shape the
// engine consumes: integer handles instead of Go values, one procedure per
// stream operation, and a teardown call that drops every handle the engine
// leaked. See the fileio package documentation for details.
package assimp
