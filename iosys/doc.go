// Package iosys provides the directory-backed IOSystem implementation.
//
// FileSystem resolves names against a precedence-ordered search path and
// produces FileStream values backed by an afero filesystem. The default
// constructor uses the OS filesystem; NewMemory builds the same system
// over an in-memory filesystem, useful for embedded asset data and tests.
//
// Open failures are never reported as errors from OpenFile. The returned
// stream is invalid instead, and callers check IsValid before use.
package iosys
