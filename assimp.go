package assimp

import "io"

// OpenMode describes the intent a stream is opened with.
// The six values form two families: read and write. Variants within a
// family (generic, binary, text) are accepted for API compatibility but
// behave identically at the storage layer.
type OpenMode uint8

const (
	OpenRead OpenMode = iota
	OpenReadBinary
	OpenReadText
	OpenWrite
	OpenWriteBinary
	OpenWriteText
)

// IsRead reports whether the mode belongs to the read family.
func (m OpenMode) IsRead() bool {
	return m == OpenRead || m == OpenReadBinary || m == OpenReadText
}

// IsWrite reports whether the mode belongs to the write family.
func (m OpenMode) IsWrite() bool {
	return m == OpenWrite || m == OpenWriteBinary || m == OpenWriteText
}

func (m OpenMode) String() string {
	switch m {
	case OpenRead:
		return "read"
	case OpenReadBinary:
		return "read-binary"
	case OpenReadText:
		return "read-text"
	case OpenWrite:
		return "write"
	case OpenWriteBinary:
		return "write-binary"
	case OpenWriteText:
		return "write-text"
	default:
		return "unknown"
	}
}

// SeekOrigin is the reference point for a Seek operation.
// It is independent of the whence vocabulary of the underlying storage
// primitive; streams translate between the two.
type SeekOrigin uint8

const (
	// OriginSet seeks to an absolute offset from the start.
	OriginSet SeekOrigin = iota
	// OriginCurrent seeks relative to the current position.
	OriginCurrent
	// OriginEnd seeks relative to the end.
	OriginEnd
)

// originWhence is the total mapping from SeekOrigin to the stdlib whence
// values. Table-driven so an unlisted origin is caught instead of falling
// through to a default.
var originWhence = map[SeekOrigin]int{
	OriginSet:     io.SeekStart,
	OriginCurrent: io.SeekCurrent,
	OriginEnd:     io.SeekEnd,
}

// Whence translates the origin into the stdlib whence vocabulary.
// Returns false for values outside the three defined origins; callers
// must treat that as a hard error, never as OriginSet.
func (o SeekOrigin) Whence() (int, bool) {
	w, ok := originWhence[o]
	return w, ok
}

func (o SeekOrigin) String() string {
	switch o {
	case OriginSet:
		return "set"
	case OriginCurrent:
		return "current"
	case OriginEnd:
		return "end"
	default:
		return "unknown"
	}
}

// IOStream is the uniform capability set representing one opened resource.
//
// A stream is valid iff it holds an underlying storage primitive; opening
// can fail without an error, so callers check IsValid before use. Read and
// Write honor the direction the stream was opened with and fail loudly on
// the wrong one. Close is idempotent and never errors.
type IOStream interface {
	// IsValid reports whether the stream holds an open storage primitive.
	IsValid() bool

	// Read fills p[:count] from the current position and returns the
	// number of bytes read, which equals count on success.
	Read(p []byte, count int64) (int64, error)

	// Write stores p[:count] at the current position and returns the
	// number of bytes written, which equals count on success.
	Write(p []byte, count int64) (int64, error)

	// Seek repositions the stream relative to origin.
	Seek(offset int64, origin SeekOrigin) error

	// Position returns the current offset from the start, or -1 if the
	// stream is invalid.
	Position() int64

	// Size returns the total byte length of the resource, or 0 if the
	// stream is invalid.
	Size() int64

	// Flush forces buffered writes to storage. No-op on an invalid stream.
	Flush() error

	// Close releases the underlying storage primitive. Idempotent.
	Close() error
}

// IOSystem is the capability the engine collaborator is configured with.
// It resolves names to resources; the engine treats the result purely
// through the IOStream surface.
type IOSystem interface {
	// OpenFile opens the named resource. It never fails itself: a failed
	// open is reported by the returned stream being invalid.
	OpenFile(path string, mode OpenMode) IOStream

	// Exists reports whether the path currently names an existing file.
	Exists(path string) bool
}
