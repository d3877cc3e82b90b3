package iosys

import (
	"io"

	"github.com/spf13/afero"

	assimp "github.com/jvbsl/assimp-go"
	"github.com/jvbsl/assimp-go/errors"
)

// FileStream is an IOStream backed by a single storage primitive from an
// afero filesystem. Validity is computed, not stored: the stream is valid
// iff it still holds its primitive.
type FileStream struct {
	file afero.File
	path string
	mode assimp.OpenMode
}

var _ assimp.IOStream = (*FileStream)(nil)

// NewFileStream constructs a stream, dispatching purely on the mode's
// direction. Unknown mode values yield an invalid stream.
func NewFileStream(fs afero.Fs, path string, mode assimp.OpenMode) *FileStream {
	switch {
	case mode.IsRead():
		return newReadStream(fs, path, mode)
	case mode.IsWrite():
		return newWriteStream(fs, path, mode)
	default:
		return &FileStream{path: path, mode: mode}
	}
}

// newReadStream opens path for reading only if it already exists; a miss
// leaves the stream invalid rather than raising an error.
func newReadStream(fs afero.Fs, path string, mode assimp.OpenMode) *FileStream {
	s := &FileStream{path: path, mode: mode}
	if ok, err := afero.Exists(fs, path); err != nil || !ok {
		return s
	}
	if f, err := fs.Open(path); err == nil {
		s.file = f
	}
	return s
}

// newWriteStream creates or truncates path. Write targets are explicit:
// no search fallback applies.
func newWriteStream(fs afero.Fs, path string, mode assimp.OpenMode) *FileStream {
	s := &FileStream{path: path, mode: mode}
	if f, err := fs.Create(path); err == nil {
		s.file = f
	}
	return s
}

// IsValid reports whether the stream holds an open storage primitive.
func (s *FileStream) IsValid() bool {
	return s.file != nil
}

// Path returns the path the stream was opened with.
func (s *FileStream) Path() string {
	return s.path
}

// Mode returns the mode the stream was opened with.
func (s *FileStream) Mode() assimp.OpenMode {
	return s.mode
}

// Read fills p[:count] from the current position. Callers size count to a
// known remaining length; a shorter read is reported as an error, never as
// a short count.
func (s *FileStream) Read(p []byte, count int64) (int64, error) {
	if p == nil {
		return 0, errors.NilBuffer(errors.PhaseRead)
	}
	if count < 0 || count > int64(len(p)) {
		return 0, errors.OutOfBounds(errors.PhaseRead, count, len(p))
	}
	if s.file == nil {
		return 0, errors.InvalidHandle(errors.PhaseRead, s.path)
	}
	if !s.mode.IsRead() {
		return 0, errors.WrongDirection(errors.PhaseRead, s.path, s.mode.String())
	}

	n, err := io.ReadFull(s.file, p[:count])
	if err != nil {
		return int64(n), errors.IO(errors.PhaseRead, s.path, err)
	}
	return int64(n), nil
}

// Write stores p[:count] at the current position and returns count on
// success.
func (s *FileStream) Write(p []byte, count int64) (int64, error) {
	if p == nil {
		return 0, errors.NilBuffer(errors.PhaseWrite)
	}
	if count < 0 || count > int64(len(p)) {
		return 0, errors.OutOfBounds(errors.PhaseWrite, count, len(p))
	}
	if s.file == nil {
		return 0, errors.InvalidHandle(errors.PhaseWrite, s.path)
	}
	if !s.mode.IsWrite() {
		return 0, errors.WrongDirection(errors.PhaseWrite, s.path, s.mode.String())
	}

	n, err := s.file.Write(p[:count])
	if err != nil {
		return int64(n), errors.IO(errors.PhaseWrite, s.path, err)
	}
	if int64(n) != count {
		return int64(n), errors.ShortTransfer(errors.PhaseWrite, s.path, n, count)
	}
	return int64(n), nil
}

// Seek translates origin into the primitive's whence vocabulary and
// repositions the stream. An origin outside the three defined values is a
// hard error.
func (s *FileStream) Seek(offset int64, origin assimp.SeekOrigin) error {
	if s.file == nil {
		return errors.InvalidHandle(errors.PhaseSeek, s.path)
	}
	whence, ok := origin.Whence()
	if !ok {
		return errors.InvalidOrigin(origin)
	}
	if _, err := s.file.Seek(offset, whence); err != nil {
		return errors.IO(errors.PhaseSeek, s.path, err)
	}
	return nil
}

// Position returns the current offset from the start, or -1 if the stream
// is invalid.
func (s *FileStream) Position() int64 {
	if s.file == nil {
		return -1
	}
	pos, err := s.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	return pos
}

// Size returns the total byte length, or 0 if the stream is invalid.
func (s *FileStream) Size() int64 {
	if s.file == nil {
		return 0
	}
	info, err := s.file.Stat()
	if err != nil {
		return 0
	}
	return info.Size()
}

// Flush forces buffered writes to storage. No-op on an invalid stream.
func (s *FileStream) Flush() error {
	if s.file == nil {
		return nil
	}
	if err := s.file.Sync(); err != nil {
		return errors.IO(errors.PhaseFlush, s.path, err)
	}
	return nil
}

// Close releases the underlying primitive and clears the reference.
// Idempotent: a second call is a no-op, and close never reports an error.
func (s *FileStream) Close() error {
	if s.file == nil {
		return nil
	}
	s.file.Close()
	s.file = nil
	return nil
}
