package iosys

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	assimp "github.com/jvbsl/assimp-go"
)

// FileSystem is the directory-backed IOSystem handed to the engine
// collaborator. It owns a SearchPath and produces FileStream values over
// an afero filesystem.
type FileSystem struct {
	fs     afero.Fs
	search *SearchPath
}

var _ assimp.IOSystem = (*FileSystem)(nil)

// New creates a FileSystem over the OS filesystem with the given search
// directories. Directories that do not exist are dropped silently.
func New(dirs ...string) *FileSystem {
	return NewWithFs(afero.NewOsFs(), dirs...)
}

// NewMemory creates a FileSystem over a fresh in-memory filesystem.
// The given search directories are created before being registered, so the
// result is immediately usable as a scratch space. Seed asset data through
// Fs.
func NewMemory(dirs ...string) *FileSystem {
	memFs := afero.NewMemMapFs()
	for _, dir := range dirs {
		if dir != "" {
			memFs.MkdirAll(dir, 0o755)
		}
	}
	return NewWithFs(memFs, dirs...)
}

// NewWithFs creates a FileSystem over an arbitrary afero filesystem.
func NewWithFs(fs afero.Fs, dirs ...string) *FileSystem {
	return &FileSystem{
		fs:     fs,
		search: NewSearchPath(fs, dirs...),
	}
}

// Fs returns the backing filesystem.
func (f *FileSystem) Fs() afero.Fs {
	return f.fs
}

// SetSearchDirectories replaces the search-directory set. Invalid entries
// are dropped silently; order defines precedence.
func (f *FileSystem) SetSearchDirectories(dirs ...string) {
	f.search.SetDirectories(dirs)
}

// SearchDirectories returns the retained search directories in precedence
// order.
func (f *FileSystem) SearchDirectories() []string {
	return f.search.Directories()
}

// FindFile locates a bare file name within the search directories.
// A miss is a normal outcome, not an error.
func (f *FileSystem) FindFile(name string) (string, bool) {
	return f.search.Resolve(name)
}

// Exists reports whether path currently names a regular file.
func (f *FileSystem) Exists(path string) bool {
	info, err := f.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// OpenFile opens the named resource. It never fails itself: a failed open
// yields an invalid stream, discoverable via IsValid.
//
// Read-family modes resolve the file-name component against the search
// path first; a hit supersedes the requested path. Write-family modes open
// the path as given, with no search fallback. Any other mode value leaves
// the stream invalid.
func (f *FileSystem) OpenFile(path string, mode assimp.OpenMode) assimp.IOStream {
	switch {
	case mode.IsRead():
		open := path
		if found, ok := f.search.Resolve(filepath.Base(path)); ok {
			open = found
		}
		stream := newReadStream(f.fs, open, mode)
		Logger().Debug("open for read",
			zap.String("path", path),
			zap.String("resolved", open),
			zap.Stringer("mode", mode),
			zap.Bool("valid", stream.IsValid()))
		return stream

	case mode.IsWrite():
		stream := newWriteStream(f.fs, path, mode)
		Logger().Debug("open for write",
			zap.String("path", path),
			zap.Stringer("mode", mode),
			zap.Bool("valid", stream.IsValid()))
		return stream

	default:
		// Unknown mode values are permissive: the stream comes back
		// invalid instead of erroring.
		return &FileStream{path: path, mode: mode}
	}
}
