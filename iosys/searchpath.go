package iosys

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// SearchPath holds a precedence-ordered set of validated directories used
// to locate bare file names. First match wins.
type SearchPath struct {
	fs   afero.Fs
	dirs []string
}

// NewSearchPath creates a resolver over fs seeded with dirs.
func NewSearchPath(fs afero.Fs, dirs ...string) *SearchPath {
	s := &SearchPath{fs: fs}
	s.SetDirectories(dirs)
	return s
}

// SetDirectories replaces the current directory set. Entries that are
// empty or do not currently exist as directories are dropped without an
// error; survivors keep their input order. A nil or empty slice clears
// the set.
func (s *SearchPath) SetDirectories(dirs []string) {
	kept := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if ok, err := afero.DirExists(s.fs, dir); err != nil || !ok {
			continue
		}
		kept = append(kept, filepath.Clean(dir))
	}
	s.dirs = kept
}

// Directories returns the retained directories in precedence order.
func (s *SearchPath) Directories() []string {
	out := make([]string, len(s.dirs))
	copy(out, s.dirs)
	return out
}

// Resolve returns the first directory, by precedence order, containing a
// regular file named name. No caching: directory contents may change
// between calls and are re-checked every time.
func (s *SearchPath) Resolve(name string) (string, bool) {
	if name == "" || len(s.dirs) == 0 {
		return "", false
	}
	for _, dir := range s.dirs {
		candidate := filepath.Join(dir, name)
		info, err := s.fs.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
