// Package source reads kernel pseudo-files and scans their key/value records.
// It is the only place where probes touch the filesystem.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

var (
	// ErrUnavailable is returned when a source path is missing or unreadable.
	ErrUnavailable = errors.New("source unavailable")

	// ErrParse is returned when a source was read but its content has an
	// unexpected shape.
	ErrParse = errors.New("parse failure")
)

// DefaultRoot is the host filesystem root used when none is configured.
const DefaultRoot = "/"

// Source reads files below a filesystem root. Nothing is cached: every call
// re-reads current state.
type Source struct {
	fsys fs.FS
	root string
}

// New creates a Source reading from the host filesystem mounted at root.
// An empty root means DefaultRoot.
func New(root string) *Source {
	if root == "" {
		root = DefaultRoot
	}
	return &Source{fsys: os.DirFS(root), root: root}
}

// NewFS creates a Source over an arbitrary filesystem. Used by tests to feed
// synthetic /proc and /sys trees. Such a Source has no host root.
func NewFS(fsys fs.FS) *Source {
	return &Source{fsys: fsys}
}

// Root returns the host directory the Source reads from, or "" when it is
// not backed by the host filesystem.
func (s *Source) Root() string {
	return s.root
}

// Text returns the full contents of path. The error wraps ErrUnavailable
// when the file does not exist or cannot be read.
func (s *Source) Text(path string) (string, error) {
	data, err := fs.ReadFile(s.fsys, name(path))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
	}
	return string(data), nil
}

// Dir lists the entries of the directory at path.
func (s *Source) Dir(path string) ([]fs.DirEntry, error) {
	entries, err := fs.ReadDir(s.fsys, name(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
	}
	return entries, nil
}

// First returns the contents of the first readable path, in order.
func (s *Source) First(paths ...string) (string, error) {
	var errs []error
	for _, path := range paths {
		text, err := s.Text(path)
		if err == nil {
			return text, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return "", fmt.Errorf("%w: no paths given", ErrUnavailable)
	}
	return "", errors.Join(errs...)
}

// name converts an absolute slash path into an fs.FS name.
func name(path string) string {
	trimmed := strings.TrimLeft(path, "/")
	if trimmed == "" {
		return "."
	}
	return trimmed
}
