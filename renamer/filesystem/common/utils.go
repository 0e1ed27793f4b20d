package common

import (
	"path/filepath"
	"strings"
)

// PathUtils provides path manipulation utilities used across filesystem packages
type PathUtils struct{}

// NewPathUtils creates a new PathUtils instance
func NewPathUtils() *PathUtils {
	return &PathUtils{}
}

// ValidatePath validates that a path is usable as a rename target
func (pu *PathUtils) ValidatePath(path string) error {
	if path == "" {
		return ErrPathEmpty
	}

	if strings.Contains(path, "\x00") {
		return ErrPathInvalid
	}

	return nil
}

// Extension returns the part of name after its last dot, without the dot.
// A leading dot does not start an extension, so ".env" has none while
// ".env.local" has "local". A trailing dot yields an empty extension.
func (pu *PathUtils) Extension(name string) string {
	if name == ".." {
		return ""
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}

// IsHidden reports whether the base name of path starts with a dot
func (pu *PathUtils) IsHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

// ParentDir returns the directory containing path.
// Returns ErrNoParentDirectory for an empty path or a filesystem root.
func (pu *PathUtils) ParentDir(path string) (string, error) {
	if path == "" {
		return "", ErrNoParentDirectory
	}

	clean := filepath.Clean(path)
	volume := filepath.VolumeName(clean)
	rest := clean[len(volume):]
	if rest == "" || rest == string(filepath.Separator) {
		return "", ErrNoParentDirectory
	}

	return filepath.Dir(clean), nil
}
