package media

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound covers both missing files and names that escape the library.
// Callers must not tell the two apart.
var ErrNotFound = errors.New("file not found")

// Library serves files from a single directory
type Library struct {
	Root string
}

func NewLibrary(root string) *Library {
	return &Library{Root: root}
}

// Resolve maps a requested name to a regular file inside Root.
func (l *Library) Resolve(name string) (string, error) {
	decoded, err := url.PathUnescape(name)
	if err != nil {
		return "", ErrNotFound
	}

	decoded = filepath.FromSlash(decoded)
	if decoded == "" || strings.ContainsRune(decoded, 0) || !filepath.IsLocal(decoded) {
		return "", ErrNotFound
	}

	fullPath := filepath.Join(l.Root, decoded)
	rel, err := filepath.Rel(l.Root, fullPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrNotFound
	}

	info, err := os.Stat(fullPath)
	if err != nil || !info.Mode().IsRegular() {
		return "", ErrNotFound
	}

	return fullPath, nil
}
