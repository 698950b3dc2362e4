package media

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLibraryResolve(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "media")
	if err := os.MkdirAll(filepath.Join(root, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFiles(t, root, "clip.mp4", "with space.mp3")
	writeFiles(t, base, "secret.txt")

	lib := NewLibrary(root)

	path, err := lib.Resolve("clip.mp4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(root, "clip.mp4") {
		t.Errorf("Resolve returned %s", path)
	}

	if _, err := lib.Resolve("with%20space.mp3"); err != nil {
		t.Errorf("escaped name should resolve: %v", err)
	}

	rejected := []string{
		"",
		"missing.mp4",
		"sub",
		"../secret.txt",
		"..%2Fsecret.txt",
		"%2E%2E/secret.txt",
		"/etc/passwd",
		"sub/../../secret.txt",
		"clip.mp4%00",
		"%zz",
	}
	for _, name := range rejected {
		if _, err := lib.Resolve(name); !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve(%q) error = %v, expected ErrNotFound", name, err)
		}
	}
}
