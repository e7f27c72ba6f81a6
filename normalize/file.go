package normalize

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// File rewrites the file at path in canonical form. The full output is
// staged and committed with a rename, so a failure at any point leaves
// the original file untouched. Writing is skipped when the file is
// already canonical.
func File(path string, options ...Option) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("normalize %q: %w", path, err)
	}
	dst := Normalize(src, options...)
	if bytes.Equal(src, dst) {
		return nil
	}
	return WriteFile(path, dst)
}

// WriteFile replaces path with data via temp-file-then-rename in the
// same directory, keeping the original permissions.
func WriteFile(path string, data []byte) error {
	mode := os.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %q: %w", path, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("write %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}
