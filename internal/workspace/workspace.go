package workspace

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/timsite/tim/internal/logfields"
)

// Manager handles one output directory.
type Manager struct {
	dir string
}

// NewManager creates a manager for dir. Nothing is touched until Reset.
func NewManager(dir string) *Manager {
	return &Manager{dir: dir}
}

// GetPath returns the managed directory.
func (m *Manager) GetPath() string {
	return m.dir
}

// Reset removes the directory with everything below it and creates it again empty.
func (m *Manager) Reset() error {
	if err := os.RemoveAll(m.dir); err != nil {
		return fmt.Errorf("failed to remove output directory: %w", err)
	}
	if err := os.MkdirAll(m.dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	slog.Debug("Output directory reset", logfields.Path(m.dir))
	return nil
}

// Populate copies the tree at src into the managed directory.
func (m *Manager) Populate(src string) error {
	if err := CopyDir(src, m.dir); err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return nil
}

// CopyDir recursively copies src into dst, creating dst when needed. File
// modes are preserved. Symlinked directories are followed.
func CopyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()|0o700); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		info, err := os.Stat(srcPath)
		if err != nil {
			return err
		}
		if info.IsDir() {
			if err := CopyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath, info.Mode().Perm()); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string, perm os.FileMode) error {
	// #nosec G304 -- paths come from a walk of a site directory.
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = srcFile.Close() }()

	// #nosec G304 -- see above.
	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return err
	}
	return dstFile.Close()
}

// RemoveTree deletes path and everything below it, returning how many
// entries (files, directories, links, path itself included) were removed.
// A missing path removes nothing and is not an error.
func RemoveTree(path string) (int, error) {
	count := 0
	err := filepath.WalkDir(path, func(_ string, _ os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	if err := os.RemoveAll(path); err != nil {
		return 0, fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return count, nil
}
