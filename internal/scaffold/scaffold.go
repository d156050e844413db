// Package scaffold creates, cleans and deletes site folders.
package scaffold

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/timsite/tim/internal/errors"
	"github.com/timsite/tim/internal/logfields"
	"github.com/timsite/tim/internal/site"
	"github.com/timsite/tim/internal/workspace"
)

// New creates the site folder and fills it with a copy of exampleDir. It
// refuses to touch a site that already exists.
func New(s *site.Site, exampleDir string) error {
	if st, err := os.Stat(s.Directory); err == nil && st.IsDir() {
		return errors.AlreadyExistsError("Site with this name already exists").
			WithContext("path", s.Directory).
			Build()
	}
	if err := os.Mkdir(s.Directory, 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, s.Directory+" directory was NOT created").Build()
	}
	if err := workspace.CopyDir(exampleDir, s.Directory); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "example site was NOT copied").
			WithContext("example_dir", exampleDir).
			Build()
	}
	slog.Info("Site created", logfields.Site(s.Name), logfields.Path(s.Directory))
	return nil
}

// Clean removes the built output of s and leaves an empty output directory.
func Clean(s *site.Site) error {
	if err := workspace.NewManager(s.OutputDir).Reset(); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "output directory was NOT cleaned").
			WithContext("path", s.OutputDir).
			Build()
	}
	return nil
}

// Delete removes the whole site folder and returns how many files and
// directories went with it. Removing nothing is an error.
func Delete(s *site.Site) (int, error) {
	n, err := workspace.RemoveTree(s.Directory)
	if err != nil {
		return n, errors.WrapError(err, errors.CategoryFileSystem, fmt.Sprintf("%s was NOT removed", s.Directory)).Build()
	}
	if n == 0 {
		return 0, errors.NotFoundError("Nothing was removed").WithContext("path", s.Directory).Build()
	}
	slog.Info("Site deleted", logfields.Site(s.Name), logfields.Count(n))
	return n, nil
}
