// Package pack shrinks a built site by collapsing whitespace in the output
// files whose extensions the site config lists under to_pack.
package pack

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/natefinch/atomic"

	"github.com/timsite/tim/internal/errors"
	"github.com/timsite/tim/internal/logfields"
	"github.com/timsite/tim/internal/site"
)

// Result counts the files one pack pass touched.
type Result struct {
	Packed  int
	Omitted int
	// Saved is the number of bytes removed across all packed files.
	Saved int64
}

// Collapse replaces every run of spaces and line breaks with a single space.
// Tabs and all other bytes are kept verbatim.
func Collapse(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inRun := false
	for _, b := range data {
		switch b {
		case ' ', '\n', '\r':
			if !inRun {
				out = append(out, ' ')
			}
			inRun = true
		default:
			out = append(out, b)
			inRun = false
		}
	}
	return out
}

// Site packs the output tree of s, whose config must already be loaded. Each
// file is replaced atomically; the first file that cannot be read or written
// stops the pass.
func Site(s *site.Site) (Result, error) {
	var res Result
	if st, err := os.Stat(s.OutputDir); err != nil || !st.IsDir() {
		return res, errors.NotFoundError(s.OutputDir+" directory with the site output was NOT found").
			WithCause(err).
			WithContext("path", s.OutputDir).
			Build()
	}
	exts := s.PackExtensions()

	err := filepath.WalkDir(s.OutputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Error("Directory entry was NOT read", logfields.Path(path), logfields.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !slices.Contains(exts, filepath.Ext(path)) {
			slog.Info("Omitted file in packing", logfields.Path(path))
			res.Omitted++
			return nil
		}
		saved, err := packFile(path)
		if err != nil {
			return err
		}
		res.Packed++
		res.Saved += saved
		return nil
	})
	return res, err
}

func packFile(path string) (int64, error) {
	// #nosec G304 -- files come from walking the site output tree.
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.WrapError(err, errors.CategoryFileSystem, path+" input file is NOT open").Build()
	}
	packed := Collapse(data)
	if err := atomic.WriteFile(path, bytes.NewReader(packed)); err != nil {
		return 0, errors.WrapError(err, errors.CategoryFileSystem, path+" output file is NOT open").Build()
	}
	slog.Debug("File packed", logfields.Path(path), slog.Int("before", len(data)), slog.Int("after", len(packed)))
	return int64(len(data) - len(packed)), nil
}
