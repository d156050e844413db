// Package site models one build target: the site folder, its derived paths and
// the data/config mappings loaded once per build.
package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/timsite/tim/internal/errors"
	"github.com/timsite/tim/internal/kvstore"
	"github.com/timsite/tim/internal/logfields"
)

// Fixed names inside a site folder.
const (
	BaseFileName   = "_base.html"
	FeedDirName    = "_feed"
	IndexFileName  = "index.html"
	DataFileName   = "_data.txt"
	ConfigFileName = "_config.txt"
)

// Config keys understood by the generator.
const (
	ConfigIndexPage = "index_page"
	ConfigToPack    = "to_pack"
	ConfigMarkdown  = "markdown"
)

// DataURL is the site data key holding the site's base URL.
const DataURL = "url"

// Site is one build target.
type Site struct {
	Name string

	Directory  string // <sites dir>/<name>
	BaseFile   string // shared base template
	FeedDir    string // content tree root
	IndexFile  string // main index content file
	OutputDir  string // <directory>/<name>
	DataFile   string
	ConfigFile string

	Data   map[string]string
	Config map[string]string
}

// New resolves every path of the site called name under sitesDir.
func New(sitesDir, name string) (*Site, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, errors.ValidationError(fmt.Sprintf("invalid site name %q", name)).Build()
	}
	root, err := filepath.Abs(filepath.Join(sitesDir, name))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "resolve site directory").
			WithContext("site", name).
			Build()
	}
	s := &Site{
		Name:       name,
		Directory:  root,
		BaseFile:   filepath.Join(root, BaseFileName),
		FeedDir:    filepath.Join(root, FeedDirName),
		OutputDir:  filepath.Join(root, name),
		DataFile:   filepath.Join(root, DataFileName),
		ConfigFile: filepath.Join(root, ConfigFileName),
		Data:       map[string]string{},
		Config:     map[string]string{},
	}
	s.IndexFile = filepath.Join(s.FeedDir, IndexFileName)

	slog.Debug("Site paths resolved",
		logfields.Site(name),
		slog.String("directory", s.Directory),
		slog.String("base_file", s.BaseFile),
		slog.String("feed_dir", s.FeedDir),
		slog.String("index_file", s.IndexFile),
		slog.String("output_dir", s.OutputDir),
		slog.String("data_file", s.DataFile),
		slog.String("config_file", s.ConfigFile))
	return s, nil
}

// URL returns the site's base URL from site data.
func (s *Site) URL() string {
	return s.Data[DataURL]
}

// LoadData reads the site data file.
func (s *Site) LoadData() error {
	data, err := kvstore.LoadFile(s.DataFile)
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, s.Name+" site data file was NOT read").Fatal().Build()
	}
	s.Data = data
	return nil
}

// LoadConfig reads the site config file.
func (s *Site) LoadConfig() error {
	cfg, err := kvstore.LoadFile(s.ConfigFile)
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, s.Name+" site config file was NOT read").Fatal().Build()
	}
	s.Config = cfg
	return nil
}

// CheckLayout verifies that everything a build needs is in place. Every
// missing entry is logged before the validation error is returned.
func (s *Site) CheckLayout() error {
	var missing []string
	isDir := func(path string) {
		if st, err := os.Stat(path); err != nil || !st.IsDir() {
			slog.Error(path+" is NOT a valid directory", logfields.Path(path), logfields.Error(err))
			missing = append(missing, path)
		}
	}
	isFile := func(path string) {
		if st, err := os.Stat(path); err != nil || !st.Mode().IsRegular() {
			slog.Error(path+" is NOT a valid file", logfields.Path(path), logfields.Error(err))
			missing = append(missing, path)
		}
	}

	isDir(s.Directory)
	isFile(s.BaseFile)
	isDir(s.FeedDir)
	isFile(s.IndexFile)
	isFile(s.DataFile)

	if len(missing) > 0 {
		return errors.ValidationError("Some needed directories and files are NOT valid").
			WithContext("missing", strings.Join(missing, ", ")).
			Build()
	}
	return nil
}

// PackExtensions returns the file extensions listed in the to_pack config option.
func (s *Site) PackExtensions() []string {
	var exts []string
	for _, ext := range strings.Split(s.Config[ConfigToPack], ",") {
		if ext = strings.TrimSpace(ext); ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}
